package file

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-sif/arff/datasource"
	"github.com/go-sif/arff/loader"
	"github.com/go-sif/arff/relation"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

const (
	lz4Suffix  = ".lz4"
	zstdSuffix = ".zst"
)

// Open returns a LineSource over the file at path. Errors opening the file are returned as-is.
func Open(path string, logger *slog.Logger) (*datasource.ReaderLineSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var r io.Reader = f
	onClose := f.Close
	switch {
	case strings.HasSuffix(path, lz4Suffix):
		r = lz4.NewReader(f)
	case strings.HasSuffix(path, zstdSuffix):
		dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			f.Close()
			return nil, err
		}
		r = dec
		onClose = func() error {
			dec.Close()
			return f.Close()
		}
	}
	return datasource.CreateLineSource(path, r, onClose, logger), nil
}

// LoadRelation loads the Relation stored in the file at path. The file is
// closed before LoadRelation returns, whether or not loading succeeded.
func LoadRelation(path string, conf *loader.Conf) (*relation.Relation, error) {
	l := loader.CreateLoader(conf)
	src, err := Open(path, l.Logger())
	if err != nil {
		return nil, err
	}
	defer func() {
		err := src.Close()
		if err != nil {
			l.Logger().Warn("couldn't close file", "path", path, "error", err)
		}
	}()
	return l.Load(src)
}
