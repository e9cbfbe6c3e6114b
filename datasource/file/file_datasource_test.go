package file

import (
	"io"
	"os"
	"path"
	"testing"

	"github.com/go-sif/arff"
	"github.com/go-sif/arff/errors"
	"github.com/go-sif/arff/loader"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func weatherPath(t *testing.T) string {
	cwd, err := os.Getwd()
	require.Nil(t, err)
	return path.Join(cwd, "testdata/weather.arff")
}

func TestFileDatasourceLoad(t *testing.T) {
	rel, err := LoadRelation(weatherPath(t), &loader.Conf{})
	require.Nil(t, err)
	require.Equal(t, weatherPath(t), rel.Filename())
	require.Equal(t, "weather data", rel.Name())
	require.Equal(t, []string{"outlook", "temperature", "humidity", "wind speed", "play"}, rel.Schema().AttributeNames())
	require.Equal(t, 8, rel.NumRows())

	row, ok := rel.Row(2)
	require.True(t, ok)
	require.Equal(t, []arff.Value{arff.Nominal(1), arff.Numeric(83), arff.Numeric(86), arff.Numeric(3), arff.Nominal(0)}, row)
	row, ok = rel.Row(7)
	require.True(t, ok)
	require.True(t, row[0].IsMissing())

	wind, ok := rel.Col(3)
	require.True(t, ok)
	require.Len(t, wind, 8)
	require.Equal(t, arff.Numeric(12.5), wind[1])
}

func TestFileDatasourceIdempotent(t *testing.T) {
	rel1, err := LoadRelation(weatherPath(t), nil)
	require.Nil(t, err)
	rel2, err := LoadRelation(weatherPath(t), nil)
	require.Nil(t, err)
	require.Nil(t, rel1.Equals(rel2))
	require.Equal(t, rel1.Fingerprint(), rel2.Fingerprint())
	require.Equal(t, rel1.Filename(), rel2.Filename())
}

func TestFileDatasourceMissingFile(t *testing.T) {
	_, err := LoadRelation(path.Join(t.TempDir(), "nope.arff"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)
	var pathErr *os.PathError
	require.ErrorAs(t, err, &pathErr)
}

func TestFileDatasourceBadRow(t *testing.T) {
	cwd, err := os.Getwd()
	require.Nil(t, err)
	rel, err := LoadRelation(path.Join(cwd, "testdata/bad_row.arff"), nil)
	require.Nil(t, rel)
	var lineErr errors.LineError
	require.ErrorAs(t, err, &lineErr)
	require.Equal(t, 6, lineErr.Line)
	require.Contains(t, err.Error(), "overcast")
}

func compressInto(t *testing.T, dst string, wrap func(io.Writer) (io.WriteCloser, error)) {
	raw, err := os.ReadFile(weatherPath(t))
	require.Nil(t, err)
	f, err := os.Create(dst)
	require.Nil(t, err)
	w, err := wrap(f)
	require.Nil(t, err)
	_, err = w.Write(raw)
	require.Nil(t, err)
	require.Nil(t, w.Close())
	require.Nil(t, f.Close())
}

func TestFileDatasourceLZ4(t *testing.T) {
	dst := path.Join(t.TempDir(), "weather.arff.lz4")
	compressInto(t, dst, func(w io.Writer) (io.WriteCloser, error) {
		return lz4.NewWriter(w), nil
	})
	rel, err := LoadRelation(dst, nil)
	require.Nil(t, err)
	plain, err := LoadRelation(weatherPath(t), nil)
	require.Nil(t, err)
	require.Nil(t, plain.Equals(rel))
}

func TestFileDatasourceZstd(t *testing.T) {
	dst := path.Join(t.TempDir(), "weather.arff.zst")
	compressInto(t, dst, func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w, zstd.WithEncoderConcurrency(1))
	})
	rel, err := LoadRelation(dst, nil)
	require.Nil(t, err)
	plain, err := LoadRelation(weatherPath(t), nil)
	require.Nil(t, err)
	require.Equal(t, plain.Fingerprint(), rel.Fingerprint())
}

func TestOpenSkipsComments(t *testing.T) {
	src, err := Open(weatherPath(t), nil)
	require.Nil(t, err)
	defer src.Close()
	line, ok := src.Next()
	require.True(t, ok)
	require.Equal(t, "@relation 'weather data'", line)
	require.Equal(t, 5, src.LineNumber())
}
