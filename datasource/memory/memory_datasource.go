// Package memory loads ARFF Relations from data already held in memory.
package memory

import (
	"bytes"
	"log/slog"

	"github.com/go-sif/arff/datasource"
	"github.com/go-sif/arff/loader"
	"github.com/go-sif/arff/relation"
)

// Open returns a LineSource over data. name is reported as the Relation's filename, and may be empty.
func Open(name string, data []byte, logger *slog.Logger) *datasource.ReaderLineSource {
	return datasource.CreateLineSource(name, bytes.NewReader(data), nil, logger)
}

// LoadRelation loads the Relation encoded in data
func LoadRelation(data []byte, conf *loader.Conf) (*relation.Relation, error) {
	return LoadNamedRelation("", data, conf)
}

// LoadNamedRelation loads the Relation encoded in data, recording name as its filename
func LoadNamedRelation(name string, data []byte, conf *loader.Conf) (*relation.Relation, error) {
	l := loader.CreateLoader(conf)
	src := Open(name, data, l.Logger())
	defer src.Close()
	return l.Load(src)
}
