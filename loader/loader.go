// Package loader turns the lines of an ARFF document into a Relation. The
// header is consumed until @data, after which every line is decoded as a row.
package loader

import (
	"log/slog"
	"os"
	"strings"

	"github.com/go-sif/arff"
	"github.com/go-sif/arff/errors"
	"github.com/go-sif/arff/logging"
	"github.com/go-sif/arff/relation"
	"github.com/hashicorp/go-multierror"
)

// DefaultLogLevel is used when Conf.LogLevel is empty
const DefaultLogLevel = "info"

// Conf configures a Loader
type Conf struct {
	IgnoreRowErrors bool         `mapstructure:"ignore_row_errors"` // iff true, skip data rows which fail to decode instead of aborting the load. Header errors are always fatal.
	MaxRowErrors    int          `mapstructure:"max_row_errors"`    // when ignoring row errors, abort once this many rows have failed. Defaults to 0 (unlimited).
	LogLevel        string       `mapstructure:"log_level"`         // the minimum level logged to stderr. Defaults to info.
	Logger          *slog.Logger `mapstructure:"-"`                 // overrides LogLevel when set
}

// Loader produces Relations from LineSources
type Loader struct {
	conf   *Conf
	logger *slog.Logger
}

// CreateLoader returns a new Loader
func CreateLoader(conf *Conf) *Loader {
	c := Conf{}
	if conf != nil {
		c = *conf
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	logger := c.Logger
	if logger == nil {
		logger = logging.CreateLogger(logging.StringToLogLevel(c.LogLevel), os.Stderr)
	}
	return &Loader{conf: &c, logger: logger}
}

// Load reads a Relation from src. Any error aborts the load, and no Relation
// is returned. Blank lines are ignored in the data section as well as in the
// header. A read error which ends src early fails the load. The caller
// remains responsible for closing src.
func (l *Loader) Load(src arff.LineSource) (*relation.Relation, error) {
	rel, _, err := l.LoadWithRowErrors(src)
	return rel, err
}

// LoadWithRowErrors is like Load, but also returns the errors of the data
// rows which were skipped because IgnoreRowErrors is set. With
// IgnoreRowErrors, a read error in the data section is returned among
// them alongside the rows read so far.
func (l *Loader) LoadWithRowErrors(src arff.LineSource) (*relation.Relation, *multierror.Error, error) {
	rel := relation.CreateRelation(src.Name())
	logger := l.logger.With("relation_id", rel.ID(), "source", src.Name())
	var rowErrors *multierror.Error
	skipped := 0
	inHeader := true
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		if inHeader {
			done, err := loadHeaderLine(rel, line)
			if err != nil {
				return nil, nil, errors.LineError{Line: src.LineNumber(), Err: err}
			}
			if done {
				rel.Schema().Finalize()
				inHeader = false
				logger.Debug("header complete", "name", rel.Name(), "attributes", rel.Schema().NumAttributes(), "line", src.LineNumber())
			}
			continue
		}
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		err := l.loadDataLine(rel, line)
		if err == nil {
			continue
		}
		lineErr := errors.LineError{Line: src.LineNumber(), Err: err}
		if !l.conf.IgnoreRowErrors {
			return nil, nil, lineErr
		}
		rowErrors = multierror.Append(rowErrors, lineErr)
		skipped++
		logger.Warn("skipping data row", "line", src.LineNumber(), "error", err)
		if l.conf.MaxRowErrors > 0 && skipped >= l.conf.MaxRowErrors {
			logger.Error("too many row errors", "errors", skipped)
			return nil, nil, rowErrors
		}
	}
	if err := src.Err(); err != nil {
		readErr := errors.ReadError{Source: src.Name(), Err: err}
		if inHeader || !l.conf.IgnoreRowErrors {
			return nil, nil, readErr
		}
		rowErrors = multierror.Append(rowErrors, readErr)
		logger.Warn("relation truncated by read error", "line", src.LineNumber(), "error", err)
	}
	if inHeader {
		return nil, nil, errors.MissingDataSectionError{}
	}
	logger.Info("loaded relation", "name", rel.Name(), "attributes", rel.Schema().NumAttributes(), "rows", rel.NumRows(), "skipped", skipped)
	return rel, rowErrors, nil
}

func (l *Loader) loadDataLine(rel *relation.Relation, line string) error {
	values, err := decodeRow(rel.Schema(), line)
	if err != nil {
		return err
	}
	return rel.AppendRow(values)
}

// Logger returns the logger used by this Loader
func (l *Loader) Logger() *slog.Logger {
	return l.logger
}
