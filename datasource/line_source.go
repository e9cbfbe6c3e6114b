package datasource

import (
	"bufio"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/go-sif/arff/logging"
)

// CommentPrefix marks a line which is dropped before it reaches the loader
const CommentPrefix = "%"

// ReaderLineSource is an arff.LineSource over an io.Reader. Comment lines
// and lines which are not valid UTF-8 are skipped. A read error ends the
// stream early and is kept for Err.
type ReaderLineSource struct {
	name    string
	reader  *bufio.Reader
	onClose func() error
	logger  *slog.Logger
	lineNum int
	err     error
	done    bool
	closed  bool
}

// CreateLineSource returns a ReaderLineSource over r. onClose, if non-nil, is
// called exactly once by Close to release whatever backs r.
func CreateLineSource(name string, r io.Reader, onClose func() error, logger *slog.Logger) *ReaderLineSource {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ReaderLineSource{
		name:    name,
		reader:  bufio.NewReader(r),
		onClose: onClose,
		logger:  logger,
	}
}

// Next returns the next non-comment line, without its line terminator
func (s *ReaderLineSource) Next() (string, bool) {
	for !s.done {
		line, err := s.reader.ReadString('\n')
		if err != nil {
			s.done = true
			if err != io.EOF {
				s.logger.Warn("aborting read", "source", s.name, "line", s.lineNum+1, "error", err)
				s.err = err
				return "", false
			}
			if len(line) == 0 {
				return "", false
			}
		}
		s.lineNum++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if !utf8.ValidString(line) {
			s.logger.Debug("skipping undecodable line", "source", s.name, "line", s.lineNum)
			continue
		}
		if strings.HasPrefix(line, CommentPrefix) {
			continue
		}
		return line, true
	}
	return "", false
}

// LineNumber returns the 1-based input position of the last line returned by Next
func (s *ReaderLineSource) LineNumber() int {
	return s.lineNum
}

// Err returns the error which ended reading early, or nil if the input was exhausted
func (s *ReaderLineSource) Err() error {
	return s.err
}

// Name returns the name this source was created with
func (s *ReaderLineSource) Name() string {
	return s.name
}

// Close releases the underlying reader. Subsequent calls do nothing.
func (s *ReaderLineSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.done = true
	if s.onClose == nil {
		return nil
	}
	return s.onClose()
}
