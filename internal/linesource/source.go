// Package linesource splits a byte stream into raw lines.
package linesource

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Source yields one raw line at a time from an underlying reader. Only the
// current line is held in memory.
type Source struct {
	r     *bufio.Reader
	lines int
	done  bool
}

// New returns a Source reading from r with the default buffer size.
func New(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r)}
}

// NewSize returns a Source whose read buffer holds at least size bytes.
func NewSize(r io.Reader, size int) *Source {
	return &Source{r: bufio.NewReaderSize(r, size)}
}

// Next returns the next line including its trailing '\n'. The final line
// of an input without a trailing newline is returned without one. At end
// of input Next returns nil and io.EOF. A read failure discards any partial
// line and is returned wrapped.
func (s *Source) Next() ([]byte, error) {
	if s.done {
		return nil, io.EOF
	}
	line, err := s.r.ReadBytes('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		s.done = true
		if len(line) == 0 {
			return nil, io.EOF
		}
	default:
		return nil, errors.Wrap(err, "reading line")
	}
	s.lines++
	return line, nil
}

// Lines returns the number of lines returned so far.
func (s *Source) Lines() int {
	return s.lines
}
