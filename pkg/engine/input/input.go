// Package input reads line-oriented hover queries for the terminal backend.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrBadQuery is returned for lines that are neither a position nor a quit command
var ErrBadQuery = errors.New("bad query")

// LineReader reads newline-terminated lines from a stream
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader creates a line reader over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without its terminator. A final line without
// a newline is returned before io.EOF.
func (l *LineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Query is a parsed hover request. X runs along columns, Y along rows, both in
// cell units.
type Query struct {
	Quit bool
	X    float64
	Y    float64
}

// ParseQuery parses "row col" (space or comma separated, fractions allowed) or
// one of q, quit, exit
func ParseQuery(line string) (Query, error) {
	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "q", "quit", "exit":
		return Query{Quit: true}, nil
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) != 2 {
		return Query{}, fmt.Errorf("%w: %q, want \"row col\"", ErrBadQuery, line)
	}

	y, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Query{}, fmt.Errorf("%w: row %q", ErrBadQuery, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Query{}, fmt.Errorf("%w: col %q", ErrBadQuery, fields[1])
	}
	return Query{X: x, Y: y}, nil
}
