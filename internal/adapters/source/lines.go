// Package source reads the host and path lists.
package source

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.trai.ch/zerr"
)

// LineReader implements ports.LineSource on plain text files.
type LineReader struct{}

// NewLineReader creates a LineReader.
func NewLineReader() *LineReader {
	return &LineReader{}
}

// ReadLines returns the lines of the file at path with "\n" or "\r\n"
// removed. Blank lines and lines that are not valid UTF-8 are skipped.
func (r *LineReader) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(err, "file", path)
	}
	defer func() {
		_ = f.Close()
	}()

	lines, err := Parse(f)
	if err != nil {
		return nil, zerr.With(err, "file", path)
	}
	return lines, nil
}

// Parse splits rd into lines using the same rules as ReadLines.
func Parse(rd io.Reader) ([]string, error) {
	br := bufio.NewReader(rd)
	var lines []string

	for {
		raw, err := br.ReadString('\n')
		if raw != "" {
			line := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
			// Blank lines are dropped, so an empty route never probes the bare host.
			if utf8.ValidString(line) && strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		if errors.Is(err, io.EOF) {
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
