// Package sink implements the append-only match record file.
package sink

import (
	"os"
	"sync"

	"go.trai.ch/swagscan/internal/core/domain"
	"go.trai.ch/zerr"
)

// File implements ports.MatchSink on a plain text file.
// Each Append is its own open-append-close sequence under a mutex, so
// concurrent callers never interleave partial lines.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile ensures the file at path exists without truncating it.
func NewFile(path string) (*File, error) {
	//nolint:gosec // path comes from configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSinkCreateFailed.Error()), "file", path)
	}
	if err := f.Close(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSinkCreateFailed.Error()), "file", path)
	}
	return &File{path: path}, nil
}

// Path returns the backing file path.
func (s *File) Path() string {
	return s.path
}

// Append writes line and a newline in a single write.
func (s *File) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path comes from configuration
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, domain.FilePerm)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSinkAppendFailed.Error()), "file", s.path)
	}

	_, werr := f.WriteString(line + "\n")
	cerr := f.Close()
	if werr != nil {
		return zerr.With(zerr.Wrap(werr, domain.ErrSinkAppendFailed.Error()), "file", s.path)
	}
	if cerr != nil {
		return zerr.With(zerr.Wrap(cerr, domain.ErrSinkAppendFailed.Error()), "file", s.path)
	}
	return nil
}
