// Package document reads BBCode source files and writes the converted
// output next to them.
package document

import (
	stderrors "errors"
	"io"
	"io/fs"

	"github.com/arthur-debert/htmlify/pkg/errors"
	"github.com/arthur-debert/htmlify/pkg/filesystem"
	"github.com/arthur-debert/htmlify/pkg/logging"
)

// DefaultMaxSize is the largest document read by default (1 MiB)
const DefaultMaxSize int64 = 1024 * 1024

// DefaultSuffix is appended to input paths to form output paths
const DefaultSuffix = "_htmlified"

// Store reads and writes documents on a filesystem
type Store struct {
	fs      filesystem.FS
	maxSize int64
	suffix  string
}

// Option configures a Store
type Option func(*Store)

// WithMaxSize sets the size limit; values <= 0 keep the default
func WithMaxSize(n int64) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxSize = n
		}
	}
}

// WithSuffix sets the output suffix; an empty suffix keeps the default
func WithSuffix(suffix string) Option {
	return func(s *Store) {
		if suffix != "" {
			s.suffix = suffix
		}
	}
}

// NewStore creates a store on fsys
func NewStore(fsys filesystem.FS, opts ...Option) *Store {
	s := &Store{fs: fsys, maxSize: DefaultMaxSize, suffix: DefaultSuffix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxSize returns the size limit in bytes
func (s *Store) MaxSize() int64 { return s.maxSize }

// Check verifies that every path names an existing regular file and
// that no path is given twice. Both are invalid input.
func (s *Store) Check(paths []string) error {
	if len(paths) == 0 {
		return errors.New(errors.ErrInvalidInput, "no input files given")
	}

	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		if seen[path] {
			return errors.Newf(errors.ErrInvalidInput, "file %q was specified more than once", path).
				WithDetail("path", path)
		}
		seen[path] = true

		info, err := s.fs.Stat(path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInvalidInput, "invalid input file %q", path).
				WithDetail("path", path)
		}
		if info.IsDir() {
			return errors.Newf(errors.ErrInvalidInput, "%q is a directory", path).
				WithDetail("path", path)
		}
	}
	return nil
}

// Read returns the content of path. Files larger than the size limit
// are rejected before they are read.
func (s *Store) Read(path string) (string, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		return "", fileError(err, path, "failed to stat")
	}
	if info.Size() > s.maxSize {
		return "", tooLarge(path, info.Size(), s.maxSize)
	}

	f, err := s.fs.Open(path)
	if err != nil {
		return "", fileError(err, path, "failed to open")
	}
	defer func() { _ = f.Close() }()

	// the file may have grown since Stat
	data, err := io.ReadAll(io.LimitReader(f, s.maxSize+1))
	if err != nil {
		return "", fileError(err, path, "failed to read")
	}
	if int64(len(data)) > s.maxSize {
		return "", tooLarge(path, int64(len(data)), s.maxSize)
	}

	logger := logging.GetLogger("document")
	logger.Trace().
		Str("path", path).
		Int("bytes", len(data)).
		Msg("Read document")
	return string(data), nil
}

// OutputPath returns where the converted form of path is written
func (s *Store) OutputPath(path string) string {
	return path + s.suffix
}

// Write stores content as the output of path and returns the output path
func (s *Store) Write(path, content string) (string, error) {
	out := s.OutputPath(path)
	if err := s.fs.WriteFile(out, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "could not write %s", out).
			WithDetail("path", out)
	}
	return out, nil
}

func fileError(err error, path, msg string) error {
	code := errors.ErrFileAccess
	if stderrors.Is(err, fs.ErrNotExist) {
		code = errors.ErrFileNotFound
	}
	return errors.Wrapf(err, code, "%s %s", msg, path).WithDetail("path", path)
}

func tooLarge(path string, size, limit int64) error {
	return errors.Newf(errors.ErrFileTooLarge, "%s is larger than %d bytes", path, limit).
		WithDetail("path", path).
		WithDetail("size", size)
}
