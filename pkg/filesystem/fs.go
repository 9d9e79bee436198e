package filesystem

import (
	"io"
	"io/fs"
)

// FS is the subset of filesystem operations htmlify needs
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}
