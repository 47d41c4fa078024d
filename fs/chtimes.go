package fs

import (
	"time"
)

type ChtimesFS interface {
	FS
	Chtimes(name string, atime time.Time, mtime time.Time) error
}

// Chtimes changes the access and modification times of the named file if supported.
func Chtimes(fsys FS, name string, atime time.Time, mtime time.Time) error {
	if c, ok := fsys.(ChtimesFS); ok {
		return c.Chtimes(name, atime, mtime)
	}
	return opErr(fsys, name, "chtimes", ErrNotSupported)
}

type LchtimesFS interface {
	FS
	Lchtimes(name string, atime time.Time, mtime time.Time) error
}

// Lchtimes changes the access and modification times of the named file
// without following a final symbolic link. Filesystems that cannot do this
// return an error matching ErrNotSupported.
func Lchtimes(fsys FS, name string, atime time.Time, mtime time.Time) error {
	if c, ok := fsys.(LchtimesFS); ok {
		return c.Lchtimes(name, atime, mtime)
	}
	return opErr(fsys, name, "lchtimes", ErrNotSupported)
}
