//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package localfs

import (
	"time"

	"tractor.dev/bank/fs"
)

func (fsys *FS) Lchtimes(name string, atime time.Time, mtime time.Time) error {
	return &fs.PathError{Op: "lchtimes", Path: name, Err: fs.ErrNotSupported}
}
