//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package localfs

import (
	"time"

	"golang.org/x/sys/unix"
	"tractor.dev/bank/fs"
)

func (fsys *FS) Lchtimes(name string, atime time.Time, mtime time.Time) error {
	fsys.log.Debug("lchtimes", "name", name, "atime", atime, "mtime", mtime)

	ts := make([]unix.Timespec, 2)
	for i, t := range []time.Time{atime, mtime} {
		spec, err := unix.TimeToTimespec(t)
		if err != nil {
			return &fs.PathError{Op: "lchtimes", Path: name, Err: err}
		}
		ts[i] = spec
	}

	err := unix.UtimesNanoAt(unix.AT_FDCWD, fsys.hostPath(name), ts, unix.AT_SYMLINK_NOFOLLOW)
	if err != nil {
		return &fs.PathError{Op: "lchtimes", Path: name, Err: err}
	}
	return nil
}
