package stamp

import (
	"fmt"
	"time"

	"tractor.dev/bank/fs"
)

// Application holds the times to set on an entry. A nil field keeps the
// entry's current value.
type Application struct {
	Atime *time.Time
	Mtime *time.Time
}

// Derive selects which of the two times t is applied to. With neither flag
// set both are.
func Derive(t time.Time, atimeOnly, mtimeOnly bool) Application {
	switch {
	case atimeOnly:
		return Application{Atime: &t}
	case mtimeOnly:
		return Application{Mtime: &t}
	default:
		return Application{Atime: &t, Mtime: &t}
	}
}

// Apply sets the times in app on name. Unset fields are filled from the
// entry's current metadata. With noDereference a symbolic link gets its own
// times changed; filesystems that cannot do that fail with an error matching
// fs.ErrNotSupported.
func Apply(fsys fs.FS, name string, app Application, noDereference bool) error {
	stat := fs.Stat
	if noDereference {
		stat = fs.Lstat
	}
	fi, err := stat(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read current timestamps: %w", err)
	}

	atime, mtime := fs.Times(fi)
	if app.Atime != nil {
		atime = *app.Atime
	}
	if app.Mtime != nil {
		mtime = *app.Mtime
	}

	if noDereference && fi.Mode()&fs.ModeSymlink != 0 {
		err = fs.Lchtimes(fsys, name, atime, mtime)
	} else {
		err = fs.Chtimes(fsys, name, atime, mtime)
	}
	if err != nil {
		return fmt.Errorf("failed to set timestamps: %w", err)
	}
	return nil
}
