package fs

import (
	"errors"
	"fmt"
	"path"
)

type MkdirFS interface {
	FS
	Mkdir(name string, perm FileMode) error
}

// Mkdir creates a directory with the given permissions if supported.
func Mkdir(fsys FS, name string, perm FileMode) error {
	if m, ok := fsys.(MkdirFS); ok {
		return m.Mkdir(name, perm)
	}
	return fmt.Errorf("%w on %T: Mkdir %s", ErrNotSupported, fsys, name)
}

type MkdirAllFS interface {
	FS
	MkdirAll(path string, perm FileMode) error
}

// MkdirAll creates a directory and any necessary parents with the given permissions if supported.
func MkdirAll(fsys FS, name string, perm FileMode) error {
	if m, ok := fsys.(MkdirAllFS); ok {
		return m.MkdirAll(name, perm)
	}

	err := Mkdir(fsys, name, perm)
	if err == nil || errors.Is(err, ErrExist) {
		if ok, derr := DirExists(fsys, name); derr == nil && ok {
			return nil
		}
		return err
	}
	if !errors.Is(err, ErrNotExist) {
		return err
	}

	// parent doesn't exist, make parent dirs and try again
	if path.Dir(name) != "." {
		if err := MkdirAll(fsys, path.Dir(name), perm); err != nil {
			return err
		}
		return Mkdir(fsys, name, perm)
	}

	return fmt.Errorf("%w on %T: MkdirAll %s", ErrNotSupported, fsys, name)
}
