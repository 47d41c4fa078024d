package localfs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tractor.dev/bank/fs"
)

// FS is a filesystem over a host directory. One made with New is confined
// to that directory through an os.Root; the one from NewHost addresses host
// paths directly so symbolic links anywhere on the volume resolve as usual.
type FS struct {
	dir  string
	root *os.Root
	log  *slog.Logger
}

func New(dir string) (*FS, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	r, err := os.OpenRoot(abs)
	if err != nil {
		return nil, err
	}
	return &FS{
		dir:  abs,
		root: r,
		log:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// NewHost returns an unconfined filesystem at the root of the volume holding
// the working directory, so any path the user names on that volume can be
// addressed.
func NewHost() (*FS, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return &FS{
		dir: filepath.VolumeName(wd) + string(filepath.Separator),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

func (fsys *FS) SetLogger(logger *slog.Logger) {
	fsys.log = logger
}

// Dir returns the absolute host directory the filesystem is rooted at.
func (fsys *FS) Dir() string {
	return fsys.dir
}

func (fsys *FS) Close() error {
	if fsys.root == nil {
		return nil
	}
	return fsys.root.Close()
}

// Rel converts a host path, absolute or relative to the working directory,
// into a name on fsys. Paths outside the root are rejected.
func (fsys *FS) Rel(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", &fs.PathError{Op: "rel", Path: p, Err: err}
	}
	rel, err := filepath.Rel(fsys.dir, abs)
	if err != nil {
		return "", &fs.PathError{Op: "rel", Path: p, Err: err}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &fs.PathError{Op: "rel", Path: p, Err: fs.ErrInvalid}
	}
	return filepath.ToSlash(rel), nil
}

func (fsys *FS) hostPath(name string) string {
	return filepath.Join(fsys.dir, filepath.FromSlash(name))
}

func (fsys *FS) Create(name string) (fs.File, error) {
	fsys.log.Debug("create", "name", name)
	var f *os.File
	var e error
	if fsys.root != nil {
		f, e = fsys.root.Create(name)
	} else {
		f, e = os.Create(fsys.hostPath(name))
	}
	if f == nil {
		// a nil *os.File in an fs.File would not compare equal to nil
		return nil, e
	}
	return f, e
}

func (fsys *FS) Mkdir(name string, perm fs.FileMode) error {
	fsys.log.Debug("mkdir", "name", name, "perm", perm)
	if fsys.root != nil {
		return fsys.root.Mkdir(name, perm)
	}
	return os.Mkdir(fsys.hostPath(name), perm)
}

func (fsys *FS) MkdirAll(path string, perm fs.FileMode) error {
	fsys.log.Debug("mkdirall", "name", path, "perm", perm)
	if fsys.root != nil {
		return fsys.root.MkdirAll(path, perm)
	}
	return os.MkdirAll(fsys.hostPath(path), perm)
}

func (fsys *FS) Open(name string) (fs.File, error) {
	var f *os.File
	var e error
	if fsys.root != nil {
		f, e = fsys.root.Open(name)
	} else {
		f, e = os.Open(fsys.hostPath(name))
	}
	if f == nil {
		return nil, e
	}
	return f, e
}

func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	return fsys.StatContext(context.Background(), name)
}

func (fsys *FS) StatContext(ctx context.Context, name string) (fs.FileInfo, error) {
	follow := fs.FollowSymlinks(ctx)
	switch {
	case fsys.root != nil && follow:
		return fsys.root.Stat(name)
	case fsys.root != nil:
		return fsys.root.Lstat(name)
	case follow:
		return os.Stat(fsys.hostPath(name))
	default:
		return os.Lstat(fsys.hostPath(name))
	}
}

func (fsys *FS) Chmod(name string, mode fs.FileMode) error {
	fsys.log.Debug("chmod", "name", name, "mode", mode)
	if fsys.root != nil {
		return fsys.root.Chmod(name, mode)
	}
	return os.Chmod(fsys.hostPath(name), mode)
}

func (fsys *FS) Chtimes(name string, atime time.Time, mtime time.Time) error {
	fsys.log.Debug("chtimes", "name", name, "atime", atime, "mtime", mtime)
	if fsys.root != nil {
		return fsys.root.Chtimes(name, atime, mtime)
	}
	return os.Chtimes(fsys.hostPath(name), atime, mtime)
}

func (fsys *FS) Symlink(oldname string, newname string) error {
	if fsys.root != nil {
		return fsys.root.Symlink(oldname, newname)
	}
	return os.Symlink(oldname, fsys.hostPath(newname))
}
