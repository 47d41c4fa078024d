// Package memfs is an in-memory filesystem holding names, modes and times
// but no file contents. It has no MkdirAll or Lchtimes, so callers go
// through the fs package fallbacks.
package memfs

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"
	"sync"
	"time"

	"tractor.dev/bank/fs"
)

const maxLinks = 40

type FS struct {
	nodes map[string]*node
	mu    sync.Mutex
	log   *slog.Logger
	now   func() time.Time
}

func New() *FS {
	fsys := &FS{
		nodes: make(map[string]*node),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:   time.Now,
	}
	fsys.nodes["."] = &node{name: ".", mode: fs.ModeDir | 0755}
	return fsys
}

func (fsys *FS) SetLogger(logger *slog.Logger) {
	fsys.log = logger
}

// SetClock sets the source of times given to new entries.
func (fsys *FS) SetClock(now func() time.Time) {
	fsys.now = now
}

func (fsys *FS) Open(name string) (fs.File, error) {
	fi, err := fsys.Stat(name)
	if err != nil {
		return nil, err
	}
	return &file{fi.(*node)}, nil
}

func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	return fsys.StatContext(context.Background(), name)
}

func (fsys *FS) StatContext(ctx context.Context, name string) (fi fs.FileInfo, err error) {
	defer func() {
		fsys.log.Debug("stat", "name", name, "err", err)
	}()
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
	}

	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	var n *node
	if fs.FollowSymlinks(ctx) {
		n, err = fsys.resolve(name)
	} else {
		n, err = fsys.lookup("stat", name)
	}
	if err != nil {
		return nil, err
	}
	cp := *n
	return &cp, nil
}

// lookup must be called with fsys.mu held.
func (fsys *FS) lookup(op, name string) (*node, error) {
	n, ok := fsys.nodes[path.Clean(name)]
	if !ok {
		return nil, &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	return n, nil
}

// resolve follows a final symbolic link. It must be called with fsys.mu held.
func (fsys *FS) resolve(name string) (*node, error) {
	cur := path.Clean(name)
	for range maxLinks {
		n, err := fsys.lookup("stat", cur)
		if err != nil {
			return nil, err
		}
		if n.mode&fs.ModeSymlink == 0 {
			return n, nil
		}
		if strings.HasPrefix(n.target, "/") {
			fsys.log.Debug("resolve", "error", "absolute symlink", "name", cur)
			return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
		}
		cur = path.Join(path.Dir(cur), n.target)
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrInvalid}
}

// parentDir checks that the parent of name is an existing directory. It must
// be called with fsys.mu held.
func (fsys *FS) parentDir(op, name string) error {
	dir := path.Dir(name)
	n, err := fsys.resolve(dir)
	if err != nil {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrNotExist}
	}
	if !n.IsDir() {
		return &fs.PathError{Op: op, Path: name, Err: fs.ErrInvalid}
	}
	return nil
}

func (fsys *FS) Create(name string) (f fs.File, err error) {
	defer func() {
		fsys.log.Debug("create", "name", name, "err", err)
	}()
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "create", Path: name, Err: fs.ErrInvalid}
	}
	name = path.Clean(name)

	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	if n, err := fsys.resolve(name); err == nil {
		if n.IsDir() {
			return nil, &fs.PathError{Op: "create", Path: name, Err: fs.ErrExist}
		}
		n.mtime = fsys.now()
		return &file{n}, nil
	}
	if err := fsys.parentDir("create", name); err != nil {
		return nil, err
	}
	t := fsys.now()
	n := &node{name: name, mode: 0644, atime: t, mtime: t}
	fsys.nodes[name] = n
	return &file{n}, nil
}

func (fsys *FS) Mkdir(name string, perm fs.FileMode) (err error) {
	defer func() {
		fsys.log.Debug("mkdir", "name", name, "perm", perm, "err", err)
	}()
	if !fs.ValidPath(name) {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
	}
	name = path.Clean(name)

	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	if _, ok := fsys.nodes[name]; ok {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if err := fsys.parentDir("mkdir", name); err != nil {
		return err
	}
	t := fsys.now()
	fsys.nodes[name] = &node{name: name, mode: fs.ModeDir | perm&fs.ModePerm, atime: t, mtime: t}
	return nil
}

func (fsys *FS) Chmod(name string, mode fs.FileMode) (err error) {
	defer func() {
		fsys.log.Debug("chmod", "name", name, "mode", mode, "err", err)
	}()
	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	n, err := fsys.resolve(name)
	if err != nil {
		return err
	}
	keep := fs.ModeType
	n.mode = n.mode&keep | mode&(fs.ModePerm|fs.ModeSetuid|fs.ModeSetgid|fs.ModeSticky)
	return nil
}

func (fsys *FS) Chtimes(name string, atime, mtime time.Time) (err error) {
	defer func() {
		fsys.log.Debug("chtimes", "name", name, "atime", atime, "mtime", mtime, "err", err)
	}()
	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	n, err := fsys.resolve(name)
	if err != nil {
		return err
	}
	if !atime.IsZero() {
		n.atime = atime
	}
	if !mtime.IsZero() {
		n.mtime = mtime
	}
	return nil
}

func (fsys *FS) Symlink(oldname, newname string) (err error) {
	defer func() {
		fsys.log.Debug("symlink", "oldname", oldname, "newname", newname, "err", err)
	}()
	if !fs.ValidPath(newname) {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrInvalid}
	}
	newname = path.Clean(newname)

	fsys.mu.Lock()
	defer fsys.mu.Unlock()
	if _, ok := fsys.nodes[newname]; ok {
		return &fs.PathError{Op: "symlink", Path: newname, Err: fs.ErrExist}
	}
	if err := fsys.parentDir("symlink", newname); err != nil {
		return err
	}
	t := fsys.now()
	fsys.nodes[newname] = &node{name: newname, mode: fs.ModeSymlink | 0777, atime: t, mtime: t, target: oldname}
	return nil
}

type node struct {
	name   string
	mode   fs.FileMode
	atime  time.Time
	mtime  time.Time
	target string
}

func (n *node) Name() string          { return path.Base(n.name) }
func (n *node) Size() int64           { return 0 }
func (n *node) Mode() fs.FileMode     { return n.mode }
func (n *node) ModTime() time.Time    { return n.mtime }
func (n *node) AccessTime() time.Time { return n.atime }
func (n *node) IsDir() bool           { return n.mode.IsDir() }
func (n *node) Sys() any              { return nil }

type file struct {
	n *node
}

func (f *file) Stat() (fs.FileInfo, error) {
	cp := *f.n
	return &cp, nil
}

func (f *file) Read([]byte) (int, error) {
	if f.n.IsDir() {
		return 0, &fs.PathError{Op: "read", Path: f.n.name, Err: fs.ErrInvalid}
	}
	return 0, io.EOF
}

func (f *file) Close() error { return nil }
