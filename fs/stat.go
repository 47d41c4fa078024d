package fs

import (
	"context"
)

func Stat(fsys FS, name string) (FileInfo, error) {
	return StatContext(context.Background(), fsys, name)
}

// Lstat is Stat without following a final symbolic link.
func Lstat(fsys FS, name string) (FileInfo, error) {
	return StatContext(WithNoFollow(context.Background()), fsys, name)
}

type StatContextFS interface {
	FS
	StatContext(ctx context.Context, name string) (FileInfo, error)
}

func StatContext(ctx context.Context, fsys FS, name string) (FileInfo, error) {
	if fsys, ok := fsys.(StatContextFS); ok {
		return fsys.StatContext(ctx, name)
	}

	if !FollowSymlinks(ctx) {
		return nil, opErr(fsys, name, "lstat", ErrNotSupported)
	}

	if fsys, ok := fsys.(StatFS); ok {
		return fsys.Stat(name)
	}

	file, err := fsys.Open(name)
	if err != nil {
		return nil, opErr(fsys, name, "stat", err)
	}
	defer file.Close()
	return file.Stat()
}
