package fs

type SymlinkFS interface {
	FS
	Symlink(oldname, newname string) error
}

func Symlink(fsys FS, oldname, newname string) error {
	if c, ok := fsys.(SymlinkFS); ok {
		return c.Symlink(oldname, newname)
	}
	return opErr(fsys, newname, "symlink", ErrNotSupported)
}
