package fs

type CreateFS interface {
	FS
	Create(name string) (File, error)
}

// Create creates or truncates the named file if supported.
func Create(fsys FS, name string) (File, error) {
	if c, ok := fsys.(CreateFS); ok {
		return c.Create(name)
	}
	return nil, opErr(fsys, name, "create", ErrNotSupported)
}

// Touch creates the named file if it does not exist and closes it. An existing
// file is left untouched, including its contents.
func Touch(fsys FS, name string) (created bool, err error) {
	ok, err := Exists(fsys, name)
	if err != nil || ok {
		return false, err
	}
	f, err := Create(fsys, name)
	if err != nil {
		return false, err
	}
	return true, f.Close()
}
