package bank

import (
	"fmt"
	"strconv"

	"tractor.dev/bank/fs"
	"tractor.dev/bank/internal/stamp"
)

// Options mirrors the command line flags.
type Options struct {
	Directory   bool
	File        bool
	Parents     bool
	Mode        string
	Interactive bool
	Verbose     bool
	NoCreate    bool

	Date      string
	Timestamp string
	Reference string

	AccessOnly    bool
	ModifyOnly    bool
	NoDereference bool
}

// ValidationError reports a flag combination or argument that is rejected
// before anything on disk is touched.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// Validate checks paths and the flag combinations in o.
func (o Options) Validate(paths []string) error {
	if len(paths) == 0 {
		return invalid("at least one path is required")
	}
	if o.Directory && o.File {
		return invalid("cannot specify both --directory and --file flags")
	}
	sources := 0
	for _, v := range []string{o.Date, o.Timestamp, o.Reference} {
		if v != "" {
			sources++
		}
	}
	if sources > 1 {
		return invalid("cannot specify multiple time sources (--date, --timestamp, --reference)")
	}
	if o.AccessOnly && o.ModifyOnly {
		return invalid("cannot specify both --atime and --mtime flags")
	}
	if o.Mode != "" {
		if _, err := ParseMode(o.Mode); err != nil {
			return err
		}
	}
	for _, p := range paths {
		if p == "" {
			return invalid("empty path argument")
		}
	}
	return nil
}

// Source returns the time source selected by o. A reference value is
// still a host path.
func (o Options) Source() stamp.Source {
	switch {
	case o.Reference != "":
		return stamp.Source{Kind: stamp.Reference, Value: o.Reference}
	case o.Date != "":
		return stamp.Source{Kind: stamp.Date, Value: o.Date}
	case o.Timestamp != "":
		return stamp.Source{Kind: stamp.Compact, Value: o.Timestamp}
	}
	return stamp.Source{}
}

// ParseMode parses octal permission bits such as "755" or "4755" into a
// FileMode, mapping the setuid, setgid and sticky bits.
func ParseMode(s string) (fs.FileMode, error) {
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil || v > 0o7777 {
		return 0, invalid("invalid mode format: %s", s)
	}
	mode := fs.FileMode(v & 0o777)
	if v&0o4000 != 0 {
		mode |= fs.ModeSetuid
	}
	if v&0o2000 != 0 {
		mode |= fs.ModeSetgid
	}
	if v&0o1000 != 0 {
		mode |= fs.ModeSticky
	}
	return mode, nil
}
