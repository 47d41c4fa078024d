// Package stamp resolves the time source given on the command line into a
// single UTC instant and applies it to filesystem entries.
package stamp

import (
	"fmt"
	"time"

	"tractor.dev/bank/fs"
)

// SourceKind tags which time source a Source holds.
type SourceKind int

const (
	None SourceKind = iota
	Reference
	Date
	Compact
)

func (k SourceKind) String() string {
	switch k {
	case None:
		return "none"
	case Reference:
		return "reference"
	case Date:
		return "date"
	case Compact:
		return "timestamp"
	default:
		return fmt.Sprintf("SourceKind(%d)", int(k))
	}
}

// Source is one of the mutually exclusive time inputs. For Reference the
// value is the path as the user gave it.
type Source struct {
	Kind  SourceKind
	Value string
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the host clock.
var SystemClock Clock = systemClock{}

// Resolver turns a Source into an instant.
type Resolver struct {
	FS    fs.FS
	Clock Clock
	// Rel maps a reference path to a name on FS. Nil uses the path as is.
	Rel func(p string) (string, error)
}

func (r *Resolver) clock() Clock {
	if r.Clock == nil {
		return SystemClock
	}
	return r.Clock
}

// Resolve returns the instant for src and true, or false for a None source.
func (r *Resolver) Resolve(src Source) (time.Time, bool, error) {
	var (
		t   time.Time
		err error
	)
	switch src.Kind {
	case None:
		return time.Time{}, false, nil
	case Reference:
		t, err = r.reference(src.Value)
	case Date:
		t, err = ParseDate(src.Value)
	case Compact:
		t, err = ParseCompact(src.Value, r.clock().Now())
	default:
		return time.Time{}, false, fmt.Errorf("unknown time source %v", src.Kind)
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}

func (r *Resolver) reference(p string) (time.Time, error) {
	name := p
	if r.Rel != nil {
		var err error
		if name, err = r.Rel(p); err != nil {
			return time.Time{}, err
		}
	}
	ok, err := fs.Exists(r.FS, name)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read metadata from reference file %s: %w", p, err)
	}
	if !ok {
		return time.Time{}, &fs.PathError{Op: "reference file", Path: p, Err: fs.ErrNotExist}
	}
	fi, err := fs.Stat(r.FS, name)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read metadata from reference file %s: %w", p, err)
	}
	return fi.ModTime().UTC(), nil
}
