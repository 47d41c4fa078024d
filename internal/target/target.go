// Package target decides whether a path argument names a file or a directory.
package target

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"tractor.dev/bank/fs"
)

// Kind is the kind of entry a path argument is created as.
type Kind int

const (
	File Kind = iota
	Directory
)

func (k Kind) String() string {
	switch k {
	case File:
		return "file"
	case Directory:
		return "directory"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrConflictingFlags is returned when both explicit kinds are requested.
var ErrConflictingFlags = errors.New("cannot specify both --directory and --file flags")

// Prompter asks the user to pick one of options and returns its index.
type Prompter interface {
	Choose(message string, options []string, def int) (int, error)
}

// Hints carries the caller's explicit choices. A nil Prompter means there
// is no interactive capability.
type Hints struct {
	Directory bool
	File      bool
	Prompter  Prompter
}

type candidate struct {
	fsys  fs.FS
	name  string
	raw   string
	hints Hints
}

// rule reports a kind and true when it decides the candidate.
type rule func(c candidate) (Kind, bool, error)

// rules are evaluated in order and the first match wins.
var rules = []rule{
	explicit,
	existing,
	extension,
	trailingSeparator,
	interactive,
}

// Classify returns the kind for the entry name on fsys, given the raw
// argument the user typed.
func Classify(fsys fs.FS, name, raw string, hints Hints) (Kind, error) {
	if hints.Directory && hints.File {
		return File, ErrConflictingFlags
	}
	c := candidate{fsys: fsys, name: name, raw: raw, hints: hints}
	for _, r := range rules {
		k, ok, err := r(c)
		if err != nil {
			return File, err
		}
		if ok {
			return k, nil
		}
	}
	return File, nil
}

func explicit(c candidate) (Kind, bool, error) {
	switch {
	case c.hints.Directory:
		return Directory, true, nil
	case c.hints.File:
		return File, true, nil
	}
	return File, false, nil
}

func existing(c candidate) (Kind, bool, error) {
	fi, err := fs.Stat(c.fsys, c.name)
	if errors.Is(err, fs.ErrNotExist) {
		return File, false, nil
	}
	if err != nil {
		return File, false, err
	}
	if fi.IsDir() {
		return Directory, true, nil
	}
	return File, true, nil
}

func extension(c candidate) (Kind, bool, error) {
	if Ext(c.raw) != "" {
		return File, true, nil
	}
	return File, false, nil
}

func trailingSeparator(c candidate) (Kind, bool, error) {
	if strings.HasSuffix(c.raw, "/") || strings.HasSuffix(c.raw, `\`) {
		return Directory, true, nil
	}
	return File, false, nil
}

var choices = []string{"File", "Directory"}

func interactive(c candidate) (Kind, bool, error) {
	if c.hints.Prompter == nil {
		return File, false, nil
	}
	i, err := c.hints.Prompter.Choose(fmt.Sprintf("What should '%s' be?", c.raw), choices, 0)
	if err != nil {
		return File, false, err
	}
	switch i {
	case 0:
		return File, true, nil
	case 1:
		return Directory, true, nil
	default:
		return File, false, fmt.Errorf("prompt returned invalid choice %d", i)
	}
}

// Ext returns the extension of the final component of p without the dot.
// Trailing separators are ignored. A leading dot does not start an
// extension, so ".gitignore" has none while ".config.yml" has "yml".
func Ext(p string) string {
	end := len(p)
	for end > 0 && os.IsPathSeparator(p[end-1]) {
		end--
	}
	p = p[:end]

	start := len(p)
	for start > 0 && !os.IsPathSeparator(p[start-1]) {
		start--
	}
	base := p[start:]
	if base == "" || base == "." || base == ".." {
		return ""
	}

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return ""
	}
	return base[i+1:]
}
