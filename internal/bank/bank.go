// Package bank creates files and directories and sets their times and
// permissions, one path at a time.
package bank

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"tractor.dev/bank/fs"
	"tractor.dev/bank/internal/stamp"
	"tractor.dev/bank/internal/target"
	"tractor.dev/bank/internal/ui"
)

const Version = "v0.2.0"

// ErrNotDirectory is returned when a directory is requested where a
// non-directory already exists.
var ErrNotDirectory = errors.New("path exists but is not a directory")

// Runner carries the collaborators a run needs.
type Runner struct {
	FS fs.FS
	// Rel maps a path argument to a name on FS.
	Rel      func(p string) (string, error)
	Clock    stamp.Clock
	Prompter target.Prompter
	Out      *ui.Printer
	Log      *slog.Logger
}

type run struct {
	*Runner
	opts    Options
	mode    fs.FileMode
	instant time.Time
	custom  bool
	many    bool
}

// Run validates opts, resolves the time source once and then processes
// paths in order. The first error stops the run.
func (r *Runner) Run(ctx context.Context, opts Options, paths []string) error {
	if err := opts.Validate(paths); err != nil {
		return err
	}
	rn := &run{Runner: r, opts: opts, many: len(paths) > 1}
	if opts.Mode != "" {
		rn.mode, _ = ParseMode(opts.Mode)
	}

	src := opts.Source()
	resolver := &stamp.Resolver{FS: r.FS, Clock: r.clock(), Rel: r.Rel}
	instant, custom, err := resolver.Resolve(src)
	if err != nil {
		return err
	}
	rn.instant, rn.custom = instant, custom
	if custom {
		r.log().Debug("resolved time source", "source", src.Kind, "value", src.Value, "instant", instant)
	}

	if opts.Verbose {
		r.Out.Banner("Bank", Version)
		if rn.many {
			r.Out.Println("Processing", r.Out.Note(fmt.Sprint(len(paths))), "paths...")
		}
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := rn.process(p); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) clock() stamp.Clock {
	if r.Clock == nil {
		return stamp.SystemClock
	}
	return r.Clock
}

func (r *Runner) log() *slog.Logger {
	if r.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Log
}

func (rn *run) process(raw string) error {
	name, err := rn.Rel(raw)
	if err != nil {
		return err
	}
	if rn.opts.NoCreate {
		return rn.update(raw, name)
	}

	var prompter target.Prompter
	if rn.opts.Interactive {
		prompter = rn.Prompter
	}
	kind, err := target.Classify(rn.FS, name, raw, target.Hints{
		Directory: rn.opts.Directory,
		File:      rn.opts.File,
		Prompter:  prompter,
	})
	if err != nil {
		return fmt.Errorf("failed to classify %s: %w", raw, err)
	}
	rn.log().Debug("classified", "path", raw, "kind", kind)

	if rn.opts.Verbose {
		switch kind {
		case target.File:
			rn.Out.Println("Creating file:", rn.Out.Pending(raw))
		case target.Directory:
			rn.Out.Println("Creating directory:", rn.Out.Pending(raw))
		}
	}

	if rn.opts.Parents {
		if err := rn.parents(raw, name); err != nil {
			return err
		}
	}

	switch kind {
	case target.File:
		err = rn.createFile(raw, name)
	case target.Directory:
		err = rn.createDirectory(raw, name)
	}
	if err != nil {
		return err
	}

	if rn.custom || rn.opts.AccessOnly || rn.opts.ModifyOnly {
		if err := rn.applyTimes(raw, name); err != nil {
			return err
		}
	}

	if rn.opts.Mode != "" {
		if err := fs.Chmod(rn.FS, name, rn.mode); err != nil {
			return fmt.Errorf("failed to set permissions for %s: %w", raw, err)
		}
		if rn.opts.Verbose {
			rn.Out.Println("Set permissions to", rn.Out.Done(rn.opts.Mode), "for", raw)
		}
	}

	switch {
	case rn.opts.Verbose:
		rn.Out.Println(rn.Out.Check(), "Created:", rn.Out.Done(raw))
	case rn.many:
		rn.Out.Println(rn.Out.Check(), rn.Out.Done(raw))
	}
	return nil
}

// update only touches the times of an existing entry.
func (rn *run) update(raw, name string) error {
	ok, err := rn.exists(name)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", raw, err)
	}
	if !ok {
		if rn.opts.Verbose {
			rn.Out.Println("Skipping non-existent path in no-create mode:", rn.Out.Pending(raw))
		}
		return nil
	}

	if err := rn.applyTimes(raw, name); err != nil {
		return err
	}

	switch {
	case rn.opts.Verbose:
		rn.Out.Println(rn.Out.Check(), "Updated timestamps:", rn.Out.Done(raw))
	case rn.many:
		rn.Out.Println(rn.Out.Check(), rn.Out.Done(raw))
	}
	return nil
}

// exists follows symlinks unless the link itself is the subject.
func (rn *run) exists(name string) (bool, error) {
	if rn.opts.NoDereference {
		_, err := fs.Lstat(rn.FS, name)
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return err == nil, err
	}
	return fs.Exists(rn.FS, name)
}

func (rn *run) parents(raw, name string) error {
	parent := path.Dir(name)
	if parent == "." {
		return nil
	}
	ok, err := fs.Exists(rn.FS, parent)
	if err != nil {
		return fmt.Errorf("failed to create parent directories for %s: %w", raw, err)
	}
	if ok {
		return nil
	}
	if err := fs.MkdirAll(rn.FS, parent, 0777); err != nil {
		return fmt.Errorf("failed to create parent directories for %s: %w", raw, err)
	}
	if rn.opts.Verbose {
		rn.Out.Println("Created parent directories:", rn.Out.Done(displayParent(raw)))
	}
	return nil
}

func (rn *run) createFile(raw, name string) error {
	created, err := fs.Touch(rn.FS, name)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", raw, err)
	}
	if !created && rn.opts.Verbose {
		rn.Out.Println("File already exists:", rn.Out.Pending(raw))
	}
	return nil
}

func (rn *run) createDirectory(raw, name string) error {
	isDir, err := fs.IsDir(rn.FS, name)
	switch {
	case err == nil && isDir:
		if rn.opts.Verbose {
			rn.Out.Println("Directory already exists:", rn.Out.Pending(raw))
		}
		return nil
	case err == nil:
		return &fs.PathError{Op: "mkdir", Path: raw, Err: ErrNotDirectory}
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to create directory %s: %w", raw, err)
	}

	if err := fs.Mkdir(rn.FS, name, 0777); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", raw, err)
	}
	return nil
}

func (rn *run) applyTimes(raw, name string) error {
	at := rn.instant
	if !rn.custom {
		at = rn.clock().Now()
	}
	app := stamp.Derive(at, rn.opts.AccessOnly, rn.opts.ModifyOnly)

	err := stamp.Apply(rn.FS, name, app, rn.opts.NoDereference)
	if errors.Is(err, fs.ErrNotSupported) && rn.opts.NoDereference {
		return fmt.Errorf("symlink timestamp modification not supported on this platform for %s: %w", raw, err)
	}
	if err != nil {
		return fmt.Errorf("failed to update timestamps for %s: %w", raw, err)
	}
	rn.log().Debug("applied times", "path", raw, "atime", app.Atime, "mtime", app.Mtime)
	if rn.opts.Verbose {
		rn.Out.Println("Updated timestamps for:", rn.Out.Note(raw))
	}
	return nil
}

func displayParent(raw string) string {
	trimmed := strings.TrimRight(raw, `/\`)
	if trimmed == "" {
		return raw
	}
	return filepath.Dir(trimmed)
}
