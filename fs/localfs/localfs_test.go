package localfs

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"tractor.dev/bank/fs"
)

func TestRel(t *testing.T) {
	dir := t.TempDir()
	fsys, err := New(dir)
	if err != nil {
		t.Fatalf("Failed to create localfs: %v", err)
	}
	defer fsys.Close()

	tests := []struct {
		in   string
		want string
	}{
		{filepath.Join(dir, "report.txt"), "report.txt"},
		{filepath.Join(dir, "data") + string(filepath.Separator), "data"},
		{filepath.Join(dir, "a", "b", "c.md"), "a/b/c.md"},
		{dir, "."},
	}
	for _, tt := range tests {
		got, err := fsys.Rel(tt.in)
		if err != nil {
			t.Fatalf("Rel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Rel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := fsys.Rel(filepath.Dir(dir)); !errors.Is(err, fs.ErrInvalid) {
		t.Fatalf("expected ErrInvalid for a path outside the root, got %v", err)
	}
}

func TestCreateAndMkdir(t *testing.T) {
	dir := t.TempDir()
	fsys, err := New(dir)
	if err != nil {
		t.Fatalf("Failed to create localfs: %v", err)
	}
	defer fsys.Close()

	if err := fs.MkdirAll(fsys, "a/b", 0755); err != nil {
		t.Fatal(err)
	}
	created, err := fs.Touch(fsys, "a/b/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("expected file to be created")
	}

	if err := os.WriteFile(filepath.Join(dir, "a/b/file.txt"), []byte("keep"), 0644); err != nil {
		t.Fatal(err)
	}
	created, err = fs.Touch(fsys, "a/b/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Fatal("expected existing file to be left alone")
	}
	b, err := os.ReadFile(filepath.Join(dir, "a/b/file.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "keep" {
		t.Fatalf("existing file was truncated: %q", b)
	}

	isdir, err := fs.IsDir(fsys, "a/b")
	if err != nil {
		t.Fatal(err)
	}
	if !isdir {
		t.Fatal("expected a/b to be a directory")
	}
}

func TestChtimesKeepsBothValues(t *testing.T) {
	dir := t.TempDir()
	fsys, err := New(dir)
	if err != nil {
		t.Fatalf("Failed to create localfs: %v", err)
	}
	defer fsys.Close()

	if _, err := fs.Touch(fsys, "f"); err != nil {
		t.Fatal(err)
	}
	atime := time.Date(2001, 2, 3, 4, 5, 6, 0, time.UTC)
	mtime := time.Date(2011, 12, 13, 14, 15, 16, 0, time.UTC)
	if err := fs.Chtimes(fsys, "f", atime, mtime); err != nil {
		t.Fatal(err)
	}

	fi, err := fs.Stat(fsys, "f")
	if err != nil {
		t.Fatal(err)
	}
	gotA, gotM := fs.Times(fi)
	if !gotM.Equal(mtime) {
		t.Errorf("mtime = %v, want %v", gotM, mtime)
	}
	if runtime.GOOS != "windows" && !gotA.Equal(atime) {
		t.Errorf("atime = %v, want %v", gotA, atime)
	}
}

func TestLchtimesOnSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	dir := t.TempDir()
	fsys, err := New(dir)
	if err != nil {
		t.Fatalf("Failed to create localfs: %v", err)
	}
	defer fsys.Close()

	if _, err := fs.Touch(fsys, "target"); err != nil {
		t.Fatal(err)
	}
	if err := fs.Symlink(fsys, "target", "link"); err != nil {
		t.Fatal(err)
	}
	before, err := fs.Stat(fsys, "target")
	if err != nil {
		t.Fatal(err)
	}

	when := time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC)
	if err := fs.Lchtimes(fsys, "link", when, when); err != nil {
		t.Fatal(err)
	}

	link, err := fs.Lstat(fsys, "link")
	if err != nil {
		t.Fatal(err)
	}
	if link.Mode()&fs.ModeSymlink == 0 {
		t.Fatal("expected Lstat to report a symlink")
	}
	if !link.ModTime().Equal(when) {
		t.Errorf("link mtime = %v, want %v", link.ModTime(), when)
	}

	after, err := fs.Stat(fsys, "target")
	if err != nil {
		t.Fatal(err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Errorf("target mtime changed from %v to %v", before.ModTime(), after.ModTime())
	}
}

func TestHostFollowsAbsoluteSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on windows")
	}
	dir := t.TempDir()
	realDir := filepath.Join(dir, "real")
	if err := os.Mkdir(realDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(realDir, filepath.Join(dir, "via")); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(realDir, "target"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(filepath.Join(realDir, "target"), filepath.Join(dir, "abslink")); err != nil {
		t.Fatal(err)
	}

	fsys, err := NewHost()
	if err != nil {
		t.Fatal(err)
	}
	defer fsys.Close()

	name, err := fsys.Rel(filepath.Join(dir, "via", "new.txt"))
	if err != nil {
		t.Fatal(err)
	}
	created, err := fs.Touch(fsys, name)
	if err != nil || !created {
		t.Fatalf("Touch through symlinked dir: created=%v err=%v", created, err)
	}
	if _, err := os.Stat(filepath.Join(realDir, "new.txt")); err != nil {
		t.Fatalf("file not created in the link target: %v", err)
	}

	name, err = fsys.Rel(filepath.Join(dir, "abslink"))
	if err != nil {
		t.Fatal(err)
	}
	fi, err := fs.Stat(fsys, name)
	if err != nil {
		t.Fatal(err)
	}
	if !fi.Mode().IsRegular() {
		t.Errorf("Stat did not follow the absolute link: %v", fi.Mode())
	}
	if li, err := fs.Lstat(fsys, name); err != nil || li.Mode()&fs.ModeSymlink == 0 {
		t.Errorf("Lstat should report the link itself: %v", err)
	}
}
