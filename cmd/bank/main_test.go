package main

import (
	"testing"

	"tractor.dev/toolkit-go/engine/cli"
)

func TestFlags(t *testing.T) {
	root := &cli.Command{}
	(&Main{}).InitializeCLI(root)
	flags := root.Flags()

	pairs := [][2]string{
		{"d", "directory"},
		{"f", "file"},
		{"p", "parents"},
		{"m", "mode"},
		{"i", "interactive"},
		{"v", "verbose"},
		{"c", "no-create"},
		{"t", "timestamp"},
		{"r", "reference"},
		{"a", "atime"},
	}
	for _, p := range pairs {
		short, long := flags.Lookup(p[0]), flags.Lookup(p[1])
		if short == nil || long == nil {
			t.Errorf("-%s/--%s: short=%v long=%v", p[0], p[1], short != nil, long != nil)
			continue
		}
		// both names write the same option
		if err := long.Value.Set(setValue(p[1])); err != nil {
			t.Fatalf("--%s: %v", p[1], err)
		}
		if short.Value.String() != long.Value.String() {
			t.Errorf("-%s = %q, --%s = %q", p[0], short.Value.String(), p[1], long.Value.String())
		}
	}

	for _, name := range []string{"date", "mtime", "no-dereference", "version"} {
		if flags.Lookup(name) == nil {
			t.Errorf("--%s is not registered", name)
		}
	}

	if root.Run == nil {
		t.Fatal("root command has no Run")
	}
}

func setValue(name string) string {
	switch name {
	case "mode":
		return "755"
	case "timestamp":
		return "202312251530"
	case "reference":
		return "ref.txt"
	}
	return "true"
}
