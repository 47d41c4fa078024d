package fs

import (
	"time"

	"github.com/djherbis/times"
)

// AccessTimer is implemented by FileInfo values that carry their own access
// time instead of platform stat data.
type AccessTimer interface {
	AccessTime() time.Time
}

// Times returns the access and modification times recorded in fi. Platforms
// that do not expose an access time report the modification time for both,
// as does a FileInfo without platform stat data.
func Times(fi FileInfo) (atime time.Time, mtime time.Time) {
	if a, ok := fi.(AccessTimer); ok {
		return a.AccessTime(), fi.ModTime()
	}
	if fi.Sys() == nil {
		return fi.ModTime(), fi.ModTime()
	}
	ts := times.Get(fi)
	return ts.AccessTime(), ts.ModTime()
}
