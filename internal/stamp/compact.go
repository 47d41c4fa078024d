package stamp

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseCompact parses the touch(1) style [[CC]YY]MMDDhhmm[.ss] format as
// UTC. An eight digit stamp takes its year from now.
func ParseCompact(s string, now time.Time) (time.Time, error) {
	base, secs, hasSecs := strings.Cut(s, ".")
	if hasSecs && strings.Contains(secs, ".") {
		return time.Time{}, &ParseError{Kind: Compact, Input: s, Reason: "more than one '.'"}
	}

	sec := 0
	if hasSecs {
		if len(secs) == 0 || len(secs) > 2 || !digits(secs) {
			return time.Time{}, &ParseError{Kind: Compact, Input: s, Reason: "seconds must be one or two digits"}
		}
		sec, _ = strconv.Atoi(secs)
	}

	switch len(base) {
	case 8, 10, 12:
	default:
		return time.Time{}, &ParseError{
			Kind:   Compact,
			Input:  s,
			Reason: fmt.Sprintf("invalid length %d (expected 8, 10, or 12 digits)", len(base)),
		}
	}
	if !digits(base) {
		return time.Time{}, &ParseError{Kind: Compact, Input: s, Reason: "expected digits only"}
	}

	pair := func(i int) int {
		return int(base[i]-'0')*10 + int(base[i+1]-'0')
	}

	var year int
	switch len(base) {
	case 8:
		year = now.UTC().Year()
	case 10:
		yy := pair(0)
		if yy >= 70 {
			year = 1900 + yy
		} else {
			year = 2000 + yy
		}
		base = base[2:]
	case 12:
		year = pair(0)*100 + pair(2)
		base = base[4:]
	}
	month, day, hour, min := pair(0), pair(2), pair(4), pair(6)

	if !validDate(year, month, day) || hour > 23 || min > 59 || sec > 59 {
		return time.Time{}, &ParseError{
			Kind:   Compact,
			Input:  s,
			Reason: fmt.Sprintf("invalid timestamp values: %d-%d-%d %d:%d:%d", year, month, day, hour, min, sec),
		}
	}
	return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC), nil
}

// FormatCompact renders t as a twelve digit stamp with seconds, the inverse
// of ParseCompact.
func FormatCompact(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%04d%02d%02d%02d%02d.%02d",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
