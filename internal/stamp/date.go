package stamp

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. Month and day take one or two digits.
var dateLayouts = []string{
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"2006-1-2",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"2.1.2006 15:04:05",
	"2.1.2006 15:04",
	"2.1.2006",
}

type parseAttempt func(s string) (time.Time, bool)

func layoutAttempt(layout string) parseAttempt {
	return func(s string) (time.Time, bool) {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
}

// dateAttempts pairs each layout with its date-only form, which yields
// midnight.
func dateAttempts() []parseAttempt {
	attempts := make([]parseAttempt, 0, 2*len(dateLayouts))
	for _, layout := range dateLayouts {
		date, _, _ := strings.Cut(layout, " ")
		attempts = append(attempts, layoutAttempt(layout), layoutAttempt(date))
	}
	return attempts
}

var attempts = dateAttempts()

// ParseDate parses a free-form date such as "2023-12-25 15:30:45",
// "12/25/2023" or "25.12.2023 15:30" as UTC.
func ParseDate(s string) (time.Time, error) {
	in := strings.TrimSpace(s)
	for _, attempt := range attempts {
		if t, ok := attempt(in); ok {
			return t, nil
		}
	}
	return time.Time{}, &ParseError{Kind: Date, Input: s}
}
