package stamp

import "fmt"

// ParseError reports a date or timestamp argument that could not be parsed.
type ParseError struct {
	Kind   SourceKind
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unable to parse %s string: %s", e.Kind, e.Input)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Reason)
}
