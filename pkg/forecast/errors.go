package forecast

import (
	"fmt"
)

// FormatError reports text that should have matched a known lexical pattern,
// such as a clock time or a tide height, and did not.
type FormatError struct {
	Text string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot read %q", e.Text)
	}
	return fmt.Sprintf("cannot read %q: %v", e.Text, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// StructureError reports a page region that is missing, ambiguous, or shaped
// differently than expected.
type StructureError struct {
	What string
	Err  error
}

func (e *StructureError) Error() string {
	if e.Err == nil {
		return "unexpected page structure: " + e.What
	}
	return fmt.Sprintf("unexpected page structure: %s: %v", e.What, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
