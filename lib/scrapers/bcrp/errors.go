package bcrp

import "fmt"

// FetchError is a transport failure or non-2xx status for a single page.
// A FetchError never aborts a harvest run, only the affected link.
type FetchError struct {
	Url    string
	Status int
	Cause  error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.Url, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Url, e.Cause)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ParseError is a table or row that does not match any expected structure.
type ParseError struct {
	Url    string
	Table  int
	Row    int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s table %d row %d: %s", e.Url, e.Table, e.Row, e.Reason)
}

// InputError is a missing or malformed link list file. It is fatal and
// surfaced before any fetching begins.
type InputError struct {
	Path  string
	Cause error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("link list %s: %v", e.Path, e.Cause)
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
