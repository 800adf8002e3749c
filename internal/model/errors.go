package model

import "fmt"

// ParseError reports a malformed statement row. Line is the 0-based row
// index within the source file.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing row %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingReference reports a seed-time or enrichment lookup that found
// no matching row for a referenced name or key.
type MissingReference struct {
	Kind string // "tag" or "transaction"
	Key  string
}

func (e *MissingReference) Error() string {
	return fmt.Sprintf("no %s matching %q", e.Kind, e.Key)
}

// NotFoundError reports an export query that yielded zero transactions,
// or an absent import source file.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: no records", e.Resource)
}

// StoreError wraps an underlying persistence failure opaquely.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
