package config

import "fmt"

// MissingKeyError is returned when a required key has no value in any layer.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("config: missing key %q", e.Key)
}

// UnsupportedFormatError is returned at load time for an unknown __format.
type UnsupportedFormatError struct {
	Key    string
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("config: unsupported format %q for %q", e.Format, e.Key)
}

// ParseError is returned at load time when an environment value cannot be
// coerced to its declared format.
type ParseError struct {
	Key    string
	Value  string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parsing %q as %s for %q: %v", e.Value, e.Format, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// TypeError is returned by typed accessors when the stored value has the
// wrong shape.
type TypeError struct {
	Key  string
	Want string
	Got  any
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("config: %q is %T, want %s", e.Key, e.Got, e.Want)
}
