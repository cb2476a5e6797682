package storage

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageIO matches every *IOError via errors.Is.
	ErrStorageIO = errors.New("storage i/o failure")

	// ErrInvalidRecord is returned when a backend is asked to store a
	// record it cannot represent (empty id, delimiter inside a field).
	ErrInvalidRecord = errors.New("invalid student record")
)

// IOError reports that the backing medium could not be read or written.
// The operation that returned it did not take effect.
type IOError struct {
	Op   string // "load", "persist", "open", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrStorageIO) match any IOError.
func (e *IOError) Is(target error) bool { return target == ErrStorageIO }

// CorruptRecordError describes a stored line that does not parse into a
// student. Loaders log it and skip the line; it never reaches the session.
type CorruptRecordError struct {
	Path   string
	Line   int // 1-based
	Fields int
	Text   string
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt record at %s:%d: got %d fields: %q",
		e.Path, e.Line, e.Fields, e.Text)
}
