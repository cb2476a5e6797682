// Package storage defines the Storage interface — a contract that any
// persistence backend must satisfy to work with the roster session.
//
// WHY AN INTERFACE?
// ─────────────────
// The session (menu loop) should not know or care where students live.
// By depending only on this interface:
//
//   - Switching backends = implement the interface for the new medium,
//     change the backend name in the config. Zero session changes.
//
//   - Writing tests = pass the in-memory backend. No files needed.
//
// Every method is keyed by the student id. A missing id is reported
// with a false boolean, never with an error.
package storage

import "github.com/aanand-mishra/class-roster/internal/types"

// Storage is the persistence contract.
type Storage interface {
	// AddStudent stores student under id, replacing any existing record
	// with the same id, persists the change and returns the stored
	// record. The stored record's StudentID is always id.
	AddStudent(id string, student types.Student) (types.Student, error)

	// GetAllStudents returns a snapshot of every student in a stable
	// order (first insertion / load order). Never nil.
	GetAllStudents() ([]types.Student, error)

	// GetStudent returns the student stored under id. The boolean is
	// false when no such student exists.
	GetStudent(id string) (types.Student, bool, error)

	// RemoveStudent deletes the student stored under id, persists the
	// deletion and returns the removed record. The boolean is false
	// (and nothing is written) when no such student exists.
	RemoveStudent(id string) (types.Student, bool, error)
}
