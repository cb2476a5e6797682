// Package memory provides an in-memory implementation of storage.Storage.
// Data is lost when the process exits; it backs tests and the "memory"
// backend setting.
package memory

import (
	"fmt"

	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/types"
)

// Store keeps students in a map for lookup and an id slice for a stable
// listing order. Only the session goroutine touches it, so there is no
// locking.
type Store struct {
	students map[string]types.Student
	order    []string
}

// New returns an empty Store.
func New() *Store {
	return &Store{students: make(map[string]types.Student)}
}

func (s *Store) AddStudent(id string, student types.Student) (types.Student, error) {
	student.StudentID = id
	if !student.Valid() {
		return types.Student{}, fmt.Errorf("AddStudent: %w", storage.ErrInvalidRecord)
	}
	if _, exists := s.students[id]; !exists {
		s.order = append(s.order, id)
	}
	s.students[id] = student
	return student, nil
}

func (s *Store) GetAllStudents() ([]types.Student, error) {
	students := make([]types.Student, 0, len(s.order))
	for _, id := range s.order {
		students = append(students, s.students[id])
	}
	return students, nil
}

func (s *Store) GetStudent(id string) (types.Student, bool, error) {
	student, ok := s.students[id]
	return student, ok, nil
}

func (s *Store) RemoveStudent(id string) (types.Student, bool, error) {
	student, ok := s.students[id]
	if !ok {
		return types.Student{}, false, nil
	}
	delete(s.students, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return student, true, nil
}
