// Package file provides the reference storage.Storage backend: a flat
// text file holding one student per line.
//
// FILE FORMAT:
//
//	studentId::firstName::lastName::cohort
//
// UTF-8, newline-terminated, no header. The whole roster is held in
// memory; the file is the cold copy and is rewritten in full after every
// mutation.
//
// WRITE POLICY — DURABLE FIRST:
// ─────────────────────────────
// A mutation is applied to a COPY of the roster, the copy is written to
// disk, and only when the write succeeded does the copy replace the
// in-memory roster. A failed write therefore leaves memory exactly as
// it was, matching the file on disk.
package file

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/types"
)

// fieldCount is the number of delimiter-separated fields per line.
const fieldCount = 4

// maxLineSize bounds a single roster line while loading.
const maxLineSize = 1 << 20

// Store is the file-backed roster. The file is read lazily on first use;
// a failed read is retried on the next call.
type Store struct {
	path string
	perm os.FileMode

	loaded   bool
	students map[string]types.Student
	order    []string
}

// New returns a Store persisting to path. Nothing is read until the
// first operation, so New never fails; a missing file is an empty roster.
func New(path string) *Store {
	return &Store{path: path, perm: 0o644}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Reload discards the in-memory roster and reads the file again.
func (s *Store) Reload() error {
	s.loaded = false
	s.students = nil
	s.order = nil
	return s.ensureLoaded()
}

func (s *Store) AddStudent(id string, student types.Student) (types.Student, error) {
	if err := s.ensureLoaded(); err != nil {
		return types.Student{}, fmt.Errorf("AddStudent: %w", err)
	}

	student.StudentID = id
	if !student.Valid() {
		return types.Student{}, fmt.Errorf("AddStudent: %w", storage.ErrInvalidRecord)
	}

	students := maps.Clone(s.students)
	order := slices.Clone(s.order)
	if _, exists := students[id]; !exists {
		order = append(order, id)
	}
	students[id] = student

	if err := s.commit(students, order); err != nil {
		return types.Student{}, fmt.Errorf("AddStudent: %w", err)
	}

	slog.Debug("student stored", slog.String("id", id), slog.String("path", s.path))
	return student, nil
}

func (s *Store) GetAllStudents() ([]types.Student, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, fmt.Errorf("GetAllStudents: %w", err)
	}

	students := make([]types.Student, 0, len(s.order))
	for _, id := range s.order {
		students = append(students, s.students[id])
	}
	return students, nil
}

func (s *Store) GetStudent(id string) (types.Student, bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return types.Student{}, false, fmt.Errorf("GetStudent: %w", err)
	}

	student, ok := s.students[id]
	return student, ok, nil
}

func (s *Store) RemoveStudent(id string) (types.Student, bool, error) {
	if err := s.ensureLoaded(); err != nil {
		return types.Student{}, false, fmt.Errorf("RemoveStudent: %w", err)
	}

	student, ok := s.students[id]
	if !ok {
		return types.Student{}, false, nil
	}

	students := maps.Clone(s.students)
	delete(students, id)
	order := slices.DeleteFunc(slices.Clone(s.order), func(v string) bool { return v == id })

	if err := s.commit(students, order); err != nil {
		return types.Student{}, false, fmt.Errorf("RemoveStudent: %w", err)
	}

	slog.Debug("student removed", slog.String("id", id), slog.String("path", s.path))
	return student, true, nil
}

// commit writes the given roster to disk and, only on success, makes it
// the in-memory roster.
func (s *Store) commit(students map[string]types.Student, order []string) error {
	if err := AtomicWriteFile(s.path, encode(students, order), s.perm); err != nil {
		return &storage.IOError{Op: "persist", Path: s.path, Err: err}
	}
	s.students = students
	s.order = order
	return nil
}

func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		// first run: no file yet
		s.students = make(map[string]types.Student)
		s.order = nil
		s.loaded = true
		slog.Info("roster file not found, starting empty", slog.String("path", s.path))
		return nil
	}
	if err != nil {
		return &storage.IOError{Op: "load", Path: s.path, Err: err}
	}
	defer f.Close()

	students, order, skipped, err := parse(f, s.path)
	if err != nil {
		return &storage.IOError{Op: "load", Path: s.path, Err: err}
	}

	s.students = students
	s.order = order
	s.loaded = true

	slog.Info("roster loaded",
		slog.String("path", s.path),
		slog.Int("students", len(order)),
		slog.Int("skipped", skipped))
	return nil
}

// parse reads roster lines from r. Lines that do not hold exactly four
// fields with a non-empty id are logged as *storage.CorruptRecordError
// and skipped; blank lines are ignored. A later line with an id already
// seen replaces the earlier record but keeps its position. The returned
// error is only ever a read error from r.
func parse(r io.Reader, path string) (map[string]types.Student, []string, int, error) {
	students := make(map[string]types.Student)
	var order []string
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, types.Delimiter)
		if len(fields) != fieldCount || fields[0] == "" {
			skipped++
			cerr := &storage.CorruptRecordError{
				Path:   path,
				Line:   lineNo,
				Fields: len(fields),
				Text:   line,
			}
			slog.Warn("skipping corrupt roster line", slog.String("error", cerr.Error()))
			continue
		}

		student := types.Student{
			StudentID: fields[0],
			FirstName: fields[1],
			LastName:  fields[2],
			Cohort:    fields[3],
		}
		if _, exists := students[student.StudentID]; !exists {
			order = append(order, student.StudentID)
		}
		students[student.StudentID] = student
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, skipped, fmt.Errorf("parse: line %d: %w", lineNo+1, err)
	}

	return students, order, skipped, nil
}

// encode renders the roster in file format, in listing order.
func encode(students map[string]types.Student, order []string) []byte {
	var buf bytes.Buffer
	for _, id := range order {
		buf.WriteString(strings.Join(students[id].Fields(), types.Delimiter))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
