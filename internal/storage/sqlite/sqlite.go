// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// WHY SQLite?
// ───────────
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver. It is the drop-in alternative to the flat roster file when
// the roster grows: set backend: sqlite in the config.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/types"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// Store is the SQLite implementation of storage.Storage.
// It holds a *sql.DB which is a connection pool managed by database/sql.
type Store struct {
	Db   *sql.DB
	path string
}

// New opens the SQLite database at path, creates the students table if
// it does not already exist, and returns a ready-to-use *Store.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &storage.IOError{Op: "open", Path: path, Err: err}
		}
	}

	// sql.Open does NOT open a real connection yet — it just validates
	// the driver name and data source name (DSN).
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &storage.IOError{Op: "open", Path: path, Err: err}
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe to run on every
	// startup.
	//
	// Schema:
	//   student_id — externally supplied key (TEXT PRIMARY KEY)
	//   first_name, last_name, cohort — free text, may be empty
	//
	// The implicit rowid gives us insertion order for listing.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			student_id TEXT PRIMARY KEY,
			first_name TEXT NOT NULL DEFAULT '',
			last_name  TEXT NOT NULL DEFAULT '',
			cohort     TEXT NOT NULL DEFAULT ''
		)
	`)
	if err != nil {
		db.Close()
		return nil, &storage.IOError{Op: "open", Path: path,
			Err: fmt.Errorf("create table: %w", err)}
	}

	return &Store{Db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.Db.Close()
}

// ─────────────────────────────────────────────────────────────────────────────
// AddStudent upserts a row keyed by student_id.
//
// ON CONFLICT ... DO UPDATE rewrites the existing row in place, so its
// rowid (and with it the listing position) is kept. A plain
// INSERT OR REPLACE would delete and re-insert, moving the student to
// the end of the list.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) AddStudent(id string, student types.Student) (types.Student, error) {
	student.StudentID = id
	if !student.Valid() {
		return types.Student{}, fmt.Errorf("AddStudent: %w", storage.ErrInvalidRecord)
	}

	stmt, err := s.Db.Prepare(`
		INSERT INTO students (student_id, first_name, last_name, cohort)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(student_id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name  = excluded.last_name,
			cohort     = excluded.cohort
	`)
	if err != nil {
		return types.Student{}, s.ioErr("AddStudent: prepare", err)
	}
	defer stmt.Close()

	// Arguments fill the ? placeholders in order.
	if _, err := stmt.Exec(student.StudentID, student.FirstName, student.LastName, student.Cohort); err != nil {
		return types.Student{}, s.ioErr("AddStudent: exec", err)
	}

	return student, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStudent fetches exactly one row matched by student_id.
//
// QueryRow does NOT report "no match" itself — the sentinel
// sql.ErrNoRows surfaces only when you call Scan. We turn it into the
// contract's "absent" result instead of an error.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) GetStudent(id string) (types.Student, bool, error) {
	stmt, err := s.Db.Prepare(
		"SELECT student_id, first_name, last_name, cohort FROM students WHERE student_id = ? LIMIT 1",
	)
	if err != nil {
		return types.Student{}, false, s.ioErr("GetStudent: prepare", err)
	}
	defer stmt.Close()

	student, err := scanStudent(stmt.QueryRow(id))
	if errors.Is(err, sql.ErrNoRows) {
		return types.Student{}, false, nil
	}
	if err != nil {
		return types.Student{}, false, s.ioErr("GetStudent: scan", err)
	}
	return student, true, nil
}

// GetAllStudents returns all rows ordered by rowid (insertion order).
func (s *Store) GetAllStudents() ([]types.Student, error) {
	rows, err := s.Db.Query(
		// Explicitly list columns — never use SELECT * in production code.
		"SELECT student_id, first_name, last_name, cohort FROM students ORDER BY rowid",
	)
	if err != nil {
		return nil, s.ioErr("GetAllStudents: query", err)
	}
	defer rows.Close() // must close rows to free the DB connection

	// Pre-allocate an empty (non-nil) slice.
	students := make([]types.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, s.ioErr("GetAllStudents: scan row", err)
		}
		students = append(students, student)
	}

	// rows.Err() captures any error that occurred during iteration.
	if err := rows.Err(); err != nil {
		return nil, s.ioErr("GetAllStudents: rows iteration", err)
	}
	return students, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// RemoveStudent deletes a row and returns what it held.
//
// The read and the delete run inside one transaction so the returned
// record is exactly the row that was deleted.
// ─────────────────────────────────────────────────────────────────────────────
func (s *Store) RemoveStudent(id string) (types.Student, bool, error) {
	tx, err := s.Db.Begin()
	if err != nil {
		return types.Student{}, false, s.ioErr("RemoveStudent: begin", err)
	}
	// Rollback after a successful Commit is a no-op returning
	// sql.ErrTxDone, so deferring it is always safe.
	defer tx.Rollback()

	student, err := scanStudent(tx.QueryRow(
		"SELECT student_id, first_name, last_name, cohort FROM students WHERE student_id = ?", id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return types.Student{}, false, nil
	}
	if err != nil {
		return types.Student{}, false, s.ioErr("RemoveStudent: select", err)
	}

	if _, err := tx.Exec("DELETE FROM students WHERE student_id = ?", id); err != nil {
		return types.Student{}, false, s.ioErr("RemoveStudent: delete", err)
	}
	if err := tx.Commit(); err != nil {
		return types.Student{}, false, s.ioErr("RemoveStudent: commit", err)
	}
	return student, true, nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanStudent(row scanner) (types.Student, error) {
	var student types.Student
	// The order of variables must match the SELECT column order.
	err := row.Scan(
		&student.StudentID,
		&student.FirstName,
		&student.LastName,
		&student.Cohort,
	)
	return student, err
}

func (s *Store) ioErr(step string, err error) error {
	return fmt.Errorf("%s: %w", step, &storage.IOError{Op: "sqlite", Path: s.path, Err: err})
}
