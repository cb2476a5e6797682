// Package student contains the session handlers for the Student roster:
// list, create, view and remove.
//
// HANDLER PATTERN — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────
// Each exported function receives its dependency (the storage contract)
// ONCE, when the session builds its transition table, and returns the
// function the session calls every time that menu entry is chosen:
//
//	routes[view.MenuCreate] = student.Create(store)
//
// Storage failures are reported to the user here and swallowed: the
// operation did not happen, but the session keeps running. The only
// errors a handler returns come from the console itself (e.g. io.EOF
// when input ends), which the session uses to stop.
package student

import (
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/types"
	"github.com/aanand-mishra/class-roster/internal/view"
)

// List handles menu entry 1: show every student.
func List(store storage.Storage) func(v *view.RosterView) error {
	return func(v *view.RosterView) error {
		slog.Debug("listing students")
		v.DisplayAllBanner()

		students, err := store.GetAllStudents()
		if err != nil {
			slog.Error("error listing students", slog.String("error", err.Error()))
			v.DisplayErrorMessage(err)
			return nil
		}

		return v.DisplayStudentList(students)
	}
}

// Create handles menu entry 2: collect, validate and store a student.
// Adding an id that already exists replaces that student.
func Create(store storage.Storage) func(v *view.RosterView) error {
	// One validator per handler: it caches struct metadata.
	validate := types.NewValidator()

	return func(v *view.RosterView) error {
		v.DisplayCreateStudentBanner()

		student, err := v.GetNewStudentInfo()
		if err != nil {
			return err
		}

		if err := validate.Struct(student); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) {
				v.DisplayValidationErrors(verrs)
				return nil
			}
			v.DisplayErrorMessage(err)
			return nil
		}

		stored, err := store.AddStudent(student.StudentID, student)
		if err != nil {
			slog.Error("error creating student",
				slog.String("id", student.StudentID),
				slog.String("error", err.Error()))
			v.DisplayErrorMessage(err)
			return nil
		}

		slog.Info("student created", slog.String("id", stored.StudentID))
		return v.DisplayCreateSuccessBanner()
	}
}

// View handles menu entry 3: show one student by id.
func View(store storage.Storage) func(v *view.RosterView) error {
	return func(v *view.RosterView) error {
		v.DisplayDisplayStudentBanner()

		id, err := v.GetStudentIDChoice()
		if err != nil {
			return err
		}
		slog.Debug("getting a student", slog.String("id", id))

		student, ok, err := store.GetStudent(id)
		if err != nil {
			slog.Error("error getting student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			v.DisplayErrorMessage(err)
			return nil
		}

		return v.DisplayStudent(id, student, ok)
	}
}

// Remove handles menu entry 4: delete one student by id.
func Remove(store storage.Storage) func(v *view.RosterView) error {
	return func(v *view.RosterView) error {
		v.DisplayRemoveStudentBanner()

		id, err := v.GetStudentIDChoice()
		if err != nil {
			return err
		}

		removed, ok, err := store.RemoveStudent(id)
		if err != nil {
			slog.Error("error removing student",
				slog.String("id", id),
				slog.String("error", err.Error()))
			v.DisplayErrorMessage(err)
			return nil
		}
		if ok {
			slog.Info("student removed", slog.String("id", id))
		}

		return v.DisplayRemoveResult(id, removed, ok)
	}
}
