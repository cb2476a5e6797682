// Package view is the presentation layer of the roster session.
//
// The package-level functions are pure formatters: given students or an
// error they return display lines and hold no state. RosterView prints
// those lines through a console.IO and collects the user's answers.
// Nothing here validates anything; by the time data reaches the view it
// has already been checked.
package view

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/class-roster/internal/types"
	"github.com/aanand-mishra/class-roster/internal/utils/console"
)

// Menu selections. MenuMin and MenuMax bound the menu prompt.
const (
	MenuList   = 1
	MenuCreate = 2
	MenuView   = 3
	MenuRemove = 4
	MenuExit   = 5

	MenuMin = MenuList
	MenuMax = MenuExit
)

// MenuLines returns the main menu.
func MenuLines() []string {
	return []string{
		"Main Menu",
		"1. List Student IDs",
		"2. Create New Student",
		"3. View a Student",
		"4. Remove a Student",
		"5. Exit",
	}
}

// StudentLine formats one student for the roster listing.
func StudentLine(s types.Student) string {
	return fmt.Sprintf("#%s : %s %s", s.StudentID, s.FirstName, s.LastName)
}

// StudentDetail formats one student for the single-student view.
func StudentDetail(s types.Student) []string {
	return []string{
		s.StudentID,
		strings.TrimSpace(s.FirstName + " " + s.LastName),
		s.Cohort,
	}
}

// ErrorBanner wraps any error into the standard error banner.
func ErrorBanner(err error) []string {
	return []string{
		"=== ERROR ===",
		err.Error(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationMessage converts validator.FieldError values into one
// human-readable sentence, the same way for every form in the session.
//
// Example output:
//
//	field StudentID is required, field Cohort must not contain "::" or end with ':'
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationMessage(errs validator.ValidationErrors) string {
	var msgs []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", e.Field()))
		case "rosterfield":
			msgs = append(msgs, fmt.Sprintf(
				"field %s must not contain %q, a line break, or end with ':'",
				e.Field(), types.Delimiter))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(msgs, ", ")
}

// RosterView renders the session screens through an IO.
type RosterView struct {
	io console.IO
}

// New returns a RosterView printing to and reading from io.
func New(io console.IO) *RosterView {
	return &RosterView{io: io}
}

func (v *RosterView) printLines(lines []string) {
	for _, l := range lines {
		v.io.Print(l)
	}
}

// pause waits for the user to hit enter.
func (v *RosterView) pause(prompt string) error {
	_, err := v.io.ReadString(prompt)
	return err
}

// PrintMenuAndGetSelection shows the main menu and returns a selection
// within [MenuMin, MenuMax].
func (v *RosterView) PrintMenuAndGetSelection() (int, error) {
	v.printLines(MenuLines())
	return v.io.ReadInt("Please select from the above choices", MenuMin, MenuMax)
}

func (v *RosterView) DisplayCreateStudentBanner() {
	v.io.Print("=== Create Student ===")
}

// GetNewStudentInfo asks for the fields of a new student. Surrounding
// whitespace is dropped.
func (v *RosterView) GetNewStudentInfo() (types.Student, error) {
	prompts := []string{"Enter Student Id:", "Enter First Name:", "Enter Last Name:", "Cohort:"}
	answers := make([]string, len(prompts))
	for i, p := range prompts {
		a, err := v.io.ReadString(p)
		if err != nil {
			return types.Student{}, err
		}
		answers[i] = strings.TrimSpace(a)
	}

	return types.Student{
		StudentID: answers[0],
		FirstName: answers[1],
		LastName:  answers[2],
		Cohort:    answers[3],
	}, nil
}

func (v *RosterView) DisplayCreateSuccessBanner() error {
	return v.pause("Student successfully created.  Please hit enter to continue")
}

func (v *RosterView) DisplayAllBanner() {
	v.io.Print("=== Display All Students ===")
}

func (v *RosterView) DisplayStudentList(students []types.Student) error {
	if len(students) == 0 {
		v.io.Print("No students on the roster.")
	}
	for _, s := range students {
		v.io.Print(StudentLine(s))
	}
	return v.pause("Hit enter to continue.")
}

func (v *RosterView) DisplayDisplayStudentBanner() {
	v.io.Print("=== Display Student ===")
}

// GetStudentIDChoice asks for the id of an existing student.
func (v *RosterView) GetStudentIDChoice() (string, error) {
	id, err := v.io.ReadString("Please enter the Student ID.")
	return strings.TrimSpace(id), err
}

// DisplayStudent shows one student, or a not-found notice when ok is false.
func (v *RosterView) DisplayStudent(id string, s types.Student, ok bool) error {
	if ok {
		v.printLines(StudentDetail(s))
	} else {
		v.DisplayNotFound(id)
	}
	return v.pause("Please hit enter to continue.")
}

func (v *RosterView) DisplayRemoveStudentBanner() {
	v.io.Print("=== Remove Student ===")
}

// DisplayRemoveResult reports the outcome of a removal.
func (v *RosterView) DisplayRemoveResult(id string, s types.Student, ok bool) error {
	if ok {
		v.io.Print(fmt.Sprintf("Student %s (%s %s) successfully removed.", s.StudentID, s.FirstName, s.LastName))
	} else {
		v.DisplayNotFound(id)
	}
	return v.pause("Please hit enter to continue.")
}

func (v *RosterView) DisplayNotFound(id string) {
	v.io.Print(fmt.Sprintf("No such student: %s", id))
}

func (v *RosterView) DisplayUnknownCommandBanner() {
	v.io.Print("Unknown Command!!!")
}

func (v *RosterView) DisplayErrorMessage(err error) {
	v.printLines(ErrorBanner(err))
}

func (v *RosterView) DisplayValidationErrors(errs validator.ValidationErrors) {
	v.printLines([]string{"=== Invalid Student ===", ValidationMessage(errs)})
}

func (v *RosterView) DisplayExitBanner() {
	v.io.Print("Good Bye!!!")
}
