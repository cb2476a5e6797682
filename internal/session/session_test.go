package session_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/class-roster/internal/session"
	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/storage/file"
	"github.com/aanand-mishra/class-roster/internal/storage/memory"
	"github.com/aanand-mishra/class-roster/internal/types"
	"github.com/aanand-mishra/class-roster/internal/utils/console"
	"github.com/aanand-mishra/class-roster/internal/view"
)

// lines joins scripted input lines, each newline-terminated.
func lines(in ...string) string {
	return strings.Join(in, "\n") + "\n"
}

func run(t *testing.T, store storage.Storage, input string) string {
	t.Helper()
	var out bytes.Buffer
	c := session.New(store, view.New(console.New(strings.NewReader(input), &out)))
	require.NoError(t, c.Run())
	return out.String()
}

func TestExitImmediately(t *testing.T) {
	out := run(t, memory.New(), lines("5"))

	assert.Contains(t, out, "Main Menu")
	assert.True(t, strings.HasSuffix(out, "Good Bye!!!\n"))
}

func TestEndOfInputExits(t *testing.T) {
	out := run(t, memory.New(), "")
	assert.True(t, strings.HasSuffix(out, "Good Bye!!!\n"))
}

func TestEndOfInputInsideOperationExits(t *testing.T) {
	store := memory.New()
	out := run(t, store, lines("2", "S1", "Ann"))

	assert.True(t, strings.HasSuffix(out, "Good Bye!!!\n"))
	all, err := store.GetAllStudents()
	require.NoError(t, err)
	assert.Empty(t, all, "a half-entered student must not be stored")
}

func TestCreateListViewRemove(t *testing.T) {
	store := memory.New()
	out := run(t, store, lines(
		"2", "S1", "Ann", "Lee", "2024A", "",
		"2", "S2", "Bob", "Kim", "2023", "",
		"1", "",
		"3", "S1", "",
		"4", "S1", "",
		"3", "S1", "",
		"4", "X", "",
		"5",
	))

	assert.Contains(t, out, "=== Create Student ===")
	assert.Equal(t, 2, strings.Count(out, "Student successfully created."))
	assert.Contains(t, out, "#S1 : Ann Lee\n#S2 : Bob Kim\n")
	assert.Contains(t, out, "S1\nAnn Lee\n2024A\n")
	assert.Contains(t, out, "Student S1 (Ann Lee) successfully removed.")
	assert.Contains(t, out, "No such student: S1")
	assert.Contains(t, out, "No such student: X")

	all, err := store.GetAllStudents()
	require.NoError(t, err)
	assert.Equal(t, []types.Student{{StudentID: "S2", FirstName: "Bob", LastName: "Kim", Cohort: "2023"}}, all)
}

func TestCreateDuplicateReplaces(t *testing.T) {
	store := memory.New()
	run(t, store, lines(
		"2", "S1", "Ann", "Lee", "2024A", "",
		"2", "S1", "Ann", "Lee", "2024B", "",
		"5",
	))

	all, err := store.GetAllStudents()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2024B", all[0].Cohort)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	store := memory.New()
	out := run(t, store, lines(
		"2", "", "Ann", "Lee", "2024A",
		"2", "S1", "Ann", "Lee", "20::24",
		"5",
	))

	assert.Contains(t, out, "field StudentID is required")
	assert.Contains(t, out, "field Cohort must not contain")
	assert.NotContains(t, out, "successfully created")

	all, err := store.GetAllStudents()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestInvalidMenuInputReprompts(t *testing.T) {
	out := run(t, memory.New(), lines("list", "0", "42", "5"))

	assert.Contains(t, out, "Please enter a whole number.")
	assert.Equal(t, 2, strings.Count(out, "Please enter a number between 1 and 5."))
	assert.True(t, strings.HasSuffix(out, "Good Bye!!!\n"))
}

func TestPersistsAcrossSessions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")

	run(t, file.New(path), lines("2", "S1", "Ann", "Lee", "2024A", "", "5"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "S1::Ann::Lee::2024A\n", string(raw))

	out := run(t, file.New(path), lines("1", "", "5"))
	assert.Contains(t, out, "#S1 : Ann Lee")
}

// failingStore reports an I/O failure from every operation.
type failingStore struct{}

var errDisk = &storage.IOError{Op: "persist", Path: "roster.txt", Err: errors.New("disk full")}

func (failingStore) AddStudent(string, types.Student) (types.Student, error) {
	return types.Student{}, errDisk
}
func (failingStore) GetAllStudents() ([]types.Student, error) { return nil, errDisk }
func (failingStore) GetStudent(string) (types.Student, bool, error) {
	return types.Student{}, false, errDisk
}
func (failingStore) RemoveStudent(string) (types.Student, bool, error) {
	return types.Student{}, false, errDisk
}

func TestStorageErrorsKeepSessionRunning(t *testing.T) {
	out := run(t, failingStore{}, lines(
		"1",
		"2", "S1", "Ann", "Lee", "2024A",
		"3", "S1",
		"4", "S1",
		"5",
	))

	assert.Equal(t, 4, strings.Count(out, "=== ERROR ===\nstorage persist roster.txt: disk full\n"))
	assert.NotContains(t, out, "successfully created")
	assert.True(t, strings.HasSuffix(out, "Good Bye!!!\n"))
}

func TestStep(t *testing.T) {
	var out bytes.Buffer
	c := session.New(memory.New(), view.New(console.New(strings.NewReader(lines("")), &out)))

	state, err := c.Step(7)
	require.NoError(t, err)
	assert.Equal(t, session.Running, state)
	assert.Contains(t, out.String(), "Unknown Command!!!")

	state, err = c.Step(view.MenuList)
	require.NoError(t, err)
	assert.Equal(t, session.Running, state)

	state, err = c.Step(view.MenuExit)
	require.NoError(t, err)
	assert.Equal(t, session.Exiting, state)
	assert.Equal(t, "exiting", state.String())
}
