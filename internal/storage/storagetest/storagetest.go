// Package storagetest is a contract test suite shared by every
// storage.Storage backend. Each backend's own _test.go calls Run with a
// constructor for a fresh, empty store.
package storagetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/types"
)

// Run executes the contract against stores produced by newStore. Every
// subtest gets its own empty store.
func Run(t *testing.T, newStore func(t *testing.T) storage.Storage) {
	t.Helper()

	t.Run("GetAll empty", func(t *testing.T) {
		s := newStore(t)
		all, err := s.GetAllStudents()
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("Add and Get", func(t *testing.T) {
		s := newStore(t)
		in := types.Student{StudentID: "S1", FirstName: "Ann", LastName: "Lee", Cohort: "2024A"}

		stored, err := s.AddStudent("S1", in)
		require.NoError(t, err)
		assert.Equal(t, in, stored)

		got, ok, err := s.GetStudent("S1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, in, got)
	})

	t.Run("Add uses the given id", func(t *testing.T) {
		s := newStore(t)
		stored, err := s.AddStudent("S9", types.Student{StudentID: "other", FirstName: "Bo"})
		require.NoError(t, err)
		assert.Equal(t, "S9", stored.StudentID)

		_, ok, err := s.GetStudent("other")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Add replaces duplicate id", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddStudent("S1", types.Student{StudentID: "S1", FirstName: "Ann", LastName: "Lee", Cohort: "2024A"})
		require.NoError(t, err)
		_, err = s.AddStudent("S1", types.Student{StudentID: "S1", FirstName: "Ann", LastName: "Lee", Cohort: "2024B"})
		require.NoError(t, err)

		all, err := s.GetAllStudents()
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "S1", all[0].StudentID)
		assert.Equal(t, "2024B", all[0].Cohort)
	})

	t.Run("GetAll keeps insertion order", func(t *testing.T) {
		s := newStore(t)
		for _, id := range []string{"S3", "S1", "S2"} {
			_, err := s.AddStudent(id, types.Student{StudentID: id, FirstName: "n" + id})
			require.NoError(t, err)
		}
		// replacing keeps the original position
		_, err := s.AddStudent("S1", types.Student{StudentID: "S1", FirstName: "renamed"})
		require.NoError(t, err)

		want := []types.Student{
			{StudentID: "S3", FirstName: "nS3"},
			{StudentID: "S1", FirstName: "renamed"},
			{StudentID: "S2", FirstName: "nS2"},
		}
		for i := 0; i < 2; i++ {
			all, err := s.GetAllStudents()
			require.NoError(t, err)
			if diff := cmp.Diff(want, all); diff != "" {
				t.Fatalf("GetAllStudents() mismatch (-want +got):\n%s", diff)
			}
		}
	})

	t.Run("GetAll returns a snapshot", func(t *testing.T) {
		s := newStore(t)
		_, err := s.AddStudent("S1", types.Student{StudentID: "S1", FirstName: "Ann"})
		require.NoError(t, err)

		all, err := s.GetAllStudents()
		require.NoError(t, err)
		all[0].FirstName = "mutated"

		got, ok, err := s.GetStudent("S1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Ann", got.FirstName)
	})

	t.Run("Remove existing", func(t *testing.T) {
		s := newStore(t)
		in := types.Student{StudentID: "S1", FirstName: "Ann"}
		_, err := s.AddStudent("S1", in)
		require.NoError(t, err)

		removed, ok, err := s.RemoveStudent("S1")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, in, removed)

		_, ok, err = s.GetStudent("S1")
		require.NoError(t, err)
		assert.False(t, ok)

		all, err := s.GetAllStudents()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("Remove and Get missing", func(t *testing.T) {
		s := newStore(t)

		removed, ok, err := s.RemoveStudent("X")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, types.Student{}, removed)

		got, ok, err := s.GetStudent("X")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, types.Student{}, got)
	})

	t.Run("Add rejects unrepresentable record", func(t *testing.T) {
		s := newStore(t)

		_, err := s.AddStudent("", types.Student{FirstName: "Ann"})
		assert.ErrorIs(t, err, storage.ErrInvalidRecord)

		_, err = s.AddStudent("S1", types.Student{StudentID: "S1", Cohort: "a::b"})
		assert.ErrorIs(t, err, storage.ErrInvalidRecord)

		all, err := s.GetAllStudents()
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
