package sqlite_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/class-roster/internal/storage"
	"github.com/aanand-mishra/class-roster/internal/storage/sqlite"
	"github.com/aanand-mishra/class-roster/internal/storage/storagetest"
	"github.com/aanand-mishra/class-roster/internal/types"
)

var _ storage.Storage = (*sqlite.Store)(nil)

func TestStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Storage {
		s, err := sqlite.New(filepath.Join(t.TempDir(), "roster.db"))
		require.NoError(t, err)
		t.Cleanup(func() { s.Close() })
		return s
	})
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "roster.db")

	s, err := sqlite.New(path)
	require.NoError(t, err)
	_, err = s.AddStudent("S1", types.Student{FirstName: "Ann", LastName: "Lee", Cohort: "2024A"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = sqlite.New(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok, err := s.GetStudent("S1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.Student{StudentID: "S1", FirstName: "Ann", LastName: "Lee", Cohort: "2024A"}, got)
}

func TestClosedStoreReportsIOError(t *testing.T) {
	s, err := sqlite.New(filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.AddStudent("S1", types.Student{FirstName: "Ann"})
	assert.ErrorIs(t, err, storage.ErrStorageIO)

	_, err = s.GetAllStudents()
	assert.ErrorIs(t, err, storage.ErrStorageIO)
}
