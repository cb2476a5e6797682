package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIOError(t *testing.T) {
	err := &IOError{Op: "persist", Path: "roster.txt", Err: fs.ErrPermission}

	assert.Equal(t, "storage persist roster.txt: permission denied", err.Error())
	assert.ErrorIs(t, err, ErrStorageIO)
	assert.ErrorIs(t, err, fs.ErrPermission)

	wrapped := fmt.Errorf("AddStudent: %w", err)
	var ioErr *IOError
	assert.True(t, errors.As(wrapped, &ioErr))
	assert.Equal(t, "persist", ioErr.Op)

	assert.Equal(t, "storage open: boom", (&IOError{Op: "open", Err: errors.New("boom")}).Error())
}

func TestCorruptRecordError(t *testing.T) {
	err := &CorruptRecordError{Path: "roster.txt", Line: 3, Fields: 2, Text: "S1::Ann"}
	assert.Equal(t, `corrupt record at roster.txt:3: got 2 fields: "S1::Ann"`, err.Error())
	assert.NotErrorIs(t, err, ErrStorageIO)
}
