package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	New(strings.NewReader(""), &out).Print("Main Menu")
	assert.Equal(t, "Main Menu\n", out.String())
}

func TestReadString(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("Ann\r\n\nLee"), &out)

	got, err := s.ReadString("First Name:")
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)

	got, err = s.ReadString("Middle:")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = s.ReadString("Last Name:")
	require.NoError(t, err)
	assert.Equal(t, "Lee", got)

	_, err = s.ReadString("More:")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, "First Name: Middle: Last Name: More: ", out.String())
}

func TestReadIntLoopsUntilValid(t *testing.T) {
	var out bytes.Buffer
	s := New(strings.NewReader("abc\n0\n6\n 3 \n"), &out)

	n, err := s.ReadInt("Choice:", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	assert.Equal(t, strings.Join([]string{
		"Choice: Please enter a whole number.",
		"Choice: Please enter a number between 1 and 5.",
		"Choice: Please enter a number between 1 and 5.",
		"Choice: ",
	}, "\n"), out.String())
}

func TestReadIntBounds(t *testing.T) {
	s := New(strings.NewReader("1\n5\n"), io.Discard)

	n, err := s.ReadInt("Choice:", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = s.ReadInt("Choice:", 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestReadIntEOF(t *testing.T) {
	s := New(strings.NewReader("nope\n"), io.Discard)

	_, err := s.ReadInt("Choice:", 1, 5)
	assert.ErrorIs(t, err, io.EOF)
}
