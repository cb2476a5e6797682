// Package console provides the I/O capability the roster session talks
// through: print a line, read a line, read a bounded integer.
//
// The session and view depend only on the IO interface, so tests drive
// them with scripted input instead of a real terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// IO is the I/O capability consumed by the session and the view.
type IO interface {
	// Print writes one line of output.
	Print(line string)

	// ReadString shows prompt and returns the next input line without
	// its line terminator.
	ReadString(prompt string) (string, error)

	// ReadInt shows prompt until the user enters a whole number within
	// [min, max], and returns it. Invalid input is answered with a hint
	// and a new prompt; it is never returned.
	ReadInt(prompt string, min, max int) (int, error)
}

// The read methods only return an error when the input stream itself
// fails or ends (io.EOF). Bad input is handled inside the loop.

// Stream implements IO over an arbitrary reader and writer.
type Stream struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Stream reading from in and writing to out, e.g.
// console.New(os.Stdin, os.Stdout).
func New(in io.Reader, out io.Writer) *Stream {
	return &Stream{in: bufio.NewReader(in), out: out}
}

func (s *Stream) Print(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Stream) ReadString(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt+" ")

	line, err := s.in.ReadString('\n')
	if err != nil {
		// A final line without a newline still counts as input.
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (s *Stream) ReadInt(prompt string, min, max int) (int, error) {
	for {
		line, err := s.ReadString(prompt)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			s.Print("Please enter a whole number.")
			continue
		}
		if n < min || n > max {
			s.Print(fmt.Sprintf("Please enter a number between %d and %d.", min, max))
			continue
		}
		return n, nil
	}
}
