// Package core provides the process plumbing shared by catr's packages.
package core

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"golang.org/x/term"
)

// Exit codes following POSIX conventions
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Stdio holds the standard I/O streams for a run.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// OutIsTerminal reports whether stdout is attached to a terminal.
// Injected writers that are not *os.File never are.
func (s *Stdio) OutIsTerminal() bool {
	if f, ok := s.Out.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// UsageError prints a usage error and returns ExitUsage.
func UsageError(stdio *Stdio, prog, message string) int {
	stdio.Errorf("%s: %s\n", prog, message)
	return ExitUsage
}

// FileError prints a file-related error and returns ExitFailure.
func FileError(stdio *Stdio, prog, path string, err error) int {
	stdio.Errorf("%s: %s: %v\n", prog, path, Cause(err))
	return ExitFailure
}

// Cause strips the operation and path from an *fs.PathError so the path is
// not repeated when the caller already names it.
func Cause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}
