package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/kitty-go/internal/lock"
)

// ExitLocked is the exit code used when the input is locked by a writer.
const ExitLocked = 3

// ContextError adds operation and path context to an underlying error.
type ContextError struct {
	Op   string
	Path string
	Err  error
}

// Error returns the formatted error string with context.
func (e *ContextError) Error() string {
	if e.Op != "" && e.Path != "" {
		return e.Op + ": " + e.Path + ": " + e.Err.Error()
	}
	if e.Op != "" {
		return e.Op + ": " + e.Err.Error()
	}
	if e.Path != "" {
		return e.Path + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ContextError) Unwrap() error {
	return e.Err
}

// LockHeldError is returned when --lock finds the input exclusively locked.
type LockHeldError struct {
	Path string
}

// Error implements the error interface.
func (e *LockHeldError) Error() string {
	return e.Path + ": " + lock.ErrLocked.Error()
}

// Unwrap returns lock.ErrLocked.
func (e *LockHeldError) Unwrap() error {
	return lock.ErrLocked
}

// ExitCode returns ExitLocked.
func (e *LockHeldError) ExitCode() int {
	return ExitLocked
}

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns the appropriate exit code for an error.
// nil returns 0, ExitCoder errors return their code, all others return 1.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// FormatError formats an error with the "kitty: " prefix and trailing newline.
func FormatError(err error) string {
	return fmt.Sprintf("kitty: %s\n", err.Error())
}

// RunCLI executes the command with the given args and streams, writing
// errors to stderr. It returns the appropriate exit code.
func RunCLI(cmd *cobra.Command, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		fmt.Fprint(stderr, FormatError(err))
		return ExitCodeFromError(err)
	}
	return 0
}
