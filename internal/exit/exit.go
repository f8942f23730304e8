package exit

import (
	"fmt"
	"io"
	"os"
)

// Process exit codes.
const (
	CodeOK      = 0
	CodeFailure = 1
	CodeUsage   = 2
	CodeNoMatch = 3
)

// Result carries the message and exit code a command finishes with.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the message to the configured output.
func (r *Result) Print() {
	if r.Message == "" {
		return
	}
	fmt.Fprint(r.Output, r.Message)
}

// Success prints to stdout and exits with CodeOK.
func Success(message string) *Result {
	return &Result{Output: os.Stdout, ExitCode: CodeOK, Message: message}
}

// Error prints to stderr and exits with CodeFailure.
func Error(message string) *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeFailure, Message: message}
}

func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// Usagef reports invalid invocation: bad flags or arguments.
func Usagef(format string, a ...any) *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeUsage, Message: fmt.Sprintf(format, a...)}
}

// NoMatch is returned when exit status reporting is enabled and no path
// matched in any document.
func NoMatch() *Result {
	return &Result{Output: os.Stderr, ExitCode: CodeNoMatch}
}
