// Package cli provides the goades command-line interface: validation of
// diagnostic data against a validation policy and policy inspection.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jonboulle/clockwork"
)

// Version information
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// osExit is a variable for os.Exit to allow testing
var osExit = os.Exit

// ErrNotPassed is returned by the validate command when at least one
// signature did not reach TOTAL_PASSED.
var ErrNotPassed = errors.New("not every signature passed")

// Exit codes.
const (
	exitOK        = 0
	exitNotPassed = 1
	exitError     = 2
)

// Run executes the CLI with the given arguments, os.Args style, and exits
// with the matching status code.
// This is the main entry point for the CLI.
func Run(args []string) {
	osExit(run(args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(clockwork.NewRealClock())
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrNotPassed):
		return exitNotPassed
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
}
