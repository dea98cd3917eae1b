package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrTestTimeout indicates the test command exceeded its deadline and was
// forcibly terminated. It is distinct from a failing test run.
var ErrTestTimeout = errors.New("test command timed out")

// shellBuiltins is the exact allow-list of commands executed through the
// shell. These exist only so the harness can be exercised with commands like
// "exit 1"; everything else runs argument-vector style with no shell
// interpretation.
var shellBuiltins = map[string]struct{}{
	"exit":  {},
	"true":  {},
	"false": {},
}

// TestRunnerAdapter abstracts executing the configured test command.
type TestRunnerAdapter interface {
	// RunCommand executes the test command bounded by ctx. It returns
	// passed=true on exit code 0 and passed=false on a non-zero exit.
	// Timeout and launch failures are returned as errors, never as a
	// boolean outcome.
	RunCommand(ctx context.Context, command string) (passed bool, output string, err error)
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
type LocalTestRunnerAdapter struct{}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter.
func NewLocalTestRunnerAdapter() *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{}
}

// RunCommand executes command, selecting the shell strategy for allow-listed
// builtins and the argument-vector strategy for everything else.
func (a *LocalTestRunnerAdapter) RunCommand(ctx context.Context, command string) (bool, string, error) {
	argv, err := SplitCommand(command)
	if err != nil {
		return false, "", err
	}

	var cmd *exec.Cmd
	if _, ok := shellBuiltins[argv[0]]; ok {
		cmd = shellStrategy(ctx, command)
	} else {
		cmd = argvStrategy(ctx, argv)
	}

	var buf bytes.Buffer

	cmd.Stdout = &buf
	cmd.Stderr = &buf

	runErr := cmd.Run()
	output := buf.String()

	if ctx.Err() != nil {
		return false, output, fmt.Errorf("%w: %s", ErrTestTimeout, command)
	}

	if runErr == nil {
		return true, output, nil
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		return false, output, nil
	}

	// Anything else is a launch failure (command not found, permission).
	return false, output, fmt.Errorf("launch %q: %w", command, runErr)
}

// argvStrategy builds a command that executes the tokenized argument vector
// directly, with no shell interpretation.
func argvStrategy(ctx context.Context, argv []string) *exec.Cmd {
	return exec.CommandContext(ctx, argv[0], argv[1:]...)
}

// shellStrategy builds a command that hands the whole line to the shell.
// Only reachable for allow-listed builtins.
func shellStrategy(ctx context.Context, command string) *exec.Cmd {
	return exec.CommandContext(ctx, "sh", "-c", command)
}

// SplitCommand tokenizes a command line into an argument vector. Single and
// double quotes group words; no other shell expansion is performed.
func SplitCommand(command string) ([]string, error) {
	var (
		argv    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)

	for _, r := range command {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				argv = append(argv, current.String())
				current.Reset()

				inWord = false
			}
		default:
			current.WriteRune(r)

			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unbalanced quote in command: %s", command)
	}

	if inWord {
		argv = append(argv, current.String())
	}

	if len(argv) == 0 {
		return nil, fmt.Errorf("empty test command")
	}

	return argv, nil
}
