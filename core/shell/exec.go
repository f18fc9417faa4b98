package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Status is the control result of executing one command line.
type Status int

const (
	// StatusContinue means the line completed and the loop should read
	// the next one.
	StatusContinue Status = iota
	// StatusExit means a builtin requested that the shell terminate.
	StatusExit
	// StatusFailed means the line could not be run; the loop still
	// continues.
	StatusFailed
)

// PipeSep is the token that separates the two stages of a pipeline.
const PipeSep = "|"

// Executor classifies a token sequence and runs it as a builtin, an
// external program, or a two-stage pipeline. It never mutates the
// token slice it is handed.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	builtins map[string]Builtin

	// fatalf reports an unrecoverable error. The default prints a
	// diagnostic and aborts the whole process; tests swap it out.
	fatalf func(format string, args ...interface{})
}

// NewExecutor returns an executor wired to the given standard streams.
func NewExecutor(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	e := &Executor{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		builtins: defaultBuiltins(),
	}
	e.fatalf = func(format string, args ...interface{}) {
		fmt.Fprintf(stderr, "jsh: error: %s\n", fmt.Sprintf(format, args...))
		os.Exit(1)
	}
	return e
}

// Exec dispatches one tokenized command line.
func (e *Executor) Exec(tokens []string) Status {
	if len(tokens) == 0 {
		return StatusContinue
	}

	for i, tok := range tokens {
		if tok[0] != PipeSep[0] {
			continue
		}
		if len(tok) > 1 || i == 0 {
			fmt.Fprintf(e.stderr, "jsh: syntax error for '%s'\n", PipeSep)
			return StatusFailed
		}
		if i+1 == len(tokens) {
			fmt.Fprintln(e.stderr, "jsh: right command expected for piping")
			return StatusFailed
		}

		left, right := splitPipe(tokens)
		if len(right) == 0 {
			// Possible when a later separator ends the line.
			fmt.Fprintln(e.stderr, "jsh: right command expected for piping")
			return StatusFailed
		}
		return e.execPipeline(left, right)
	}

	if builtin, ok := e.builtins[tokens[0]]; ok {
		return builtin.Main(e, tokens)
	}

	return e.runExternal(tokens)
}

// splitPipe partitions tokens around the last separator token, so the
// original line is reconstructable as left ++ [PipeSep] ++ right.
func splitPipe(tokens []string) (left, right []string) {
	last := -1
	for i, tok := range tokens {
		if tok == PipeSep {
			last = i
		}
	}
	return tokens[:last], tokens[last+1:]
}

// runExternal launches tokens[0] with the full token slice as argv and
// waits for it. The child's exit status never drives the loop.
func (e *Executor) runExternal(tokens []string) Status {
	cmd := exec.Command(tokens[0], tokens[1:]...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(e.stderr, "jsh: %s: %v\n", tokens[0], err)
	}
	return StatusContinue
}
