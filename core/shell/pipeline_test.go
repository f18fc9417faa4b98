package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecPipeline(t *testing.T) {
	skipWithoutUnix(t)

	e, stdout, stderr, _ := testExecutor()

	status := e.Exec([]string{"echo", "hello", "|", "cat"})

	assert.Equal(t, StatusContinue, status)
	assert.Equal(t, "hello\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestExecPipelineCountsLines(t *testing.T) {
	skipWithoutUnix(t)

	e, stdout, _, _ := testExecutor()

	status := e.Exec([]string{"printf", `a\nb\nc\n`, "|", "wc", "-l"})

	assert.Equal(t, StatusContinue, status)
	assert.Equal(t, "3", strings.TrimSpace(stdout.String()))
}

func TestExecPipelineQuotedArgs(t *testing.T) {
	skipWithoutUnix(t)

	e, stdout, _, _ := testExecutor()

	tokens, err := Split(`echo "hello world" | cat`)
	assert.NoError(t, err)

	assert.Equal(t, StatusContinue, e.Exec(tokens))
	assert.Equal(t, "hello world\n", stdout.String())
}

func TestExecPipelineLeftNotFound(t *testing.T) {
	skipWithoutUnix(t)

	e, _, stderr, _ := testExecutor()

	status := e.Exec([]string{"no-such-program-jsh", "|", "cat"})

	assert.Equal(t, StatusFailed, status)
	assert.Contains(t, stderr.String(), "no-such-program-jsh")
}

func TestExecPipelineRightNotFound(t *testing.T) {
	skipWithoutUnix(t)

	e, _, stderr, _ := testExecutor()

	status := e.Exec([]string{"echo", "hi", "|", "no-such-program-jsh"})

	assert.Equal(t, StatusFailed, status)
	assert.Contains(t, stderr.String(), "no-such-program-jsh")
}

func TestExecPipelineRightExitIgnored(t *testing.T) {
	skipWithoutUnix(t)

	e, _, stderr, _ := testExecutor()

	// Both stages spawn fine; their exit codes never drive the loop.
	assert.Equal(t, StatusContinue, e.Exec([]string{"echo", "hi", "|", "false"}))
	assert.Empty(t, stderr.String())
}
