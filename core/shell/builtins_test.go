package shell

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestDefaultBuiltins(t *testing.T) {
	builtins := defaultBuiltins()

	for _, name := range []string{"cd", "help", "exit"} {
		t.Run(name, func(t *testing.T) {
			assert.NotNil(t, builtins[name])
		})
	}
	assert.Len(t, builtins, 3)
}

func TestExitIgnoresArguments(t *testing.T) {
	e, _, _, _ := testExecutor()

	assert.Equal(t, StatusExit, Exit(e, []string{"exit"}))
	assert.Equal(t, StatusExit, Exit(e, []string{"exit", "1", "2", "3"}))
}

func TestHelpGolden(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	stdout := &bytes.Buffer{}
	e := NewExecutor(strings.NewReader(""), stdout, &bytes.Buffer{})

	assert.Equal(t, StatusContinue, Help(e, []string{"help"}))

	g.Assert(t, "help", stdout.Bytes())
}
