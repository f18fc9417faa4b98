package shell

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/fatih/color"

	"github.com/jsh-shell/jsh/core/config"
)

// Shell ties the prompt banner, the line editor and the executor into
// the interactive loop.
type Shell struct {
	Config   *config.Configuration
	Readline *readline.Instance
	Executor *Executor
}

// NewShell builds a shell reading from the process's own terminal.
func NewShell(cfg *config.Configuration) (*Shell, error) {
	rlCfg := &readline.Config{
		Stdin:  readline.NewCancelableStdin(os.Stdin),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if err := rlCfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(rlCfg)
	if err != nil {
		return nil, err
	}

	return &Shell{
		Config:   cfg,
		Readline: rl,
		Executor: NewExecutor(os.Stdin, os.Stdout, os.Stderr),
	}, nil
}

// Run drives the read loop until an exit request or end of input.
func (s *Shell) Run() error {
	if s.Config.Motd != "" {
		fmt.Fprintln(s.Readline, s.Config.Motd)
	}

	for {
		s.Readline.SetPrompt(s.Prompt())
		line, err := s.Readline.Readline()

		switch {
		case err == io.EOF:
			return nil // Input closed, quit.

		case err == readline.ErrInterrupt:
			continue // Interrupt clears the line.

		case err != nil:
			log.Printf("readline: %v", err)
			continue
		}

		if s.RunLine(line) == StatusExit {
			return nil
		}
	}
}

// RunLine tokenizes and executes a single command line. Malformed
// quoting lands in the fatal error tier.
func (s *Shell) RunLine(line string) Status {
	tokens, err := Split(line)
	if err != nil {
		s.Executor.fatalf("%v", err)
		return StatusFailed
	}
	return s.Executor.Exec(tokens)
}

func (s *Shell) Close() error {
	return s.Readline.Close()
}

// Prompt renders the banner for the next read, e.g. ~user@host:/tmp >> .
func (s *Shell) Prompt() string {
	username := "?"
	if u, err := user.Current(); err == nil {
		username = u.Username
	}
	host, err := os.Hostname()
	if err != nil {
		host = "?"
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "?"
	}
	return RenderPrompt(s.Config.Prompt, username, host, wd, s.useColor())
}

func (s *Shell) useColor() bool {
	switch s.Config.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return readline.DefaultIsTerminal()
	}
}

// RenderPrompt expands \u, \h and \w in format to the given user, host
// and working directory, coloring the expansions when asked.
func RenderPrompt(format, username, host, wd string, colored bool) string {
	if colored {
		userColor := color.New(color.FgGreen, color.Bold)
		userColor.EnableColor()
		pathColor := color.New(color.FgBlue, color.Bold)
		pathColor.EnableColor()

		username = userColor.Sprint(username)
		host = userColor.Sprint(host)
		wd = pathColor.Sprint(wd)
	}

	r := strings.NewReplacer(`\u`, username, `\h`, host, `\w`, wd)
	return r.Replace(format)
}
