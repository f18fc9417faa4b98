package shell

import (
	"fmt"
	"os"
	"sort"
)

// Builtin is a command handled inside the shell process itself.
type Builtin interface {
	Main(e *Executor, args []string) Status
}

// BuiltinFunc adapts a plain function to the Builtin interface.
type BuiltinFunc func(e *Executor, args []string) Status

func (f BuiltinFunc) Main(e *Executor, args []string) Status {
	return f(e, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// defaultBuiltins builds the name-to-action table. The table is built
// once per executor and never modified afterwards.
func defaultBuiltins() map[string]Builtin {
	return map[string]Builtin{
		"cd":   BuiltinFunc(Cd),
		"help": BuiltinFunc(Help),
		"exit": BuiltinFunc(Exit),
	}
}

// Cd changes the shell's working directory. A missing target directory
// is an unrecoverable error; a failed chdir is reported and the loop
// continues.
func Cd(e *Executor, args []string) Status {
	if len(args) < 2 {
		e.fatalf("argument expected for '%s' command", args[0])
		return StatusFailed
	}
	if err := os.Chdir(args[1]); err != nil {
		fmt.Fprintf(e.stderr, "jsh: %s: %v\n", args[0], err)
	}
	return StatusContinue
}

// Help prints the usage summary and the registered builtin names.
func Help(e *Executor, args []string) Status {
	w := e.stdout
	fmt.Fprintln(w, "jsh")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Pipe one program into another with '|':")
	fmt.Fprintln(w, "  cmd1 [args...] | cmd2 [args...]   (two programs at most)")
	fmt.Fprintln(w, "Group arguments containing spaces with double quotes.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "The following commands are built in:")

	names := make([]string, 0, len(e.builtins))
	for name := range e.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}

	return StatusContinue
}

// Exit asks the loop to terminate. Arguments are ignored.
func Exit(e *Executor, args []string) Status {
	return StatusExit
}
