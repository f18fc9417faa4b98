package main

import "github.com/jsh-shell/jsh/cmd"

func main() {
	cmd.Execute()
}
