package shell

import (
	"fmt"
	"os"
	"os/exec"
)

// execPipeline runs left and right as concurrent children with left's
// stdout feeding right's stdin through one OS pipe. Both children are
// spawned before either is awaited, and both are awaited before the
// call returns.
func (e *Executor) execPipeline(left, right []string) Status {
	pr, pw, err := os.Pipe()
	if err != nil {
		fmt.Fprintf(e.stderr, "jsh: pipe could not be initialized: %v\n", err)
		return StatusFailed
	}

	leftCmd := exec.Command(left[0], left[1:]...)
	leftCmd.Stdin = e.stdin
	leftCmd.Stdout = pw
	leftCmd.Stderr = e.stderr

	rightCmd := exec.Command(right[0], right[1:]...)
	rightCmd.Stdin = pr
	rightCmd.Stdout = e.stdout
	rightCmd.Stderr = e.stderr

	if err := leftCmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		fmt.Fprintf(e.stderr, "jsh: %s: %v\n", left[0], err)
		return StatusFailed
	}
	if err := rightCmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		fmt.Fprintf(e.stderr, "jsh: %s: %v\n", right[0], err)
		_ = leftCmd.Wait()
		return StatusFailed
	}

	// The parent takes no part in the transfer; once its copies close,
	// the children hold the only remaining descriptors and the reader
	// sees EOF when the writer exits.
	pw.Close()
	pr.Close()

	// Child exit statuses never drive the loop's control decision.
	_ = leftCmd.Wait()
	_ = rightCmd.Wait()

	return StatusContinue
}
