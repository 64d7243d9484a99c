package runner

import (
	"fmt"
	"os/exec"
)

// Run executes a command and returns an error with the combined output if it fails.
func Run(cmd *exec.Cmd) error {
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("command failed: %s\n%s", cmd.String(), string(output))
	}
	return nil
}

// Output executes a command and returns its combined output. On failure the
// output is still returned alongside the error, since OS network tools tend
// to print the reason on stdout.
func Output(cmd *exec.Cmd) (string, error) {
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("command failed: %s\n%s", cmd.String(), string(output))
	}
	return string(output), nil
}
