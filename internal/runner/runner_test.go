package runner

import (
	"os/exec"
	"strings"
	"testing"
)

func TestRunSuccess(t *testing.T) {
	if err := Run(exec.Command("true")); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
}

func TestRunFailureIncludesCommand(t *testing.T) {
	err := Run(exec.Command("false"))
	if err == nil {
		t.Fatal("Run() expected an error")
	}
	if !strings.Contains(err.Error(), "false") {
		t.Errorf("error should name the command, got: %v", err)
	}
}

func TestOutput(t *testing.T) {
	out, err := Output(exec.Command("echo", "hello"))
	if err != nil {
		t.Fatalf("Output() failed: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("Output() got %q, want hello", out)
	}
}

func TestOutputFailureReturnsOutput(t *testing.T) {
	out, err := Output(exec.Command("sh", "-c", "echo oops; exit 1"))
	if err == nil {
		t.Fatal("Output() expected an error")
	}
	if !strings.Contains(out, "oops") {
		t.Errorf("Output() should return output on failure, got %q", out)
	}
}
