package epipred

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// RunError reports one failed external-tool invocation: launch failure,
// non-zero exit, or an empty output file. It carries the full command line
// and the combined stdout+stderr so a batch failure can be diagnosed
// without re-running the tool.
type RunError struct {
	Command string
	Output  string
	Err     error
}

func (e *RunError) Error() string {
	msg := "external tool failed: " + e.Command
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *RunError) Unwrap() error { return e.Err }

// runCommand executes one rendered command line through the shell, blocking
// until it finishes, and enforces the tool contract: zero exit status and a
// non-empty output file. Tools that exit 0 after silently writing nothing
// are a documented failure mode, so the second check is not optional.
func runCommand(command, outFile string) error {
	cmd := exec.Command("sh", "-c", command)
	combined := new(bytes.Buffer)
	cmd.Stdout = combined
	cmd.Stderr = combined
	if err := cmd.Run(); err != nil {
		return &RunError{Command: command, Output: combined.String(), Err: err}
	}

	fi, err := os.Stat(outFile)
	if err != nil {
		return &RunError{
			Command: command,
			Output:  combined.String(),
			Err:     fmt.Errorf("tool exited 0 but wrote no output file: %v", err),
		}
	}
	if fi.Size() == 0 {
		return &RunError{
			Command: command,
			Output:  combined.String(),
			Err:     fmt.Errorf("tool exited 0 but output file %s is empty", outFile),
		}
	}
	return nil
}
