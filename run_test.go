package epipred

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.tsv")
	if err := runCommand("echo hello > "+out, out); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil || strings.TrimSpace(string(data)) != "hello" {
		t.Errorf("output = %q, %v", data, err)
	}
}

func TestRunCommandNonZeroExit(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.tsv")
	command := "echo boom >&2; exit 3"
	err := runCommand(command, out)
	if err == nil {
		t.Fatal("want error")
	}
	var re *RunError
	if !errors.As(err, &re) {
		t.Fatalf("error type %T", err)
	}
	if re.Command != command {
		t.Errorf("Command = %q", re.Command)
	}
	if !strings.Contains(re.Output, "boom") {
		t.Errorf("captured output = %q, want stderr merged in", re.Output)
	}
}

func TestRunCommandMissingBinary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.tsv")
	err := runCommand("/no/such/binary --flag", out)
	var re *RunError
	if !errors.As(err, &re) {
		t.Fatalf("want RunError, got %v", err)
	}
}

func TestRunCommandEmptyOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.tsv")
	if err := os.WriteFile(out, nil, 0644); err != nil {
		t.Fatal(err)
	}

	// The tool exits 0 but writes nothing.
	err := runCommand("true", out)
	if err == nil {
		t.Fatal("want error for empty output file")
	}
	var re *RunError
	if !errors.As(err, &re) {
		t.Fatalf("error type %T", err)
	}
	if !strings.Contains(err.Error(), "true") || !strings.Contains(err.Error(), "empty") {
		t.Errorf("error %q should name the command and the empty-file condition", err)
	}

	// Missing file is the same failure shape.
	err = runCommand("true", filepath.Join(dir, "never-created.tsv"))
	if !errors.As(err, &re) {
		t.Fatalf("missing output: error type %T", err)
	}
}
