package epipred

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// ExternalVersion runs the tool's version probe and returns its trimmed
// combined output. ok is false when the spec declares no probe or the probe
// yields nothing usable; several wrapped tools cannot report a version at
// all.
func (s *ToolSpec) ExternalVersion(execOverride string) (string, bool) {
	if s.VersionCmd == "" {
		return "", false
	}
	command := s.VersionCmd
	if execOverride != "" {
		c, err := overrideExec(command, execOverride)
		if err != nil {
			return "", false
		}
		command = c
	}

	cmd := exec.Command("sh", "-c", command)
	combined := new(bytes.Buffer)
	cmd.Stdout = combined
	cmd.Stderr = combined
	if err := cmd.Run(); err != nil {
		return "", false
	}
	v := strings.TrimSpace(combined.String())
	if v == "" {
		return "", false
	}
	return v, true
}

// VersionError reports drift between the declared tool version and what the
// installed binary says about itself.
type VersionError struct {
	Tool     string
	Declared string
	Reported string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("%s: version drift: wrapper declares %q but installed tool reports %q",
		e.Tool, e.Declared, e.Reported)
}

// checkVersion compares the probe's answer byte for byte against the
// declared version. A tool that cannot report a version passes; a tool that
// reports a different one fails before any job runs.
func checkVersion(spec *ToolSpec, execOverride string) error {
	reported, ok := spec.ExternalVersion(execOverride)
	if !ok {
		return nil
	}
	if reported != spec.Version {
		return &VersionError{Tool: spec.Name, Declared: spec.Version, Reported: reported}
	}
	return nil
}
