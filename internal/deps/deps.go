// Package deps reports the availability of the external tools avtool drives.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"avtool/internal/config"
)

// Requirement defines an external tool avtool relies on.
type Requirement struct {
	Name        string `json:"name"`
	Command     string `json:"command"`
	Description string `json:"description"`
	Optional    bool   `json:"optional"`
}

// Status reports the availability of a requirement.
type Status struct {
	Requirement
	Available bool   `json:"available"`
	Path      string `json:"path,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// Defaults returns the requirement set for the configured tool commands.
func Defaults(cfg *config.Config) []Requirement {
	return []Requirement{
		{
			Name:        "probe",
			Command:     cfg.Probe.Executable,
			Description: "media inspection (avtool info)",
		},
		{
			Name:        "webpmux",
			Command:     cfg.WebP.WebpmuxBinary,
			Description: "WebP container inspection (avtool webp)",
			Optional:    true,
		},
	}
}

// Check resolves each requirement's command on PATH.
func Check(requirements []Requirement) []Status {
	statuses := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		status := Status{Requirement: req}
		status.Command = strings.TrimSpace(req.Command)
		if status.Command == "" {
			status.Detail = "command not configured"
			statuses = append(statuses, status)
			continue
		}
		resolved, err := exec.LookPath(status.Command)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", status.Command)
			statuses = append(statuses, status)
			continue
		}
		status.Available = true
		status.Path = resolved
		statuses = append(statuses, status)
	}
	return statuses
}

// Missing reports whether any required (non-optional) tool is unavailable.
func Missing(statuses []Status) bool {
	for _, status := range statuses {
		if !status.Optional && !status.Available {
			return true
		}
	}
	return false
}
