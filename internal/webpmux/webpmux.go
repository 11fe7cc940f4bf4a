package webpmux

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// DefaultBinary is the tool used when none is configured.
const DefaultBinary = "webpmux"

var (
	// ErrToolNotFound reports that the webpmux binary could not be located.
	ErrToolNotFound = errors.New("webpmux tool not found")
	// ErrInfoFailed reports a non-zero exit from webpmux -info.
	ErrInfoFailed = errors.New("webpmux info failed")
)

// Inspect runs `webpmux -info path` and parses the report.
func Inspect(ctx context.Context, binary, path string, logger *slog.Logger) (Info, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, binary, "-info", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return Info{}, fmt.Errorf("%w: %s", ErrToolNotFound, binary)
		}
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return Info{}, fmt.Errorf("%w: %s: %s", ErrInfoFailed, path, detail)
	}

	return Parse(stdout.String(), logger), nil
}
