package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// DefaultExecutable is the probe program used when none is configured.
const DefaultExecutable = "ffprobe"

// DefaultLogLevel is the probe verbosity used when none is configured.
const DefaultLogLevel = "error"

// LogLevels enumerates the verbosity values the probe executable accepts.
var LogLevels = []string{"quiet", "panic", "fatal", "error", "warning", "info", "verbose", "debug"}

// noColorEnv disables colored log output from ffmpeg-family tools.
const noColorEnv = "AV_LOG_FORCE_NOCOLOR"

var (
	// ErrToolNotFound reports that the probe executable could not be located.
	ErrToolNotFound = errors.New("probe tool not found")
	// ErrProbeFailed reports a non-zero exit from the probe executable.
	ErrProbeFailed = errors.New("probe failed")
	// ErrParse reports that the probe emitted output that is not valid JSON.
	ErrParse = errors.New("parse probe output")
)

// ValidLogLevel reports whether level is one of LogLevels.
func ValidLogLevel(level string) bool {
	for _, known := range LogLevels {
		if level == known {
			return true
		}
	}
	return false
}

// Options describes how the probe executable is invoked.
type Options struct {
	// Executable is the probe program; DefaultExecutable when empty.
	Executable string
	// LogLevel is passed via -v; DefaultLogLevel when empty.
	LogLevel string
	// InputArgs are inserted before the path on the command line.
	InputArgs []string
	// OutputArgs are appended after the path on the command line.
	OutputArgs []string
	// NoColor sets AV_LOG_FORCE_NOCOLOR=1 in the child environment.
	NoColor bool
	// Env holds extra environment entries; they override NoColor.
	Env map[string]string
}

func (o Options) executable() string {
	if exe := strings.TrimSpace(o.Executable); exe != "" {
		return exe
	}
	return DefaultExecutable
}

func (o Options) logLevel() string {
	if level := strings.TrimSpace(o.LogLevel); level != "" {
		return level
	}
	return DefaultLogLevel
}

func (o Options) args(path string) []string {
	args := []string{"-show_format", "-show_streams", "-of", "json", "-v", o.logLevel()}
	args = append(args, o.InputArgs...)
	args = append(args, path)
	args = append(args, o.OutputArgs...)
	return args
}

// Run executes the probe against path and decodes its JSON report.
//
// Failures carry one of the package sentinels: ErrToolNotFound when the
// executable is missing, ErrProbeFailed (with the tool's stderr text) on a
// non-zero exit, and ErrParse when the output is not JSON. Callers probing
// several paths are expected to report the error and move on.
func Run(ctx context.Context, opts Options, path string) (Result, error) {
	exe := opts.executable()
	level := opts.logLevel()
	if !ValidLogLevel(level) {
		return Result{}, fmt.Errorf("log level %q: valid values are %s", level, strings.Join(LogLevels, ", "))
	}

	cmd := exec.CommandContext(ctx, exe, opts.args(path)...)

	env := os.Environ()
	if opts.NoColor {
		env = append(env, noColorEnv+"=1")
	}
	for key, value := range opts.Env {
		env = append(env, key+"="+value)
	}
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return Result{}, fmt.Errorf("%w: %s", ErrToolNotFound, exe)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := strings.TrimSpace(stderr.String())
			if detail == "" {
				detail = exitErr.String()
			}
			return Result{}, fmt.Errorf("%w: %s %s: %s", ErrProbeFailed, exe, path, detail)
		}
		return Result{}, fmt.Errorf("%w: %s: %v", ErrProbeFailed, exe, err)
	}

	var result Result
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if result.Format == nil {
		result.Format = map[string]any{}
	}

	// ffprobe omits size for some inputs; fall back to the filesystem.
	if _, ok := result.Format["size"]; !ok {
		if info, err := os.Stat(path); err == nil {
			result.Format["size"] = info.Size()
		}
	}

	return result, nil
}
