package probe

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProbeJSON = `{
  "streams": [
    {"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720},
    {"index": 1, "codec_type": "audio", "codec_name": "aac", "channels": 2}
  ],
  "format": {
    "filename": "clip.mkv",
    "nb_streams": 2,
    "format_name": "matroska,webm",
    "duration": "12.500000",
    "bit_rate": "128000"
  }
}`

// writeStub creates a fake probe executable that records its arguments and
// the color env var, then prints the canned JSON report.
func writeStub(t *testing.T, dir, stdout string, exitCode int) (exe, argsFile, envFile string) {
	t.Helper()
	exe = filepath.Join(dir, "fakeprobe")
	argsFile = filepath.Join(dir, "args")
	envFile = filepath.Join(dir, "env")
	script := "#!/bin/sh\n" +
		"printf '%s\\n' \"$@\" > \"" + argsFile + "\"\n" +
		"printf '%s\\n' \"$AV_LOG_FORCE_NOCOLOR\" > \"" + envFile + "\"\n" +
		"cat <<'PROBEEOF'\n" + stdout + "\nPROBEEOF\n"
	if exitCode != 0 {
		script = "#!/bin/sh\necho 'probe blew up' >&2\nexit 1\n"
	}
	if err := os.WriteFile(exe, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return exe, argsFile, envFile
}

func TestRunParsesReportAndFillsSize(t *testing.T) {
	dir := t.TempDir()
	exe, _, _ := writeStub(t, dir, sampleProbeJSON, 0)

	target := filepath.Join(dir, "clip.mkv")
	if err := os.WriteFile(target, []byte("0123456789"), 0o644); err != nil {
		t.Fatalf("write target: %v", err)
	}

	result, err := Run(context.Background(), Options{Executable: exe}, target)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(result.Streams) != 2 {
		t.Fatalf("expected 2 streams, got %d", len(result.Streams))
	}
	if result.Format["format_name"] != "matroska,webm" {
		t.Fatalf("unexpected format_name: %v", result.Format["format_name"])
	}
	// The canned report has no size key, so it comes from the filesystem.
	if size, ok := result.Format["size"].(int64); !ok || size != 10 {
		t.Fatalf("expected size 10 from stat, got %v", result.Format["size"])
	}
	if declared, ok := result.DeclaredStreamCount(); !ok || declared != 2 {
		t.Fatalf("unexpected declared stream count: %d %v", declared, ok)
	}
}

func TestRunCommandLineOrderAndColor(t *testing.T) {
	dir := t.TempDir()
	exe, argsFile, envFile := writeStub(t, dir, sampleProbeJSON, 0)

	opts := Options{
		Executable: exe,
		LogLevel:   "warning",
		InputArgs:  []string{"-count_frames"},
		OutputArgs: []string{"-show_chapters"},
		NoColor:    true,
	}
	if _, err := Run(context.Background(), opts, "input.mkv"); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	raw, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	got := strings.Split(strings.TrimSpace(string(raw)), "\n")
	want := []string{"-show_format", "-show_streams", "-of", "json", "-v", "warning", "-count_frames", "input.mkv", "-show_chapters"}
	if len(got) != len(want) {
		t.Fatalf("argument count mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("argument %d: got %q want %q", i, got[i], want[i])
		}
	}

	env, err := os.ReadFile(envFile)
	if err != nil {
		t.Fatalf("read recorded env: %v", err)
	}
	if strings.TrimSpace(string(env)) != "1" {
		t.Fatalf("expected AV_LOG_FORCE_NOCOLOR=1, got %q", string(env))
	}
}

func TestRunRejectsUnknownLogLevel(t *testing.T) {
	_, err := Run(context.Background(), Options{LogLevel: "loud"}, "input.mkv")
	if err == nil || !strings.Contains(err.Error(), "loud") {
		t.Fatalf("expected log level error, got %v", err)
	}
}

func TestRunToolNotFound(t *testing.T) {
	opts := Options{Executable: "definitely-not-a-real-probe-tool"}
	_, err := Run(context.Background(), opts, "input.mkv")
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestRunProbeFailureCarriesStderr(t *testing.T) {
	dir := t.TempDir()
	exe, _, _ := writeStub(t, dir, "", 1)

	_, err := Run(context.Background(), Options{Executable: exe}, "input.mkv")
	if !errors.Is(err, ErrProbeFailed) {
		t.Fatalf("expected ErrProbeFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "probe blew up") {
		t.Fatalf("expected stderr text in error, got %v", err)
	}
}

func TestRunMalformedOutput(t *testing.T) {
	dir := t.TempDir()
	exe, _, _ := writeStub(t, dir, "this is not JSON", 0)

	_, err := Run(context.Background(), Options{Executable: exe}, "input.mkv")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
