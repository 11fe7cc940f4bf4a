package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"avtool/internal/probe"
)

// renderSummary distills the report into a few human-readable lines: the
// container format, duration, and file size, plus the dimensions of the
// first video stream and the channel count of the first audio stream.
func renderSummary(w io.Writer, report probe.Report) error {
	path, _ := report.Format["path"].(string)
	if path == "" {
		path, _ = report.Format["filename"].(string)
	}
	display := path
	if cwd, err := os.Getwd(); err == nil && path != "" {
		if rel, err := filepath.Rel(cwd, path); err == nil {
			display = rel
		}
	}

	formatName, _ := report.Format["format_long_name"].(string)
	if formatName == "" {
		formatName, _ = report.Format["format_name"].(string)
	}
	if formatName == "" {
		return fmt.Errorf("summary: no format name in probe data for %s", display)
	}

	duration := "unknown"
	if seconds, ok := probe.Number(report.Format["duration"]); ok {
		duration = FormatDuration(seconds)
	}
	size := "unknown"
	if bytes, ok := probe.Number(report.Format["size"]); ok {
		size = FormatBytes(bytes)
	}

	if _, err := fmt.Fprintf(w, "%s: %s\n", display, formatName); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  duration: %s\n", duration); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  file size: %s\n", size); err != nil {
		return err
	}
	if len(report.Video) > 0 {
		width, wok := probe.Number(report.Video[0]["width"])
		height, hok := probe.Number(report.Video[0]["height"])
		if wok && hok {
			if _, err := fmt.Fprintf(w, "  video image size: %dx%dpx\n", int(width), int(height)); err != nil {
				return err
			}
		}
	}
	if len(report.Audio) > 0 {
		if channels, ok := probe.Number(report.Audio[0]["channels"]); ok {
			if _, err := fmt.Fprintf(w, "  audio channels: %d\n", int(channels)); err != nil {
				return err
			}
		}
	}
	return nil
}
