package webpmux

import (
	"fmt"
	"io"
)

// Describe writes a short human-readable digest of the report.
func Describe(w io.Writer, path string, info Info) error {
	plural := "s"
	if info.FrameCount == 1 {
		plural = ""
	}
	if _, err := fmt.Fprintf(w, "%s: %d frame%s\n", path, info.FrameCount, plural); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Size: %dx%d\n", info.Width, info.Height)
	return err
}
