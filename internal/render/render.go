package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"avtool/internal/probe"
)

// Render writes the report to w in the requested format. The summary format
// ignores the selection for its stream digest but every other format omits
// deselected buckets.
func Render(w io.Writer, report probe.Report, sel Selection, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, report, sel, false)
	case FormatJSONPretty:
		return renderJSON(w, report, sel, true)
	case FormatPython:
		return renderPython(w, report, sel)
	case FormatKV:
		return renderKV(w, report, sel)
	case FormatSummary:
		return renderSummary(w, report)
	default:
		return fmt.Errorf("unsupported format %v", format)
	}
}

func renderJSON(w io.Writer, report probe.Report, sel Selection, pretty bool) error {
	payload := map[string]any{"format": report.Format}
	if sel.Audio {
		payload["audio_streams"] = report.Audio
	}
	if sel.Video {
		payload["video_streams"] = report.Video
	}
	if sel.Other {
		payload["other_streams"] = report.Other
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(payload)
}

func renderKV(w io.Writer, report probe.Report, sel Selection) error {
	if err := writeKVEntry(w, "format", report.Format); err != nil {
		return err
	}
	buckets := []struct {
		name     string
		selected bool
		streams  []map[string]any
	}{
		{"audio", sel.Audio, report.Audio},
		{"video", sel.Video, report.Video},
		{"other", sel.Other, report.Other},
	}
	for _, bucket := range buckets {
		if !bucket.selected {
			continue
		}
		for i, stream := range bucket.streams {
			if err := writeKVEntry(w, fmt.Sprintf("%s.%d", bucket.name, i), stream); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeKVEntry emits one "prefix.key = value" line per key, values
// JSON-encoded, keys in sorted order for stable output.
func writeKVEntry(w io.Writer, prefix string, entry map[string]any) error {
	for _, key := range sortedKeys(entry) {
		encoded, err := json.Marshal(entry[key])
		if err != nil {
			return fmt.Errorf("encode %s.%s: %w", prefix, key, err)
		}
		if _, err := fmt.Fprintf(w, "%s.%s = %s\n", prefix, key, encoded); err != nil {
			return err
		}
	}
	return nil
}

func sortedKeys(entry map[string]any) []string {
	keys := make([]string, 0, len(entry))
	for key := range entry {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
