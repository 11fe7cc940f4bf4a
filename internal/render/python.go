package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"avtool/internal/probe"
)

// renderPython writes the report as a Python literal. The output is
// informational only; it mirrors what a Python repr() of the same structure
// would look like, with inner keys sorted for stable output.
func renderPython(w io.Writer, report probe.Report, sel Selection) error {
	items := []string{"'format': " + pyValue(report.Format)}
	if sel.Audio {
		items = append(items, "'audio_streams': "+pyStreams(report.Audio))
	}
	if sel.Video {
		items = append(items, "'video_streams': "+pyStreams(report.Video))
	}
	if sel.Other {
		items = append(items, "'other_streams': "+pyStreams(report.Other))
	}
	_, err := fmt.Fprintf(w, "{%s}\n", strings.Join(items, ", "))
	return err
}

func pyStreams(streams []map[string]any) string {
	parts := make([]string, 0, len(streams))
	for _, stream := range streams {
		parts = append(parts, pyValue(stream))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func pyValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "None"
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return pyString(v)
	case float64:
		return pyFloat(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case map[string]any:
		parts := make([]string, 0, len(v))
		for _, key := range sortedKeys(v) {
			parts = append(parts, pyString(key)+": "+pyValue(v[key]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, pyValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return pyString(fmt.Sprint(v))
	}
}

func pyString(s string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// pyFloat renders a float the way Python's repr does: a whole-number float
// keeps its trailing ".0".
func pyFloat(f float64) string {
	if math.IsNaN(f) {
		return "nan"
	}
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
