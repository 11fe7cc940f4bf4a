package render

import (
	"fmt"
	"strings"
)

// Format selects one of the output renderings.
type Format int

const (
	// FormatJSON is compact single-line JSON.
	FormatJSON Format = iota
	// FormatJSONPretty is two-space indented JSON with sorted keys.
	FormatJSONPretty
	// FormatPython is a Python literal of the same structure.
	FormatPython
	// FormatKV is flattened key=value lines.
	FormatKV
	// FormatSummary is a short human-readable digest.
	FormatSummary
)

var formatNames = []string{
	FormatJSON:       "json",
	FormatJSONPretty: "json-pretty",
	FormatPython:     "python",
	FormatKV:         "kv",
	FormatSummary:    "summary",
}

func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// FormatNames lists the accepted format selector values.
func FormatNames() []string {
	return append([]string(nil), formatNames...)
}

// ParseFormat maps a selector string to a Format.
func ParseFormat(name string) (Format, error) {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	for f, known := range formatNames {
		if cleaned == known {
			return Format(f), nil
		}
	}
	return FormatJSON, fmt.Errorf("unknown format %q (valid: %s)", name, strings.Join(formatNames, ", "))
}
