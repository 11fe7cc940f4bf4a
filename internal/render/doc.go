// Package render serializes classified probe reports into textual output.
//
// Five formats are supported: compact JSON (the default), indented JSON
// with sorted keys, a Python literal, flattened key=value lines, and a
// short human-readable summary. Rendering is a pure function of the report,
// the stream selection, and the format; nothing is cached between calls.
package render
