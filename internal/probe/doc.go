// Package probe invokes an external media probe executable (ffprobe or
// avprobe) and parses its JSON report.
//
// Key types:
//   - Options: executable name, probe log level, extra arguments, color
//   - Result: raw parsed output, a format block plus an ordered stream list
//   - Report: streams partitioned into audio/video/other buckets
//
// Results are kept as generic maps rather than typed structs so every key
// the probe emits survives rendering unchanged. The buckets in a Report
// share the underlying stream maps with the Result they came from.
package probe
