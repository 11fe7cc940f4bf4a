package probe

import (
	"path/filepath"
	"strings"
)

// Result is the decoded probe report: container-level metadata plus the
// streams in probe order.
type Result struct {
	Format  map[string]any   `json:"format"`
	Streams []map[string]any `json:"streams"`
}

// Report partitions a Result's streams by codec type. Every stream lands in
// exactly one bucket; order within a bucket follows the probe output. The
// bucket slices alias the Result's stream maps rather than copying them.
type Report struct {
	Format map[string]any
	Audio  []map[string]any
	Video  []map[string]any
	Other  []map[string]any
}

// Classify partitions the result's streams into audio, video, and other
// (subtitles, attachments, anything unrecognized).
func (r Result) Classify() Report {
	report := Report{
		Format: r.Format,
		Audio:  []map[string]any{},
		Video:  []map[string]any{},
		Other:  []map[string]any{},
	}
	if report.Format == nil {
		report.Format = map[string]any{}
	}
	for _, stream := range r.Streams {
		switch codecType(stream) {
		case "audio":
			report.Audio = append(report.Audio, stream)
		case "video":
			report.Video = append(report.Video, stream)
		default:
			report.Other = append(report.Other, stream)
		}
	}
	return report
}

// DeclaredStreamCount returns the nb_streams value from the format block.
// ok is false when the key is absent or not numeric.
func (r Result) DeclaredStreamCount() (count int, ok bool) {
	value, present := r.Format["nb_streams"]
	if !present {
		return 0, false
	}
	f, ok := Number(value)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// AnnotatePath records the probed file's absolute path and base name in the
// format block, preferring the filename the probe reported over the path
// the caller supplied.
func (rep Report) AnnotatePath(inputPath string) {
	name := inputPath
	if filename, ok := rep.Format["filename"].(string); ok && filename != "" {
		name = filename
	}
	abs, err := filepath.Abs(name)
	if err != nil {
		abs = name
	}
	rep.Format["path"] = abs
	rep.Format["name"] = filepath.Base(abs)
}

func codecType(stream map[string]any) string {
	kind, _ := stream["codec_type"].(string)
	return strings.ToLower(strings.TrimSpace(kind))
}
