package probe

import (
	"path/filepath"
	"testing"
)

func sampleResult() Result {
	return Result{
		Format: map[string]any{
			"filename":   "clip.mkv",
			"nb_streams": float64(3),
			"duration":   "12.5",
		},
		Streams: []map[string]any{
			{"index": float64(0), "codec_type": "video"},
			{"index": float64(1), "codec_type": "audio"},
			{"index": float64(2), "codec_type": "subtitle"},
		},
	}
}

func TestClassifyIsTotalAndOrderPreserving(t *testing.T) {
	result := Result{
		Streams: []map[string]any{
			{"index": 0, "codec_type": "video"},
			{"index": 1, "codec_type": "audio"},
			{"index": 2, "codec_type": "audio"},
			{"index": 3, "codec_type": "subtitle"},
			{"index": 4, "codec_type": "data"},
			{"index": 5}, // no codec_type at all
		},
	}
	report := result.Classify()

	total := len(report.Audio) + len(report.Video) + len(report.Other)
	if total != len(result.Streams) {
		t.Fatalf("classification dropped streams: %d of %d", total, len(result.Streams))
	}
	if len(report.Video) != 1 || len(report.Audio) != 2 || len(report.Other) != 3 {
		t.Fatalf("unexpected bucket sizes: v=%d a=%d o=%d", len(report.Video), len(report.Audio), len(report.Other))
	}
	if report.Audio[0]["index"] != 1 || report.Audio[1]["index"] != 2 {
		t.Fatalf("audio bucket out of order: %v", report.Audio)
	}
	if report.Other[0]["index"] != 3 || report.Other[2]["index"] != 5 {
		t.Fatalf("other bucket out of order: %v", report.Other)
	}
}

func TestClassifyBucketsAreViews(t *testing.T) {
	result := sampleResult()
	report := result.Classify()

	report.Audio[0]["marker"] = "touched"
	if result.Streams[1]["marker"] != "touched" {
		t.Fatal("bucket entry is a copy, expected a view of the original stream")
	}
}

func TestAnnotatePathPrefersProbedFilename(t *testing.T) {
	report := sampleResult().Classify()
	report.AnnotatePath("ignored-input.mkv")

	path, _ := report.Format["path"].(string)
	if !filepath.IsAbs(path) {
		t.Fatalf("expected absolute path, got %q", path)
	}
	if filepath.Base(path) != "clip.mkv" {
		t.Fatalf("expected path from probed filename, got %q", path)
	}
	if report.Format["name"] != "clip.mkv" {
		t.Fatalf("unexpected name: %v", report.Format["name"])
	}
}

func TestAnnotatePathFallsBackToInput(t *testing.T) {
	report := Result{Format: map[string]any{}}.Classify()
	report.AnnotatePath("videos/input.mkv")

	if report.Format["name"] != "input.mkv" {
		t.Fatalf("unexpected name: %v", report.Format["name"])
	}
}

func TestDeclaredStreamCount(t *testing.T) {
	result := sampleResult()
	if declared, ok := result.DeclaredStreamCount(); !ok || declared != 3 {
		t.Fatalf("unexpected declared count: %d %v", declared, ok)
	}

	result.Format["nb_streams"] = "2"
	if declared, ok := result.DeclaredStreamCount(); !ok || declared != 2 {
		t.Fatalf("string nb_streams should parse: %d %v", declared, ok)
	}

	delete(result.Format, "nb_streams")
	if _, ok := result.DeclaredStreamCount(); ok {
		t.Fatal("expected ok=false when nb_streams is absent")
	}
}
