package webpmux

import (
	"bytes"
	"strings"
	"testing"
)

const animatedInfo = `Canvas size: 400 x 300
Features present: animation transparency
Background color : 0xFFFFFFFF  Loop Count : 0
Number of frames: 3
No.: width height alpha x_offset y_offset duration dispose blend image_size compression
  1:   400    300    no        0        0      100     none    no       5178 lossless
  2:   400    300    no        0        0      100     none    no       5312 lossless
  3:   400    300   yes        0        0      150     none   yes       4990 lossy
`

const staticInfo = `Canvas size: 64 x 64
No features present.
Number of frames: 1
No.: width height alpha x_offset y_offset duration dispose blend image_size compression
  1:    64     64    no        0        0        0     none    no        812 lossy
`

func TestParseAnimated(t *testing.T) {
	info := Parse(animatedInfo, nil)

	if info.Width != 400 || info.Height != 300 {
		t.Fatalf("unexpected canvas size: %dx%d", info.Width, info.Height)
	}
	if len(info.Features) != 2 || info.Features[0] != "animation" {
		t.Fatalf("unexpected features: %v", info.Features)
	}
	if info.BackgroundColor != 0xFFFFFFFF {
		t.Fatalf("unexpected background color: %#x", info.BackgroundColor)
	}
	if info.LoopCount != 0 {
		t.Fatalf("unexpected loop count: %d", info.LoopCount)
	}
	if info.FrameCount != 3 || len(info.Frames) != 3 {
		t.Fatalf("unexpected frame count: declared=%d parsed=%d", info.FrameCount, len(info.Frames))
	}
	if info.DurationMS != 350 {
		t.Fatalf("unexpected total duration: %d", info.DurationMS)
	}

	first := info.Frames[0]
	if first["num"] != 1 || first["width"] != 400 || first["duration"] != 100 {
		t.Fatalf("unexpected first frame: %v", first)
	}
	if first["compression"] != "lossless" {
		t.Fatalf("non-numeric cell should stay a string: %v", first["compression"])
	}
	third := info.Frames[2]
	if third["alpha"] != "yes" || third["blend"] != "yes" {
		t.Fatalf("unexpected third frame: %v", third)
	}
}

func TestParseStatic(t *testing.T) {
	info := Parse(staticInfo, nil)

	if info.Width != 64 || info.Height != 64 {
		t.Fatalf("unexpected canvas size: %dx%d", info.Width, info.Height)
	}
	if len(info.Features) != 0 {
		t.Fatalf("expected no features: %v", info.Features)
	}
	if info.FrameCount != 1 || len(info.Frames) != 1 {
		t.Fatalf("unexpected frame count: %d/%d", info.FrameCount, len(info.Frames))
	}
	if info.DurationMS != 0 {
		t.Fatalf("static image should have zero duration: %d", info.DurationMS)
	}
}

func TestParseTolerantOfGarbageRows(t *testing.T) {
	garbled := animatedInfo + "  4:   only two\nnot a real line\n"
	info := Parse(garbled, nil)
	if len(info.Frames) != 3 {
		t.Fatalf("garbled rows must be skipped, got %d frames", len(info.Frames))
	}
}

func TestDescribe(t *testing.T) {
	var buf bytes.Buffer
	if err := Describe(&buf, "anim.webp", Parse(animatedInfo, nil)); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if buf.String() != "anim.webp: 3 frames\nSize: 400x300\n" {
		t.Fatalf("unexpected describe output: %q", buf.String())
	}

	buf.Reset()
	if err := Describe(&buf, "icon.webp", Parse(staticInfo, nil)); err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "icon.webp: 1 frame\n") {
		t.Fatalf("singular frame expected: %q", buf.String())
	}
}
