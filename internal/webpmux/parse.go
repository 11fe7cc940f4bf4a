package webpmux

import (
	"log/slog"
	"strconv"
	"strings"

	"avtool/internal/logging"
)

// Info is the parsed webpmux -info report.
type Info struct {
	Width           int              `json:"width"`
	Height          int              `json:"height"`
	Features        []string         `json:"features"`
	BackgroundColor uint32           `json:"background_color"`
	LoopCount       int              `json:"loop_count"`
	FrameCount      int              `json:"frame_count"`
	DurationMS      int              `json:"duration_ms"`
	Frames          []map[string]any `json:"frames"`
	XMPSize         string           `json:"xmp_size,omitempty"`
}

// Parse interprets webpmux -info text output. The format is line oriented:
// "key: value" pairs, occasionally two pairs on one line, a frame-table
// header introduced by "No.:", and numbered frame rows matching that
// header. Lines that do not fit are logged and skipped rather than failing
// the whole report.
func Parse(text string, logger *slog.Logger) Info {
	if logger == nil {
		logger = logging.NewNop()
	}

	info := Info{
		Features: []string{},
		Frames:   []map[string]any{},
	}
	var frameHeaders []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch strings.Count(line, ":") {
		case 0:
			if strings.TrimSpace(line) != "No features present." {
				logger.Warn("unparseable webpmux line", logging.String("line", line))
			}
		case 1:
			key, value, _ := strings.Cut(line, ":")
			parsePair(&info, &frameHeaders, strings.TrimSpace(key), strings.TrimSpace(value), logger)
		case 2:
			// Two "key : value" pairs separated by runs of spaces.
			for _, field := range strings.Split(line, "  ") {
				if !strings.Contains(field, ":") {
					continue
				}
				key, value, _ := strings.Cut(field, ":")
				parsePair(&info, &frameHeaders, strings.TrimSpace(key), strings.TrimSpace(value), logger)
			}
		default:
			logger.Warn("unparseable webpmux line", logging.String("line", line))
		}
	}

	if info.FrameCount != len(info.Frames) {
		logger.Warn("inconsistent webp frame count",
			logging.Int("declared", info.FrameCount),
			logging.Int("parsed", len(info.Frames)))
	}
	return info
}

func parsePair(info *Info, frameHeaders *[]string, key, value string, logger *slog.Logger) {
	key = strings.ToLower(key)
	if value == "" {
		logger.Warn("webpmux key has no value", logging.String("key", key))
		return
	}
	switch {
	case key == "canvas size":
		width, height, ok := strings.Cut(value, " x ")
		if !ok {
			logger.Warn("bad canvas size", logging.String("value", value))
			return
		}
		info.Width, _ = strconv.Atoi(strings.TrimSpace(width))
		info.Height, _ = strconv.Atoi(strings.TrimSpace(height))
	case key == "features present":
		info.Features = strings.Fields(value)
	case key == "background color":
		hex := strings.TrimPrefix(value, "0x")
		color, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			logger.Warn("bad background color", logging.String("value", value))
			return
		}
		info.BackgroundColor = uint32(color)
	case key == "loop count":
		info.LoopCount, _ = strconv.Atoi(value)
	case key == "number of frames":
		info.FrameCount, _ = strconv.Atoi(value)
	case key == "no.":
		*frameHeaders = strings.Fields(value)
	case isDigits(key):
		parseFrameRow(info, *frameHeaders, key, value, logger)
	case key == "size of the xmp metadata":
		info.XMPSize = value
	default:
		logger.Warn("unrecognized webpmux key",
			logging.String("key", key), logging.String("value", value))
	}
}

func parseFrameRow(info *Info, headers []string, key, value string, logger *slog.Logger) {
	values := strings.Fields(value)
	if len(values) != len(headers) {
		logger.Warn("inconsistent webp frame row", logging.String("row", value))
		return
	}
	num, _ := strconv.Atoi(key)
	frame := map[string]any{"num": num}
	for i, header := range headers {
		if n, err := strconv.Atoi(values[i]); err == nil {
			frame[header] = n
		} else {
			frame[header] = values[i]
		}
	}
	if duration, ok := frame["duration"].(int); ok {
		info.DurationMS += duration
	}
	info.Frames = append(info.Frames, frame)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
