package probe

import (
	"strconv"
	"strings"
)

// floatFields are converted from the probe's string encoding to float64.
var floatFields = []string{"duration", "start_time", "bit_rate", "sample_rate"}

// FixNumbers converts numeric-looking string fields in the format block and
// the audio and video streams to real numbers. Other streams are left
// untouched. A value that does not parse (ffprobe uses "N/A" and "unknown"
// for missing data) keeps its original string.
//
// When a stream lacks nb_frames, it is derived from the duration and the
// average frame rate; -1 marks streams where that is not possible.
func (rep Report) FixNumbers() {
	targets := make([]map[string]any, 0, 1+len(rep.Video)+len(rep.Audio))
	targets = append(targets, rep.Format)
	targets = append(targets, rep.Video...)
	targets = append(targets, rep.Audio...)
	for _, entry := range targets {
		fixEntry(entry, rep.Format)
	}
}

func fixEntry(entry, format map[string]any) {
	if value, ok := entry["size"]; ok && value != "unknown" {
		if f, numeric := Number(value); numeric {
			entry["size"] = int64(f)
		}
	}
	for _, key := range floatFields {
		if value, ok := entry[key]; ok {
			if f, numeric := Number(value); numeric {
				entry[key] = f
			}
		}
	}
	fixFrameCount(entry, format)
}

func fixFrameCount(entry, format map[string]any) {
	if value, ok := entry["nb_frames"]; ok {
		if f, numeric := Number(value); numeric {
			entry["nb_frames"] = int64(f)
		}
		return
	}

	duration, ok := Number(entry["duration"])
	if !ok {
		duration, ok = Number(format["duration"])
	}
	if ok {
		if rate, present := entry["avg_frame_rate"].(string); present && rate != "0/0" {
			if fps, valid := parseFrameRate(rate); valid {
				entry["nb_frames"] = duration * fps
				return
			}
		}
	}
	entry["nb_frames"] = -1
}

// parseFrameRate converts ffprobe's "num/den" rational frame rate to frames
// per second. A zero denominator is invalid.
func parseFrameRate(rate string) (float64, bool) {
	if strings.Count(rate, "/") == 1 {
		parts := strings.SplitN(rate, "/", 2)
		num, errN := strconv.ParseFloat(parts[0], 64)
		den, errD := strconv.ParseFloat(parts[1], 64)
		if errN != nil || errD != nil || den == 0 {
			return 0, false
		}
		return num / den, true
	}
	fps, err := strconv.ParseFloat(rate, 64)
	if err != nil {
		return 0, false
	}
	return fps, true
}

// Number interprets a decoded JSON scalar as a float64.
func Number(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
