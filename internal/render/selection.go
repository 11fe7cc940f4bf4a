package render

// Selection controls which stream buckets appear in rendered output.
// A deselected bucket is omitted entirely, not rendered as empty.
type Selection struct {
	Audio bool
	Video bool
	Other bool
}

// AllStreams selects every bucket.
func AllStreams() Selection {
	return Selection{Audio: true, Video: true, Other: true}
}

// ParseSelection interprets stream-selector letters: "a" audio, "v" video,
// "o" other. Letters outside the set select nothing, so "x" deselects all
// buckets.
func ParseSelection(letters string) Selection {
	var sel Selection
	for _, letter := range letters {
		switch letter {
		case 'a':
			sel.Audio = true
		case 'v':
			sel.Video = true
		case 'o':
			sel.Other = true
		}
	}
	return sel
}
