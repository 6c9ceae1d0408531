package textproc

import "github.com/tantran-dev/vidscribe/internal/transcript"

// Clean normalizes every recognition segment in order and drops the ones
// whose text normalizes to nothing. Timestamps pass through unchanged; this
// stage never reorders or merges segments.
func Clean(segments []transcript.Segment) []transcript.Segment {
	cleaned := make([]transcript.Segment, 0, len(segments))

	for _, seg := range segments {
		text := Normalize(seg.Text)
		if text == "" {
			continue
		}
		cleaned = append(cleaned, transcript.Segment{
			Text:  text,
			Start: seg.Start,
			End:   seg.End,
		})
	}

	return cleaned
}
