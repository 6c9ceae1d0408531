package textproc

import (
	"strings"
	"unicode/utf8"

	"github.com/tantran-dev/vidscribe/internal/transcript"
)

// maxCueChars is the longest subtitle line that stays readable on screen,
// counted in runes so CJK text is measured per character.
const maxCueChars = 30

// SubtitleCues turns cleaned segments into subtitle cues. Segments within
// the limit become a single cue with their original time span; longer ones
// are split at sentence boundaries with proportionally interpolated timing.
// Segments are handled independently; cues are never merged across them.
func SubtitleCues(segments []transcript.Segment) []transcript.Cue {
	cues := make([]transcript.Cue, 0, len(segments))
	for _, seg := range segments {
		cues = append(cues, splitSegment(seg)...)
	}
	return cues
}

func splitSegment(seg transcript.Segment) []transcript.Cue {
	totalLen := utf8.RuneCountInString(seg.Text)
	if totalLen <= maxCueChars {
		return []transcript.Cue{{Text: seg.Text, Start: seg.Start, End: seg.End}}
	}

	// Zero or negative spans still need a positive duration for the
	// proportion math; one second is the floor.
	duration := seg.End - seg.Start
	if duration < 1.0 {
		duration = 1.0
	}

	var cues []transcript.Cue
	var buf strings.Builder
	bufLen := 0
	cursor := seg.Start

	flush := func() {
		if bufLen == 0 {
			return
		}
		end := cursor + duration*float64(bufLen)/float64(totalLen)
		cues = append(cues, transcript.Cue{Text: buf.String(), Start: cursor, End: end})
		cursor = end
		buf.Reset()
		bufLen = 0
	}

	// Greedy packing: close the buffer whenever the next sentence would
	// push it past the limit. A single sentence longer than the limit is
	// emitted whole rather than truncated.
	for _, frag := range splitSentences(seg.Text) {
		fragLen := utf8.RuneCountInString(frag)
		if bufLen > 0 && bufLen+fragLen > maxCueChars {
			flush()
		}
		buf.WriteString(frag)
		bufLen += fragLen
	}
	flush()

	// The last cue absorbs rounding drift so the segment boundary is exact.
	if len(cues) > 0 {
		cues[len(cues)-1].End = seg.End
	}

	return cues
}
