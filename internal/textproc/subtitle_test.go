package textproc

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/tantran-dev/vidscribe/internal/transcript"
)

const (
	sentenceA = "今天我们来讲第一个要点。" // 12 runes
	sentenceB = "接着我们再讲第二个要点。" // 12 runes
	sentenceC = "最后我们总结第三个要点。" // 12 runes
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSubtitleCuesShortSegment(t *testing.T) {
	segments := []transcript.Segment{
		{Text: "大家好今天天气很好。", Start: 0.0, End: 4.0},
	}

	cues := SubtitleCues(segments)
	if len(cues) != 1 {
		t.Fatalf("got %d cues, want 1", len(cues))
	}
	if cues[0].Text != segments[0].Text || cues[0].Start != 0.0 || cues[0].End != 4.0 {
		t.Errorf("cue = %+v, want segment passed through unchanged", cues[0])
	}
}

func TestSubtitleCuesSplitsLongSegment(t *testing.T) {
	text := sentenceA + sentenceB + sentenceC // 36 runes
	seg := transcript.Segment{Text: text, Start: 10.0, End: 20.0}

	cues := SubtitleCues([]transcript.Segment{seg})
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}

	// Greedy packing: A+B fit in 24 runes, C starts a new cue.
	if cues[0].Text != sentenceA+sentenceB {
		t.Errorf("cue 0 text = %q, want %q", cues[0].Text, sentenceA+sentenceB)
	}
	if cues[1].Text != sentenceC {
		t.Errorf("cue 1 text = %q, want %q", cues[1].Text, sentenceC)
	}

	// Proportional timing: 24 of 36 runes over a 10s span.
	wantMid := 10.0 + 10.0*24.0/36.0
	if !approx(cues[0].Start, 10.0) {
		t.Errorf("cue 0 start = %v, want 10.0", cues[0].Start)
	}
	if !approx(cues[0].End, wantMid) {
		t.Errorf("cue 0 end = %v, want %v", cues[0].End, wantMid)
	}
	if !approx(cues[1].Start, wantMid) {
		t.Errorf("cue 1 start = %v, want %v", cues[1].Start, wantMid)
	}
	if cues[1].End != 20.0 {
		t.Errorf("cue 1 end = %v, want exactly segment end", cues[1].End)
	}
}

func TestSubtitleCuesContinuity(t *testing.T) {
	seg := transcript.Segment{
		Text:  sentenceA + sentenceB + sentenceC + sentenceA + sentenceB,
		Start: 3.5,
		End:   33.5,
	}

	cues := SubtitleCues([]transcript.Segment{seg})
	if len(cues) < 2 {
		t.Fatalf("got %d cues, want a split", len(cues))
	}

	if !approx(cues[0].Start, seg.Start) {
		t.Errorf("first cue start = %v, want %v", cues[0].Start, seg.Start)
	}
	if cues[len(cues)-1].End != seg.End {
		t.Errorf("last cue end = %v, want %v", cues[len(cues)-1].End, seg.End)
	}
	for i := 0; i < len(cues)-1; i++ {
		if !approx(cues[i].End, cues[i+1].Start) {
			t.Errorf("gap between cue %d end (%v) and cue %d start (%v)",
				i, cues[i].End, i+1, cues[i+1].Start)
		}
	}
}

func TestSubtitleCuesOverlongSentence(t *testing.T) {
	long := strings.Repeat("讲", 35) + "。"
	seg := transcript.Segment{Text: long + "完了。", Start: 0.0, End: 8.0}

	cues := SubtitleCues([]transcript.Segment{seg})
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	if cues[0].Text != long {
		t.Errorf("overlong sentence was not emitted whole: %q", cues[0].Text)
	}
	if utf8.RuneCountInString(cues[0].Text) <= maxCueChars {
		t.Errorf("test sentence should exceed the cue limit")
	}
	if cues[1].Text != "完了。" {
		t.Errorf("cue 1 text = %q, want %q", cues[1].Text, "完了。")
	}
}

func TestSubtitleCuesZeroSpanUsesFloorDuration(t *testing.T) {
	seg := transcript.Segment{Text: sentenceA + sentenceB + sentenceC, Start: 0.0, End: 0.0}

	cues := SubtitleCues([]transcript.Segment{seg})
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	// With a zero span the proportion math falls back to a 1s duration.
	if !approx(cues[0].End, 24.0/36.0) {
		t.Errorf("cue 0 end = %v, want %v", cues[0].End, 24.0/36.0)
	}
	if cues[1].End != 0.0 {
		t.Errorf("last cue end = %v, want pinned to segment end", cues[1].End)
	}
}

func TestSubtitleCuesEmptyInput(t *testing.T) {
	if cues := SubtitleCues(nil); len(cues) != 0 {
		t.Errorf("SubtitleCues(nil) = %v, want empty", cues)
	}
}

func TestSubtitleCuesIndependentSegments(t *testing.T) {
	segments := []transcript.Segment{
		{Text: "第一段。", Start: 0.0, End: 2.0},
		{Text: "第二段。", Start: 1.5, End: 3.0}, // overlaps the first, kept as-is
	}

	cues := SubtitleCues(segments)
	if len(cues) != 2 {
		t.Fatalf("got %d cues, want 2", len(cues))
	}
	if cues[1].Start != 1.5 || cues[1].End != 3.0 {
		t.Errorf("overlapping segment was altered: %+v", cues[1])
	}
}
