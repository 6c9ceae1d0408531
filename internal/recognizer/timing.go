package recognizer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tantran-dev/vidscribe/internal/transcript"
	"github.com/tantran-dev/vidscribe/pkg/executor"
)

// missingTimestamps reports whether the engine produced no usable timing.
func missingTimestamps(segments []transcript.Segment) bool {
	for _, seg := range segments {
		if seg.End > 0 {
			return false
		}
	}
	return len(segments) > 0
}

// applyEvenTiming apportions the total audio duration evenly across
// segments. A naive linear fit, but there is no ground truth to do better
// with when the engine returns no timestamps.
func applyEvenTiming(segments []transcript.Segment, duration float64) {
	n := len(segments)
	if n == 0 || duration <= 0 {
		return
	}

	per := duration / float64(n)
	for i := range segments {
		segments[i].Start = float64(i) * per
		segments[i].End = float64(i+1) * per
	}
}

// probeDuration asks ffprobe for the audio duration in seconds.
func probeDuration(ctx context.Context, exec executor.Executor, probe, audioPath string) (float64, error) {
	out, err := exec.Execute(ctx, probe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	dur, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(out), err)
	}

	return dur, nil
}
