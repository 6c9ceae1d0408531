package recognizer

import (
	"context"

	"github.com/tantran-dev/vidscribe/internal/transcript"
)

// Recognizer converts an audio file into an ordered sequence of recognized
// speech segments. Implementations wrap external speech-to-text engines and
// must return segments in chronological order.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) ([]transcript.Segment, error)
	Name() string
}
