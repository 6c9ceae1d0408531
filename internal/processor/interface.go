package processor

import "context"

// Processor defines the interface for video processing operations
type Processor interface {
	// Process runs the full pipeline for one video file.
	Process(ctx context.Context, videoPath string) error
	// ProcessAll processes a batch of videos with bounded concurrency.
	// One video's failure never aborts the rest; it returns the counts.
	ProcessAll(ctx context.Context, videoPaths []string) (succeeded, failed int)
}
