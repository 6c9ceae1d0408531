package summarizer

import "context"

// Summarizer reads generated SRT files and produces LLM-written markdown
// summaries next to them.
type Summarizer interface {
	SummarizeAll(ctx context.Context, outputDir string) error
}
