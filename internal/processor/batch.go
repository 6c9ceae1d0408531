package processor

import (
	"context"
	"sync"
	"sync/atomic"
)

// ProcessAll runs the pipeline over a batch of videos, at most
// performance.max_concurrent at a time. The text pipeline holds no shared
// state, so videos are independent; a failing video is logged and counted,
// never fatal to the batch.
func (p *implProcessor) ProcessAll(ctx context.Context, videoPaths []string) (int, int) {
	sem := newSemaphore(p.cfg.Performance.MaxConcurrent)

	var wg sync.WaitGroup
	var succeeded, failed int64

	for _, videoPath := range videoPaths {
		if err := sem.acquire(ctx); err != nil {
			p.logger.Warn(ctx, "Batch interrupted: %v", err)
			break
		}

		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			defer sem.release()

			if err := p.Process(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				atomic.AddInt64(&failed, 1)
				return
			}
			atomic.AddInt64(&succeeded, 1)
		}(videoPath)
	}

	wg.Wait()
	return int(succeeded), int(failed)
}
