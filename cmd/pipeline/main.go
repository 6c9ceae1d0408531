package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/tantran-dev/vidscribe/internal/config"
	"github.com/tantran-dev/vidscribe/internal/logger"
	"github.com/tantran-dev/vidscribe/internal/processor"
	"github.com/tantran-dev/vidscribe/internal/recognizer"
	"github.com/tantran-dev/vidscribe/internal/summarizer"
	"github.com/tantran-dev/vidscribe/internal/watcher"
	"github.com/tantran-dev/vidscribe/pkg/executor"
)

func main() {
	ctx := context.Background()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Chinese Video Transcription Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()

	rec, err := recognizer.New(cfg, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to select recognition engine: %v", err)
		os.Exit(1)
	}
	log.Info(ctx, "Recognition engine: %s", rec.Name())

	proc := processor.New(cfg, exec, rec, log)

	// Batch pass over whatever is already in the input directory.
	videos, err := processor.FindVideos(cfg.Paths.Input)
	if err != nil {
		log.Error(ctx, "Failed to scan input directory: %v", err)
		os.Exit(1)
	}

	if len(videos) == 0 {
		log.Info(ctx, "No videos found in %s", cfg.Paths.Input)
	} else {
		log.Info(ctx, "Found %d videos to process", len(videos))
		succeeded, failed := proc.ProcessAll(ctx, videos)
		log.Info(ctx, "Batch complete: %d succeeded, %d failed", succeeded, failed)
	}

	if len(cfg.Gemini.APIKeys) > 0 {
		sum := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
		if err := sum.SummarizeAll(ctx, cfg.Paths.Output); err != nil {
			log.Warn(ctx, "Summarization failed: %v", err)
		}
	}

	if !cfg.Watch {
		log.Info(ctx, "All output files saved to: %s", cfg.Paths.Output)
		return
	}

	// Watch mode: keep running and pick up new videos as they arrive.
	w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Watching for new videos: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
