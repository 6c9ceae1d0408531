package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tantran-dev/vidscribe/internal/textproc"
	"github.com/tantran-dev/vidscribe/internal/writer"
)

// Process orchestrates the pipeline for one video: extract audio, run the
// recognition engine, post-process the text, and write the document and
// subtitle files into a per-video output folder.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	startTime := time.Now()
	videoName := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting video processing: %s", videoPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Extract audio
	audioPath, err := p.extractAudio(ctx, videoPath)
	if err != nil {
		return fmt.Errorf("extract audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, audioPath)

	// Step 2: Speech recognition
	segments, err := p.recognizer.Recognize(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("recognize speech: %w", err)
	}
	p.logger.Info(ctx, "Recognition produced %d segments", len(segments))

	// Step 3: Text post-processing
	cleaned := textproc.Clean(segments)
	if len(cleaned) == 0 {
		p.logger.Warn(ctx, "No speech content after cleanup: %s", videoPath)
	}
	document := textproc.Document(cleaned)
	cues := textproc.SubtitleCues(cleaned)

	// Step 4: Write output files
	outputDir := filepath.Join(p.cfg.Paths.Output, videoName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	docxPath := filepath.Join(outputDir, videoName+".docx")
	srtPath := filepath.Join(outputDir, videoName+".srt")

	if err := writer.WriteDocx(videoName, document, docxPath); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := writer.WriteSRT(cues, srtPath); err != nil {
		return fmt.Errorf("write subtitles: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Document: %s", docxPath)
	p.logger.Info(ctx, "Subtitles: %s (%d cues)", srtPath, len(cues))
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
