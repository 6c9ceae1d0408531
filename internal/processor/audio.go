package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// extractAudio pulls the audio track out of a video as 16kHz mono PCM WAV,
// the input format both recognition engines expect.
func (p *implProcessor) extractAudio(ctx context.Context, videoPath string) (string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	videoName := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	audioPath := filepath.Join(p.cfg.Paths.Temp, videoName+"_audio.wav")

	p.logger.Info(ctx, "Extracting audio: %s", videoPath)

	args := []string{
		"-i", videoPath,
		"-vn", // No video
		"-ar", "16000", // 16kHz sample rate
		"-ac", "1", // Mono
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}
