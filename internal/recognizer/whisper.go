package recognizer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tantran-dev/vidscribe/internal/config"
	"github.com/tantran-dev/vidscribe/internal/logger"
	"github.com/tantran-dev/vidscribe/internal/transcript"
	"github.com/tantran-dev/vidscribe/pkg/executor"
)

// whisperRecognizer runs the whisper.cpp CLI with JSON output.
type whisperRecognizer struct {
	cfg      config.WhisperConfig
	executor executor.Executor
	logger   logger.Logger
}

func newWhisper(cfg config.WhisperConfig, exec executor.Executor, log logger.Logger) Recognizer {
	return &whisperRecognizer{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

func (r *whisperRecognizer) Name() string { return "whisper" }

func (r *whisperRecognizer) Recognize(ctx context.Context, audioPath string) ([]transcript.Segment, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	r.logger.Info(ctx, "Recognizing with whisper.cpp (%d threads): %s", r.cfg.Threads, audioPath)

	// -oj writes <output-file>.json with per-segment millisecond offsets.
	// Forcing the language prevents hallucinated translations.
	args := []string{
		"-m", r.cfg.ModelPath,
		"-f", audioPath,
		"-oj",
		"-l", r.cfg.Language,
		"-t", strconv.Itoa(r.cfg.Threads),
		"--output-file", outputPrefix,
	}

	if _, err := r.executor.Execute(ctx, r.cfg.BinaryPath, args...); err != nil {
		return nil, fmt.Errorf("whisper transcribe: %w", err)
	}

	jsonPath := outputPrefix + ".json"
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read whisper output: %w", err)
	}
	defer os.Remove(jsonPath)

	segments, err := parseWhisperOutput(data)
	if err != nil {
		return nil, err
	}

	if len(segments) == 0 {
		return []transcript.Segment{{}}, nil
	}

	return segments, nil
}

type whisperOutput struct {
	Transcription []struct {
		Offsets struct {
			From int64 `json:"from"`
			To   int64 `json:"to"`
		} `json:"offsets"`
		Text string `json:"text"`
	} `json:"transcription"`
}

func parseWhisperOutput(data []byte) ([]transcript.Segment, error) {
	var out whisperOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode whisper JSON: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(out.Transcription))
	for _, item := range out.Transcription {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		segments = append(segments, transcript.Segment{
			Text:  text,
			Start: float64(item.Offsets.From) / 1000.0,
			End:   float64(item.Offsets.To) / 1000.0,
		})
	}

	return segments, nil
}
