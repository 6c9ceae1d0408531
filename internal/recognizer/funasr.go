package recognizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tantran-dev/vidscribe/internal/config"
	"github.com/tantran-dev/vidscribe/internal/logger"
	"github.com/tantran-dev/vidscribe/internal/transcript"
	"github.com/tantran-dev/vidscribe/pkg/executor"
)

// funasrRecognizer shells out to a FunASR helper script. The helper must
// print a JSON array of segment objects to stdout, either
// {"text","start","end"} with times in seconds or FunASR's native
// {"text","timestamp":[[ms,ms],...]} word-timestamp shape.
type funasrRecognizer struct {
	cfg      config.FunASRConfig
	probe    string
	executor executor.Executor
	logger   logger.Logger
}

func newFunASR(cfg config.FunASRConfig, probe string, exec executor.Executor, log logger.Logger) Recognizer {
	return &funasrRecognizer{
		cfg:      cfg,
		probe:    probe,
		executor: exec,
		logger:   log,
	}
}

func (r *funasrRecognizer) Name() string { return "funasr" }

func (r *funasrRecognizer) Recognize(ctx context.Context, audioPath string) ([]transcript.Segment, error) {
	r.logger.Info(ctx, "Recognizing with FunASR (%s): %s", r.cfg.Model, audioPath)

	out, err := r.executor.Execute(ctx, r.cfg.Python, r.cfg.Script,
		"--model", r.cfg.Model,
		"--audio", audioPath,
	)
	if err != nil {
		return nil, fmt.Errorf("run funasr helper: %w", err)
	}

	segments, err := parseFunASROutput([]byte(out))
	if err != nil {
		return nil, fmt.Errorf("parse funasr output: %w", err)
	}

	if len(segments) == 0 {
		// No speech detected. A single placeholder segment keeps the
		// downstream pipeline total over its input.
		return []transcript.Segment{{}}, nil
	}

	// Paraformer without the VAD model returns no timestamps at all; in
	// that case apportion the audio duration evenly across segments.
	if missingTimestamps(segments) {
		dur, err := probeDuration(ctx, r.executor, r.probe, audioPath)
		if err != nil {
			r.logger.Warn(ctx, "Could not probe audio duration, keeping zero timestamps: %v", err)
		} else {
			applyEvenTiming(segments, dur)
		}
	}

	return segments, nil
}

type funasrSegment struct {
	Text      string      `json:"text"`
	Start     float64     `json:"start"`
	End       float64     `json:"end"`
	Timestamp [][]float64 `json:"timestamp"`
}

func parseFunASROutput(data []byte) ([]transcript.Segment, error) {
	// The helper may emit model-loading noise before the payload; the
	// segment array is the first '[' on stdout.
	idx := bytes.IndexByte(data, '[')
	if idx < 0 {
		return nil, fmt.Errorf("no JSON array in helper output")
	}

	var raw []funasrSegment
	if err := json.Unmarshal(data[idx:], &raw); err != nil {
		return nil, fmt.Errorf("decode segments: %w", err)
	}

	segments := make([]transcript.Segment, 0, len(raw))
	for _, item := range raw {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}

		start, end := item.Start, item.End
		if end == 0 && len(item.Timestamp) > 0 {
			// Word-level millisecond pairs; the segment spans the first
			// word's start to the last word's end.
			first := item.Timestamp[0]
			last := item.Timestamp[len(item.Timestamp)-1]
			if len(first) >= 1 {
				start = first[0] / 1000.0
			}
			if len(last) >= 2 {
				end = last[1] / 1000.0
			}
		}

		segments = append(segments, transcript.Segment{Text: text, Start: start, End: end})
	}

	return segments, nil
}
