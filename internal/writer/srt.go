package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tantran-dev/vidscribe/internal/transcript"
)

// WriteSRT serializes cues as a SubRip file: 1-based sequence number, time
// range, text, blank line. Cues with empty text are skipped without
// consuming a number.
func WriteSRT(cues []transcript.Cue, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var b strings.Builder
	index := 1
	for _, cue := range cues {
		text := strings.TrimSpace(cue.Text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s\n\n",
			index, FormatTimestamp(cue.Start), FormatTimestamp(cue.End), text)
		index++
	}

	if err := os.WriteFile(outputPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write srt file: %w", err)
	}

	return nil
}

// FormatTimestamp renders seconds as the SRT HH:MM:SS,mmm form.
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	whole := int64(seconds)
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60
	millis := int64((seconds - float64(whole)) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
