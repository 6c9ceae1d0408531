package summarizer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"
)

const summaryPrompt = `你是一名视频内容分析专家。请根据下面的字幕内容，用中文写一份详细的内容纪要。

要求：
- 以一句话的总标题开头，概括视频主题
- 按出现顺序列出全部要点
- 对每个要点做简要展开，保留重要的提示和注意事项
- 专业术语保留原文并在括号中注明
- 使用 markdown 格式：标题、列表、重点加粗
- 结尾如有需要强调的内容，加一节"注意事项"

字幕内容：
---
%s
---`

// SummarizeAll walks the output tree for generated SRT files, asks Gemini
// for a summary of each, and writes a markdown file next to the SRT.
// Videos that already have a summary are skipped.
func (s *implSummarizer) SummarizeAll(ctx context.Context, outputDir string) error {
	srtFiles, err := s.discoverSRTFiles(outputDir)
	if err != nil {
		return fmt.Errorf("discover SRT files: %w", err)
	}

	if len(srtFiles) == 0 {
		s.logger.Info(ctx, "No SRT files found in %s", outputDir)
		return nil
	}

	s.logger.Info(ctx, "Found %d SRT files to summarize", len(srtFiles))

	successCount := 0
	failCount := 0

	for i, srtPath := range srtFiles {
		videoName := strings.TrimSuffix(filepath.Base(srtPath), ".srt")
		mdPath := strings.TrimSuffix(srtPath, ".srt") + ".md"

		if _, err := os.Stat(mdPath); err == nil {
			s.logger.Debug(ctx, "Summary already exists, skipping: %s", mdPath)
			continue
		}

		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(srtFiles), videoName)

		content, err := os.ReadFile(srtPath)
		if err != nil {
			s.logger.Error(ctx, "Failed to read %s: %v", srtPath, err)
			failCount++
			continue
		}

		if len(strings.TrimSpace(string(content))) == 0 {
			s.logger.Warn(ctx, "Skipping empty subtitle file: %s", srtPath)
			continue
		}

		summary, err := s.callGemini(ctx, string(content))
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", videoName, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			videoName,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			failCount++
			continue
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", videoName, mdPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	return nil
}

// callGemini sends the transcript to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

// discoverSRTFiles walks recursively because each video gets its own
// output subfolder.
func (s *implSummarizer) discoverSRTFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) == ".srt" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
