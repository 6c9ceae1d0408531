package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid auto config",
			config: Config{
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: false,
		},
		{
			name: "missing input path",
			config: Config{
				Paths: PathsConfig{
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "funasr engine without script",
			config: Config{
				Recognizer: RecognizerConfig{Engine: "funasr"},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "whisper engine without model",
			config: Config{
				Recognizer: RecognizerConfig{
					Engine:  "whisper",
					Whisper: WhisperConfig{BinaryPath: "./whisper-cli"},
				},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
		{
			name: "unknown engine",
			config: Config{
				Recognizer: RecognizerConfig{Engine: "deepgram"},
				Paths: PathsConfig{
					Input:  "data/input",
					Output: "data/output",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Recognizer.Engine != "auto" {
		t.Errorf("Engine = %v, want auto", cfg.Recognizer.Engine)
	}
	if cfg.FFmpeg.BinaryPath != "ffmpeg" || cfg.FFmpeg.ProbePath != "ffprobe" {
		t.Errorf("ffmpeg defaults not applied: %+v", cfg.FFmpeg)
	}
	if cfg.Recognizer.Whisper.Language != "zh" {
		t.Errorf("Language = %v, want zh", cfg.Recognizer.Whisper.Language)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
recognizer:
  engine: "whisper"
  whisper:
    binary_path: "./whisper-cli"
    model_path: "models/ggml-medium.bin"
    language: "zh"

paths:
  input: "input_videos"
  output: "output"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Recognizer.Whisper.ModelPath != "models/ggml-medium.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Recognizer.Whisper.ModelPath, "models/ggml-medium.bin")
	}
	if cfg.Paths.Input != "input_videos" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "input_videos")
	}
	if cfg.Paths.Temp == "" {
		t.Error("Temp default not applied by Load()")
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
