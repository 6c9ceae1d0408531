package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Recognizer  RecognizerConfig  `yaml:"recognizer"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	Watch       bool              `yaml:"watch"`
}

type RecognizerConfig struct {
	Engine  string        `yaml:"engine"` // auto, funasr, or whisper
	FunASR  FunASRConfig  `yaml:"funasr"`
	Whisper WhisperConfig `yaml:"whisper"`
}

// FunASRConfig points at a helper command that runs FunASR Paraformer and
// prints the recognized segments as JSON on stdout.
type FunASRConfig struct {
	Python string `yaml:"python"`
	Script string `yaml:"script"`
	Model  string `yaml:"model"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelPath  string `yaml:"model_path"`
	Language   string `yaml:"language"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ProbePath  string `yaml:"probe_path"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

// Load reads and validates a yaml configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	switch c.Recognizer.Engine {
	case "", "auto":
		c.Recognizer.Engine = "auto"
	case "funasr":
		if c.Recognizer.FunASR.Script == "" {
			return fmt.Errorf("recognizer.funasr.script is required when engine is funasr")
		}
	case "whisper":
		if c.Recognizer.Whisper.BinaryPath == "" {
			return fmt.Errorf("recognizer.whisper.binary_path is required when engine is whisper")
		}
		if c.Recognizer.Whisper.ModelPath == "" {
			return fmt.Errorf("recognizer.whisper.model_path is required when engine is whisper")
		}
	default:
		return fmt.Errorf("recognizer.engine must be auto, funasr, or whisper")
	}

	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.Recognizer.FunASR.Python == "" {
		c.Recognizer.FunASR.Python = "python3"
	}
	if c.Recognizer.FunASR.Model == "" {
		c.Recognizer.FunASR.Model = "paraformer-zh"
	}
	if c.Recognizer.Whisper.Language == "" {
		c.Recognizer.Whisper.Language = "zh"
	}
	if c.Recognizer.Whisper.Threads == 0 {
		c.Recognizer.Whisper.Threads = 8
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
