package recognizer

import (
	"fmt"
	"os"

	"github.com/tantran-dev/vidscribe/internal/config"
	"github.com/tantran-dev/vidscribe/internal/logger"
	"github.com/tantran-dev/vidscribe/pkg/executor"
)

// New selects a recognition engine. Engine "auto" prefers FunASR (Paraformer
// is tuned for Chinese) and falls back to whisper.cpp when the helper is not
// installed, mirroring the usual funasr-then-whisper setup.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) (Recognizer, error) {
	rc := cfg.Recognizer

	switch rc.Engine {
	case "funasr":
		return newFunASR(rc.FunASR, cfg.FFmpeg.ProbePath, exec, log), nil
	case "whisper":
		return newWhisper(rc.Whisper, exec, log), nil
	}

	if funasrAvailable(rc.FunASR, exec) {
		return newFunASR(rc.FunASR, cfg.FFmpeg.ProbePath, exec, log), nil
	}
	if whisperAvailable(rc.Whisper, exec) {
		return newWhisper(rc.Whisper, exec, log), nil
	}

	return nil, fmt.Errorf("no speech recognition engine available: configure recognizer.funasr.script or recognizer.whisper.binary_path")
}

func funasrAvailable(cfg config.FunASRConfig, exec executor.Executor) bool {
	if cfg.Script == "" {
		return false
	}
	if _, err := os.Stat(cfg.Script); err != nil {
		return false
	}
	_, err := exec.LookPath(cfg.Python)
	return err == nil
}

func whisperAvailable(cfg config.WhisperConfig, exec executor.Executor) bool {
	if cfg.BinaryPath == "" || cfg.ModelPath == "" {
		return false
	}
	_, err := exec.LookPath(cfg.BinaryPath)
	return err == nil
}
