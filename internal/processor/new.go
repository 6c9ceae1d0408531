package processor

import (
	"github.com/tantran-dev/vidscribe/internal/config"
	"github.com/tantran-dev/vidscribe/internal/logger"
	"github.com/tantran-dev/vidscribe/internal/recognizer"
	"github.com/tantran-dev/vidscribe/pkg/executor"
)

type implProcessor struct {
	cfg        *config.Config
	executor   executor.Executor
	recognizer recognizer.Recognizer
	logger     logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, rec recognizer.Recognizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:        cfg,
		executor:   exec,
		recognizer: rec,
		logger:     log,
	}
}
