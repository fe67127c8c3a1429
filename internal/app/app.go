package app

import (
	"go.uber.org/zap"

	"cointransfer/internal/logging"
)

// App is one CLI invocation: its logger and its wired services.
type App struct {
	Config  Config
	Wire    *Wire
	Log     *zap.Logger
	LogPath string // empty when file logging is disabled
}

// New builds the logger and the dependency graph for cfg.
func New(cfg Config) (*App, error) {
	log, path, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Dir:    cfg.LogDir,
		Prefix: "cli-tool",
	})
	if err != nil {
		return nil, err
	}
	w, err := NewWire(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}
	return &App{Config: cfg, Wire: w, Log: log, LogPath: path}, nil
}

// Close flushes the logger.
func (a *App) Close() {
	_ = a.Log.Sync()
}
