package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects the logger outputs.
type Config struct {
	// Level is one of debug, info, warn, error.
	Level string
	// Dir holds the log file. Empty disables file logging.
	Dir string
	// Prefix names the log file, e.g. cli-tool.
	Prefix string
	// Console receives human-readable output; nil means os.Stderr.
	Console io.Writer
	// MaxSizeMB bounds one log file before rotation.
	MaxSizeMB int
	// Now stamps the file name; nil means time.Now.
	Now func() time.Time
}

// FileName returns the log file name for the invocation started at t.
func FileName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.log", prefix, t.Format("2006-01-02_15-04-05"))
}

// New builds the logger. The returned path is empty when file logging is
// disabled. Callers must Sync the logger before exit.
func New(cfg Config) (*zap.Logger, string, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, "", fmt.Errorf("log level %q: %w", cfg.Level, err)
	}
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), level),
	}

	var path string
	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
			return nil, "", fmt.Errorf("log dir: %w", err)
		}
		now := time.Now
		if cfg.Now != nil {
			now = cfg.Now
		}
		prefix := cfg.Prefix
		if prefix == "" {
			prefix = "cli-tool"
		}
		maxSize := cfg.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 10
		}
		path = filepath.Join(cfg.Dir, FileName(prefix, now()))
		file := zapcore.AddSync(&lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSize, // megabytes
			MaxBackups: 3,
			LocalTime:  true,
		})
		fileEnc := zap.NewProductionEncoderConfig()
		fileEnc.EncodeTime = zapcore.ISO8601TimeEncoder
		// the file keeps debug detail regardless of the console level
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileEnc), file, zapcore.DebugLevel))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), path, nil
}
