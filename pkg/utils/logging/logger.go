package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLogsDir = "logs"

// InitLogger builds the CLI logger: colored console output at Info and a JSON
// log file at Debug under logs/<env>_<timestamp>.log
func InitLogger(env string, verbose bool) (*zap.Logger, error) {
	logFile, err := openLogFile(defaultLogsDir, env, time.Now())
	if err != nil {
		return nil, err
	}

	consoleLevel := zapcore.InfoLevel
	if verbose {
		consoleLevel = zapcore.DebugLevel
	}

	return NewLogger(os.Stdout, consoleLevel, logFile), nil
}

// NewLogger tees a console core writing to console at consoleLevel with a
// JSON core writing every Debug+ entry to file
func NewLogger(console io.Writer, consoleLevel zapcore.Level, file io.Writer) *zap.Logger {
	consoleEncoderConfig := zap.NewDevelopmentEncoderConfig()
	consoleEncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	consoleEncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	fileEncoderConfig := zap.NewProductionEncoderConfig()
	fileEncoderConfig.TimeKey = "timestamp"
	fileEncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleEncoderConfig), zapcore.AddSync(console), consoleLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoderConfig), zapcore.AddSync(file), zapcore.DebugLevel),
	)

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

func openLogFile(dir, env string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	if env == "" {
		env = "default"
	}
	name := filepath.Join(dir, fmt.Sprintf("%s_%s.log", env, now.Format("2006-01-02_15-04-05")))

	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logFile, nil
}
