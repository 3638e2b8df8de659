package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSize = 10
	maxBack = 5
	maxAge  = 30
)

// NewLogger writes to the console and, when filePath is set, to a rotated log file.
func NewLogger(filePath, serviceName string) (zerolog.Logger, error) {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	writers := []io.Writer{consoleWriter}

	if filePath != "" {
		fileRotator := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    maxSize, // megabytes
			MaxBackups: maxBack,
			MaxAge:     maxAge, // days
			Compress:   true,
		}
		writers = append(writers, fileRotator)
	}

	multiWriter := zerolog.MultiLevelWriter(writers...)
	logger := zerolog.New(multiWriter).With().
		Timestamp().
		Caller().
		Str("service", serviceName).
		Logger().
		Level(zerolog.DebugLevel)

	logger.Info().
		Str("logsFilePath", filePath).
		Str("serviceName", serviceName).
		Msg("logger initialized")

	return logger, nil
}

// NewStderrLogger is the quiet variant used by command-line tools: warnings and above, stderr only.
func NewStderrLogger(serviceName string) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().
		Timestamp().
		Str("service", serviceName).
		Logger().
		Level(zerolog.WarnLevel)
}
