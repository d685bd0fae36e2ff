// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"io"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config describes where and at which levels logs are emitted.
type Config struct {
	// DisplayLevel is the lowest level written to the display writer.
	DisplayLevel Level `json:"displayLevel"`
	// LogLevel is the lowest level written to [File].
	LogLevel Level `json:"logLevel"`

	// File is the path of the rotating log file. Empty disables file logging.
	File string `json:"file"`
	// MaxSize is the size, in megabytes, at which the log file is rotated.
	MaxSize int `json:"maxSize"`
	// MaxFiles is the number of rotated files to keep.
	MaxFiles int `json:"maxFiles"`
	// MaxAge is the number of days to keep rotated files.
	MaxAge int `json:"maxAge"`
	// Compress rotated files with gzip.
	Compress bool `json:"compress"`
}

func DefaultConfig() Config {
	return Config{
		DisplayLevel: Info,
		LogLevel:     Debug,
		MaxSize:      8,
		MaxFiles:     7,
		MaxAge:       7,
	}
}

// New builds a logger that displays entries on [display] and, if configured,
// mirrors them as JSON into a rotating file.
func New(prefix string, config Config, display io.WriteCloser) Logger {
	cores := []WrappedCore{
		NewWrappedCore(config.DisplayLevel, display, ConsoleEncoder()),
	}
	if config.File != "" {
		file := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxFiles,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
		fileCore := NewWrappedCore(config.LogLevel, file, JSONEncoder())
		// Raw writes through the logger only go to the display.
		fileCore.WriterDisabled = true
		cores = append(cores, fileCore)
	}
	return NewLogger(prefix, cores...)
}

func ConsoleEncoder() zapcore.Encoder {
	config := newEncoderConfig()
	config.EncodeLevel = levelEncoder
	return zapcore.NewConsoleEncoder(config)
}

func JSONEncoder() zapcore.Encoder {
	config := newEncoderConfig()
	config.EncodeLevel = levelEncoder
	return zapcore.NewJSONEncoder(config)
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[01-02|15:04:05.000]"))
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}
