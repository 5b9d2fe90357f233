package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/npratt/gadgets/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileLogger is a JSON logger backed by a rotating file. It is used while a
// full-screen widget owns the terminal so log lines stay off the display.
type FileLogger struct {
	*slog.Logger
	Path string

	w *lumberjack.Logger
}

// OpenFileLogger prepares a rotating log file at path, creating parent
// directories as needed. The file itself is opened on first write.
func OpenFileLogger(path string, level slog.Leveler, rotation config.LogRotationConfig) (*FileLogger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}
	return &FileLogger{Logger: NewJSONLogger(w, level), Path: path, w: w}, nil
}

// Close flushes and closes the underlying file.
func (l *FileLogger) Close() error {
	return l.w.Close()
}

// NewJSONLogger returns a JSON slog logger writing to w.
func NewJSONLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
