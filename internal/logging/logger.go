package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/unkn0wn-root/curseclient/internal/config"
)

const (
	appName = "curseclient"
	// maxLogSize is the size at which the log file is rotated (5 MB).
	maxLogSize    = 5 * 1024 * 1024
	maxLogBackups = 3
)

// New builds the process logger. The terminal belongs to the UI, so logs only
// ever go to a file; when logging is disabled every record is discarded. The
// returned closer releases the log file and is never nil.
func New(cfg config.LogSettings) (*slog.Logger, io.Closer, error) {
	if !cfg.Enabled {
		return Nop(), nopCloser{}, nil
	}

	logPath := strings.TrimSpace(cfg.Path)
	if logPath == "" {
		path, err := defaultLogPath()
		if err != nil {
			return Nop(), nopCloser{}, err
		}
		logPath = path
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return Nop(), nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}
	if err := rotateIfNeeded(logPath); err != nil {
		return Nop(), nopCloser{}, fmt.Errorf("rotate log file: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Nop(), nopCloser{}, fmt.Errorf("open log file %s: %w", logPath, err)
	}

	level := ParseLevel(cfg.Level)
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	})
	return slog.New(handler), file, nil
}

// Nop returns a logger that drops everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a settings level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// rotateIfNeeded shifts log -> log.1 -> log.2 ... once the file outgrows
// maxLogSize, dropping the oldest backup.
func rotateIfNeeded(logPath string) error {
	info, err := os.Stat(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if info.Size() < maxLogSize {
		return nil
	}

	for i := maxLogBackups; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", logPath, i)
		if i == maxLogBackups {
			_ = os.Remove(src)
			continue
		}
		_ = os.Rename(src, fmt.Sprintf("%s.%d", logPath, i+1))
	}
	return os.Rename(logPath, logPath+".1")
}

func defaultLogPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", appName, appName+".log"), nil
	case "windows":
		return filepath.Join(home, "AppData", "Local", appName, "Logs", appName+".log"), nil
	default:
		return filepath.Join(home, ".local", "state", appName, appName+".log"), nil
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
