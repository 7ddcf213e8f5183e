package logger

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

type Config struct {
	Writer io.Writer
	Debug  bool
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Setup installs a JSON logger writing to cfg.Writer. A nil writer discards.
func Setup(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = io.Discard
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)
	mu.Lock()
	global = l
	mu.Unlock()

	l.Debug("logger.initialized", "debug", cfg.Debug)
	return l
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
