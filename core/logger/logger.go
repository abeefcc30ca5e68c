// Package logger provides the process-wide structured slog setup: a line
// handler with stable key ordering, an async multi-writer, and context
// plumbing for per-update request IDs.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"skladbot/core/buildinfo"
)

// Options configure the global logger. Zero values select sane defaults
// (info level, kv format, stdout only).
type Options struct {
	Level       string
	Format      string
	KeysOrder   string
	DebugSample string
	Dir         string
	BotFile     string
	ErrorsFile  string
	Profile     string
}

var (
	initOnce   sync.Once
	shutdownMu sync.Mutex
	shutdowned bool

	logWriter  *asyncWriter
	logClosers []io.Closer

	levelVar slog.LevelVar

	debugSampler = newRatioSampler(1, 50)

	// L is the base logger.
	L *slog.Logger

	// DB logs database events.
	DB *slog.Logger
	// MIG logs database migration events.
	MIG *slog.Logger
	// TG logs Telegram transport events.
	TG *slog.Logger
	// TWire logs Telegram wiring steps.
	TWire *slog.Logger
	// DLG logs dialog engine transitions.
	DLG *slog.Logger
	// STORE logs storage layer activity.
	STORE *slog.Logger
)

// InitLogger configures the global structured logger. It may be called only once.
func InitLogger(opts Options) error {
	var initErr error
	initOnce.Do(func() {
		levelVar.Set(selectLevel(opts.Level))
		num, den := parseRatioSpec(opts.DebugSample)
		debugSampler.Set(num, den)

		outputs, closers, err := buildOutputs(opts)
		if err != nil {
			initErr = err
			return
		}
		logClosers = closers
		logWriter = newAsyncWriter(outputs, 64*1024)

		handler := newStructuredHandler(handlerConfig{
			level:    &levelVar,
			writer:   logWriter,
			format:   selectFormat(opts.Format),
			keyOrder: selectKeyOrder(opts.KeysOrder),
		})

		L = slog.New(handler)
		slog.SetDefault(L)

		wireComponents()

		L.With("component", "app").Info("logger ready",
			slog.String("event", "startup"),
			slog.String("level", levelVar.Level().String()),
			slog.String("profile", selectProfile(opts.Profile)),
			slog.String("version", buildinfo.Version),
			slog.String("commit", buildinfo.Commit),
		)
	})
	return initErr
}

func wireComponents() {
	DB = L.With("component", "db")
	MIG = L.With("component", "db.migrate")
	TG = L.With("component", "tg")
	TWire = L.With("component", "tg.wire")
	DLG = L.With("component", "dialog")
	STORE = L.With("component", "store")
}

// Shutdown flushes and closes log outputs. Safe to call more than once.
func Shutdown() error {
	shutdownMu.Lock()
	defer shutdownMu.Unlock()
	if shutdowned {
		return nil
	}
	shutdowned = true

	var first error
	if logWriter != nil {
		if err := logWriter.Flush(); err != nil && first == nil {
			first = err
		}
		if err := logWriter.Close(); err != nil && first == nil {
			first = err
		}
	}
	for _, c := range logClosers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func selectLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

func selectFormat(format string) logFormat {
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		return formatJSON
	}
	return formatKV
}

func selectKeyOrder(spec string) []string {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return append([]string(nil), defaultKeyOrder...)
	}
	parts := strings.Split(spec, ",")
	order := make([]string, 0, len(parts))
	for _, p := range parts {
		if key := strings.TrimSpace(p); key != "" {
			order = append(order, key)
		}
	}
	if len(order) == 0 {
		return append([]string(nil), defaultKeyOrder...)
	}
	return order
}

func selectProfile(profile string) string {
	if profile = strings.TrimSpace(profile); profile != "" {
		return profile
	}
	return "prod"
}

func buildOutputs(opts Options) ([]io.Writer, []io.Closer, error) {
	outputs := []io.Writer{os.Stdout}
	var closers []io.Closer

	open := func(name string) error {
		if name == "" {
			return nil
		}
		path := name
		if opts.Dir != "" {
			if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
				return fmt.Errorf("create log dir: %w", err)
			}
			path = filepath.Join(opts.Dir, name)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file %s: %w", path, err)
		}
		outputs = append(outputs, f)
		closers = append(closers, f)
		return nil
	}

	if err := open(opts.BotFile); err != nil {
		return nil, nil, err
	}
	if err := open(opts.ErrorsFile); err != nil {
		return nil, nil, err
	}
	return outputs, closers, nil
}

// ShouldSampleDebug reports whether a sampled debug line should be emitted.
func ShouldSampleDebug() bool {
	if levelVar.Level() <= slog.LevelDebug {
		return true
	}
	return debugSampler.Allow()
}
