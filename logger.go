package sekai

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with world-specific helpers so log records use
// consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, a text handler writing to stderr is used.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// LogDespawn logs a freed entity and how many attached columns held it.
func (l *Logger) LogDespawn(ctx context.Context, h Handle, index Index, cleared int) {
	l.DebugContext(ctx, "entity despawned",
		"handle", uint64(h),
		"index", uint32(index),
		"columns", cleared,
	)
}

// LogReset logs a world reset.
func (l *Logger) LogReset(ctx context.Context, entities, columns int) {
	l.DebugContext(ctx, "world reset",
		"entities", entities,
		"columns", columns,
	)
}

// LogAttach logs a column joining or leaving the world.
func (l *Logger) LogAttach(ctx context.Context, id int, attached bool) {
	if attached {
		l.DebugContext(ctx, "column attached", "column", id)
	} else {
		l.DebugContext(ctx, "column detached", "column", id)
	}
}

// LogStage logs the systems scheduled together in one parallel stage.
func (l *Logger) LogStage(ctx context.Context, stage int, systems []string) {
	l.DebugContext(ctx, "running stage",
		"stage", stage,
		"systems", systems,
	)
}

// LogConflict logs a unit of work rejected for conflicting column access.
func (l *Logger) LogConflict(ctx context.Context, name string, err error) {
	l.WarnContext(ctx, "access rejected",
		"system", name,
		"error", err,
	)
}
