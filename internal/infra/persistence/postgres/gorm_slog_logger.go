package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"shopkeep/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

type slotContextKey struct{}

// withSlot tags the queries run with ctx with the save slot they touch.
func withSlot(ctx context.Context, slot string) context.Context {
	return context.WithValue(ctx, slotContextKey{}, slot)
}

func slotFromContext(ctx context.Context) (string, bool) {
	slot, ok := ctx.Value(slotContextKey{}).(string)

	return slot, ok && slot != ""
}

// gormSlogLogger routes gorm's query log into slog. Queries carry the save slot they
// were run for, and a missing save slot is logged as an empty slot, not as a failure.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	slowThreshold := defaultGormSlowThreshold
	if cfg != nil {
		if cfg.Env.Debug {
			level = logger.Info
		}
		if cfg.Storage != nil && cfg.Storage.SlowQueryThreshold > 0 {
			slowThreshold = cfg.Storage.SlowQueryThreshold
		}
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.logger.LogAttrs(ctx, level, "Save store message",
		l.withSlotAttr(ctx, slog.String("message", fmt.Sprintf(msg, args...)))...,
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.LogAttrs(ctx, slog.LevelDebug, "Save slot is empty", l.queryAttrs(ctx, sqlAndRowsFn, elapsed)...)
	case err != nil && l.level >= logger.Error:
		attrs := append(l.queryAttrs(ctx, sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelError, "Save store query failed", attrs...)
	case l.isSlow(elapsed):
		attrs := append(l.queryAttrs(ctx, sqlAndRowsFn, elapsed), slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "Save store query is slow", attrs...)
	case err == nil && l.level >= logger.Info:
		l.logger.LogAttrs(ctx, slog.LevelInfo, "Save store query", l.queryAttrs(ctx, sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) queryAttrs(ctx context.Context, sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return l.withSlotAttr(ctx,
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	)
}

func (l *gormSlogLogger) withSlotAttr(ctx context.Context, attrs ...slog.Attr) []slog.Attr {
	if slot, ok := slotFromContext(ctx); ok {
		return append([]slog.Attr{slog.String("slot", slot)}, attrs...)
	}

	return attrs
}

func (l *gormSlogLogger) isSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}
