package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"shop/config"
	deliverycontext "shop/internal/delivery/context"
	"shop/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through slog. Inside a request it uses the
// request-scoped logger so SQL lines carry request_id and user_id.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, required logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < required {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg := l.classify(err, elapsed)
	if level == nil {
		return
	}

	sql, rows := fc()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
		slog.String("source", utils.FileWithLineNum()),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	l.from(ctx).LogAttrs(ctx, *level, msg, attrs...)
}

// classify picks the level of a finished query, or nil to skip it. Missing
// rows are a normal outcome and cancelled requests are the client's doing.
func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (*slog.Level, string) {
	level := func(lv slog.Level) *slog.Level { return &lv }

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		if l.level >= logger.Info {
			return level(slog.LevelInfo), "GORM query"
		}
	case err != nil && errors.Is(err, context.Canceled):
		if l.level >= logger.Warn {
			return level(slog.LevelWarn), "GORM query canceled"
		}
	case err != nil:
		if l.level >= logger.Error {
			return level(slog.LevelError), "GORM query failed"
		}
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		if l.level >= logger.Warn {
			return level(slog.LevelWarn), "GORM slow query"
		}
	case l.level >= logger.Info:
		return level(slog.LevelInfo), "GORM query"
	}

	return nil, ""
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}
