package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	gorm_logger "gorm.io/gorm/logger"
)

// slowQueryThreshold is the duration after which a query is logged as
// a warning.
const slowQueryThreshold = 200 * time.Millisecond

// queryLogger writes gorm logs to zerolog.
//
// Queries are logged at debug level, slow queries as warnings and failed
// queries as errors. A record that does not exist is not a failure.
type queryLogger struct {
	logger zerolog.Logger
	level  gorm_logger.LogLevel
	slow   time.Duration
}

func newQueryLogger(l zerolog.Logger) *queryLogger {
	return &queryLogger{
		logger: l.With().Str("component", "gorm").Logger(),
		level:  gorm_logger.Info,
		slow:   slowQueryThreshold,
	}
}

// LogMode returns a copy of the logger that only logs at level and above.
func (l *queryLogger) LogMode(level gorm_logger.LogLevel) gorm_logger.Interface {
	c := *l
	c.level = level
	return &c
}

func (l *queryLogger) Info(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Info {
		l.logger.Info().Msgf(s, args...)
	}
}

func (l *queryLogger) Warn(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Warn {
		l.logger.Warn().Msgf(s, args...)
	}
}

func (l *queryLogger) Error(_ context.Context, s string, args ...interface{}) {
	if l.level >= gorm_logger.Error {
		l.logger.Error().Msgf(s, args...)
	}
}

func (l *queryLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gorm_logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	failed := err != nil && !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm_logger.ErrRecordNotFound)

	var event *zerolog.Event
	switch {
	case failed:
		event = l.logger.Error().Err(err)
	case elapsed > l.slow && l.level >= gorm_logger.Warn:
		event = l.logger.Warn().Dur("threshold", l.slow)
	case l.level >= gorm_logger.Info:
		event = l.logger.Debug()
	default:
		return
	}

	sql, rows := fc()
	event.Str("sql", sql).Int64("rows", rows).Dur("duration", elapsed)

	switch {
	case failed:
		event.Msg("query failed")
	case elapsed > l.slow:
		event.Msg("slow query")
	default:
		event.Msg("query")
	}
}
