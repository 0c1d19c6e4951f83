package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/facultyfetch"
)

// Ensure LoggingRecordSource implements facultyfetch.RecordSource.
var _ facultyfetch.RecordSource = (*LoggingRecordSource)(nil)

// LoggingRecordSource wraps a RecordSource with debug logging.
type LoggingRecordSource struct {
	next   facultyfetch.RecordSource
	logger *slog.Logger
}

// NewLoggingRecordSource creates a new LoggingRecordSource.
func NewLoggingRecordSource(next facultyfetch.RecordSource, logger *slog.Logger) *LoggingRecordSource {
	return &LoggingRecordSource{next: next, logger: logger}
}

// LoadRecords delegates to the wrapped source and logs the operation.
func (s *LoggingRecordSource) LoadRecords(ctx context.Context) (records []facultyfetch.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadRecords(ctx)
}
