package mock

import (
	"context"

	"github.com/fwojciec/facultyfetch"
)

var _ facultyfetch.RecordSource = (*RecordSource)(nil)

// RecordSource is a mock implementation of facultyfetch.RecordSource.
type RecordSource struct {
	LoadRecordsFn func(ctx context.Context) ([]facultyfetch.Record, error)
}

func (s *RecordSource) LoadRecords(ctx context.Context) ([]facultyfetch.Record, error) {
	return s.LoadRecordsFn(ctx)
}
