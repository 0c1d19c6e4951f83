package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/facultyfetch"
	"github.com/fwojciec/facultyfetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSource_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where RecordSource is expected
	var _ facultyfetch.RecordSource = &mock.RecordSource{}
}

func TestRecordSource_LoadRecords(t *testing.T) {
	t.Parallel()

	t.Run("delegates to LoadRecordsFn", func(t *testing.T) {
		t.Parallel()

		want := []facultyfetch.Record{{"faculty": {Text: "Law", Valid: true}}}
		called := false
		s := &mock.RecordSource{
			LoadRecordsFn: func(_ context.Context) ([]facultyfetch.Record, error) {
				called = true
				return want, nil
			},
		}

		got, err := s.LoadRecords(context.Background())

		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, want, got)
	})
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WaitFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		l := &mock.DomainLimiter{
			WaitFn: func(_ context.Context, domain string) error {
				calledWith = domain
				return nil
			},
		}

		err := l.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.Equal(t, "example.com", calledWith)
	})
}
