package backoff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)
	req.Equal(time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(2*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.NextDuration)
	req.NoError(b.Backoff(context.Background()))
	req.Equal(4*time.Millisecond, b.NextDuration, "capped by limit")

	b.Reset()
	req.Equal(time.Millisecond, b.NextDuration)
	req.Equal(time.Duration(0), b.LastDuration)
}

func TestBackoffCancelled(t *testing.T) {
	b := NewLinear(time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()
	require.Equal(t, context.Canceled, b.Backoff(c))
}

func TestRetry(t *testing.T) {
	req := require.New(t)
	errDial := errors.New("dial failed")

	calls := 0
	err := Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, func() error {
		calls++
		if calls < 2 {
			return errDial
		}
		return nil
	})
	req.NoError(err)
	req.Equal(2, calls)

	calls = 0
	err = Retry(context.Background(), NewLinear(time.Millisecond, 0), 3, func() error {
		calls++
		return errDial
	})
	req.Equal(errDial, err)
	req.Equal(3, calls)
}
