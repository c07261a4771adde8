package backoff

import (
	"context"
	"time"
)

type Strategy interface {
	Duration(count int, start time.Duration) time.Duration
}

type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	strategy     Strategy
}

func New(strategy Strategy, start time.Duration, limit time.Duration) *Backoff {
	b := &Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.nextDuration()
}

// Backoff sleeps for NextDuration, returns early with ctx.Err() if ctx is done
func (b *Backoff) Backoff(ctx context.Context) error {
	t := time.NewTimer(b.NextDuration)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	b.count++
	b.LastDuration = b.NextDuration
	b.NextDuration = b.nextDuration()
	return nil
}

func (b *Backoff) nextDuration() time.Duration {
	d := b.strategy.Duration(b.count, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

// Retry calls fn until it succeeds, attempts are used up or ctx is done.
// The error of the last attempt is returned.
func Retry(ctx context.Context, b *Backoff, attempts int, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		if berr := b.Backoff(ctx); berr != nil {
			return err
		}
	}
	return err
}

type exponential struct{}

func (exponential) Duration(count int, start time.Duration) time.Duration {
	return start << uint(count)
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return New(exponential{}, start, limit)
}

type linear struct{}

func (linear) Duration(count int, start time.Duration) time.Duration {
	return time.Duration(count+1) * start
}

func NewLinear(start time.Duration, limit time.Duration) *Backoff {
	return New(linear{}, start, limit)
}
