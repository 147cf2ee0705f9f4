package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"syscall"
	"time"
)

// Backoff is a capped exponential retry schedule.
type Backoff struct {
	Attempts int // total tries, first one included
	Base     time.Duration
	Cap      time.Duration
}

// StoreBackoff covers dropped database connections during a write.
var StoreBackoff = Backoff{Attempts: 3, Base: 200 * time.Millisecond, Cap: 2 * time.Second}

// Delay returns the wait before retry n (0-based).
func (b Backoff) Delay(n int) time.Duration {
	d := b.Base << n
	if d <= 0 || d > b.Cap {
		return b.Cap
	}
	return d
}

// Retry calls fn until it succeeds, fails with a non-transient error,
// or b.Attempts is used up. A done ctx stops it between attempts.
func Retry[T any](ctx context.Context, b Backoff, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	attempts := max(b.Attempts, 1)

	var err error
	for n := range attempts {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return zero, ctxErr
		}
		var v T
		if v, err = fn(ctx); err == nil {
			return v, nil
		}
		if !IsTransient(err) || n == attempts-1 {
			break
		}
		wait := b.Delay(n)
		slog.Debug("transient failure, retrying",
			slog.Int("attempt", n+1), slog.Duration("wait", wait), slog.Any("error", err))
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
	return zero, err
}

// IsTransient reports network failures worth another try:
// dial and DNS errors, timeouts, resets and truncated reads.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
