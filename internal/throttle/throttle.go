// Package throttle provides the token bucket that paces calls to the external
// rate provider.
package throttle

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter hands out one token per interval, allowing at most burst tokens to accumulate.
type Limiter struct {
	limiter *rate.Limiter
}

// New creates a Limiter releasing a token every interval.
func New(interval time.Duration, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	return &Limiter{limiter: rate.NewLimiter(rate.Every(interval), burst)}
}

// Wait blocks until a token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
