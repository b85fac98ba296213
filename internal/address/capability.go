// Package address provides address suggestions for the party address fields.
//
// The suggestion backend is injected once at startup through
// Capability.Provide. Until then the capability is simply not ready and
// suggests nothing; callers that want to wait use Wait with a context.
package address

import (
	"context"
	"iter"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
)

// Provider produces candidate addresses for partial input.
type Provider interface {
	Predict(ctx context.Context, input string) ([]string, error)
}

// Capability is the injection point for a Provider.
type Capability struct {
	once     sync.Once
	ready    chan struct{}
	provider Provider
}

// NewCapability returns a capability that is not yet ready.
func NewCapability() *Capability {
	return &Capability{ready: make(chan struct{})}
}

// Provide installs p and signals readiness. Only the first non-nil call has
// an effect.
func (c *Capability) Provide(p Provider) {
	if p == nil {
		return
	}
	c.once.Do(func() {
		c.provider = p
		close(c.ready)
	})
}

// Ready is closed once a provider has been installed.
func (c *Capability) Ready() <-chan struct{} {
	return c.ready
}

// IsReady reports whether a provider has been installed.
func (c *Capability) IsReady() bool {
	select {
	case <-c.ready:
		return true
	default:
		return false
	}
}

// Wait blocks until the capability is ready or ctx is done.
func (c *Capability) Wait(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Suggest returns the candidates for input as a lazy sequence.
// The sequence is empty for blank input, before the capability is ready, or
// when the provider fails. A sequence can be ranged over only once; later
// iterations yield nothing.
func (c *Capability) Suggest(ctx context.Context, input string) iter.Seq[string] {
	input = strings.TrimSpace(input)
	var used atomic.Bool
	return func(yield func(string) bool) {
		if used.Swap(true) || input == "" || !c.IsReady() {
			return
		}
		candidates, err := c.provider.Predict(ctx, input)
		if err != nil {
			slog.Warn("Address prediction failed", "error", err)
			return
		}
		for _, candidate := range candidates {
			if !yield(candidate) {
				return
			}
		}
	}
}
