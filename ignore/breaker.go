// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ignore

import (
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// A Breaker is a decider backed by one circuit breaker per endpoint
// URI. OnAccessStart draws a permit from the URI's breaker,
// OnAccessCompletion settles it, and ShouldIgnore reports true while
// the URI's breaker is open.
//
// Unlike FailureThreshold, a Breaker recovers on its own: gobreaker
// moves an open breaker to half-open once its timeout elapses, so
// Refresh has no state of its own to expire and only propagates to the
// inner policy.
type Breaker struct {
	inner    Policy
	settings gobreaker.Settings

	mu       sync.Mutex
	breakers map[string]*gobreaker.TwoStepCircuitBreaker
	pending  map[string][]func(bool)
}

// NewBreaker returns a Breaker wrapping inner. A nil inner is treated
// as None. An endpoint trips after threshold consecutive failures and
// re-opens for probing after cooldown. Non-positive arguments fall
// back to the package defaults shared with FailureThreshold.
func NewBreaker(inner Policy, threshold int, cooldown time.Duration) *Breaker {
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Breaker{
		inner: innerOrNone(inner),
		settings: gobreaker.Settings{
			Timeout: cooldown,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= uint32(threshold)
			},
		},
		breakers: make(map[string]*gobreaker.TwoStepCircuitBreaker),
		pending:  make(map[string][]func(bool)),
	}
}

// OnAccessStart draws a permit from uri's breaker and holds its
// settlement callback until the matching OnAccessCompletion. If the
// breaker refuses the permit (it is open), the attempt goes untracked.
// Propagates to the inner policy.
func (p *Breaker) OnAccessStart(uri string) {
	cb := p.breakerFor(uri)
	if done, err := cb.Allow(); err == nil {
		p.mu.Lock()
		p.pending[uri] = append(p.pending[uri], done)
		p.mu.Unlock()
	}

	p.inner.OnAccessStart(uri)
}

// OnAccessCompletion settles the oldest outstanding permit for uri
// with the attempt's outcome, then propagates to the inner policy. A
// completion with no outstanding permit is a no-op here.
func (p *Breaker) OnAccessCompletion(uri string, result AccessResult) {
	p.mu.Lock()
	var done func(bool)
	if q := p.pending[uri]; len(q) > 0 {
		done = q[0]
		q = q[1:]
		if len(q) == 0 {
			delete(p.pending, uri)
		} else {
			p.pending[uri] = q
		}
	}
	p.mu.Unlock()
	if done != nil {
		done(result == Success)
	}

	p.inner.OnAccessCompletion(uri, result)
}

// ShouldIgnore reports whether uri's breaker is open, or whether the
// inner chain says to ignore it.
func (p *Breaker) ShouldIgnore(uri string) bool {
	own := p.breakerFor(uri).State() == gobreaker.StateOpen
	return own || p.inner.ShouldIgnore(uri)
}

// Refresh propagates to the inner policy. The breakers expire their
// own open windows.
func (p *Breaker) Refresh() {
	p.inner.Refresh()
}

// Inner returns the wrapped policy.
func (p *Breaker) Inner() Policy {
	return p.inner
}

func (p *Breaker) breakerFor(uri string) *gobreaker.TwoStepCircuitBreaker {
	p.mu.Lock()
	defer p.mu.Unlock()
	cb := p.breakers[uri]
	if cb == nil {
		st := p.settings
		st.Name = uri
		cb = gobreaker.NewTwoStepCircuitBreaker(st)
		p.breakers[uri] = cb
	}
	return cb
}
