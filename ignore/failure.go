// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ignore

import (
	"sync"
	"time"
)

// Defaults applied by NewFailureThreshold for non-positive arguments.
const (
	DefaultFailureThreshold = 5
	DefaultCooldown         = 60 * time.Second
)

// A FailureThreshold is a decider that degrades an endpoint URI after a
// run of consecutive failures and keeps it degraded until a Refresh
// after the cooldown window has elapsed.
//
// Per URI, the state machine is: healthy, until OnAccessCompletion
// reports threshold consecutive failures; then degraded, with a
// cooldown window of now plus cooldown; then healthy again once
// Refresh runs after the window has elapsed. ShouldIgnore reports true
// while the URI is degraded. A success resets the consecutive-failure
// counter but does not lift an existing degradation; only Refresh does
// that.
type FailureThreshold struct {
	inner     Policy
	threshold int
	cooldown  time.Duration
	now       func() time.Time

	mu   sync.Mutex
	uris map[string]*uriState
}

type uriState struct {
	failures      int
	degradedUntil time.Time
}

func (s *uriState) degraded() bool {
	return !s.degradedUntil.IsZero()
}

// NewFailureThreshold returns a FailureThreshold wrapping inner. A nil
// inner is treated as None. Non-positive threshold or cooldown values
// fall back to the package defaults.
func NewFailureThreshold(inner Policy, threshold int, cooldown time.Duration) *FailureThreshold {
	if threshold <= 0 {
		threshold = DefaultFailureThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &FailureThreshold{
		inner:     innerOrNone(inner),
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
		uris:      make(map[string]*uriState),
	}
}

// OnAccessStart records nothing of its own and propagates to the inner
// policy.
func (p *FailureThreshold) OnAccessStart(uri string) {
	p.inner.OnAccessStart(uri)
}

// OnAccessCompletion updates the URI's consecutive-failure count, then
// propagates to the inner policy. Reaching the threshold degrades the
// URI until a Refresh after the cooldown window.
func (p *FailureThreshold) OnAccessCompletion(uri string, result AccessResult) {
	p.mu.Lock()
	st := p.uris[uri]
	if st == nil {
		st = &uriState{}
		p.uris[uri] = st
	}
	if result == Success {
		st.failures = 0
	} else {
		st.failures++
		if st.failures >= p.threshold {
			st.degradedUntil = p.now().Add(p.cooldown)
			st.failures = 0
		}
	}
	p.mu.Unlock()

	p.inner.OnAccessCompletion(uri, result)
}

// ShouldIgnore reports whether uri is degraded here or anywhere in the
// inner chain.
func (p *FailureThreshold) ShouldIgnore(uri string) bool {
	p.mu.Lock()
	st := p.uris[uri]
	own := st != nil && st.degraded()
	p.mu.Unlock()

	return own || p.inner.ShouldIgnore(uri)
}

// Refresh lifts the degradation of every URI whose cooldown window has
// elapsed, then propagates to the inner policy.
func (p *FailureThreshold) Refresh() {
	now := p.now()
	p.mu.Lock()
	for uri, st := range p.uris {
		if st.degraded() && !now.Before(st.degradedUntil) {
			delete(p.uris, uri)
		}
	}
	p.mu.Unlock()

	p.inner.Refresh()
}

// Inner returns the wrapped policy.
func (p *FailureThreshold) Inner() Policy {
	return p.inner
}
