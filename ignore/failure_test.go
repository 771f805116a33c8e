// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ignore

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const testURI = "http://gateway-1.example:8080"

// fakeClock substitutes the decider's time source so cooldown behavior
// is deterministic.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestThreshold(threshold int, cooldown time.Duration) (*FailureThreshold, *fakeClock) {
	p := NewFailureThreshold(nil, threshold, cooldown)
	clock := newFakeClock()
	p.now = clock.Now
	return p, clock
}

func TestFailureThresholdDefaults(t *testing.T) {
	p := NewFailureThreshold(nil, 0, 0)
	assert.Equal(t, DefaultFailureThreshold, p.threshold)
	assert.Equal(t, DefaultCooldown, p.cooldown)
	assert.Equal(t, None, p.Inner())
}

func TestFailureThresholdDegrades(t *testing.T) {
	p, _ := newTestThreshold(3, time.Minute)

	p.OnAccessCompletion(testURI, Failure)
	p.OnAccessCompletion(testURI, Failure)
	assert.False(t, p.ShouldIgnore(testURI), "below threshold")

	p.OnAccessCompletion(testURI, Failure)
	assert.True(t, p.ShouldIgnore(testURI), "threshold reached")
}

func TestFailureThresholdSuccessResetsCounter(t *testing.T) {
	p, _ := newTestThreshold(3, time.Minute)

	p.OnAccessCompletion(testURI, Failure)
	p.OnAccessCompletion(testURI, Failure)
	p.OnAccessCompletion(testURI, Success)
	p.OnAccessCompletion(testURI, Failure)
	p.OnAccessCompletion(testURI, Failure)
	assert.False(t, p.ShouldIgnore(testURI), "success broke the run of failures")

	p.OnAccessCompletion(testURI, Failure)
	assert.True(t, p.ShouldIgnore(testURI))
}

func TestFailureThresholdRefresh(t *testing.T) {
	p, clock := newTestThreshold(1, time.Minute)

	p.OnAccessCompletion(testURI, Failure)
	assert.True(t, p.ShouldIgnore(testURI))

	// Refresh before the cooldown window elapses changes nothing.
	clock.Advance(30 * time.Second)
	p.Refresh()
	assert.True(t, p.ShouldIgnore(testURI))

	// The window elapsing is not enough on its own; only Refresh lifts
	// the degradation.
	clock.Advance(31 * time.Second)
	assert.True(t, p.ShouldIgnore(testURI))
	p.Refresh()
	assert.False(t, p.ShouldIgnore(testURI))
}

func TestFailureThresholdDegradedSuccessDoesNotLift(t *testing.T) {
	p, _ := newTestThreshold(1, time.Minute)

	p.OnAccessCompletion(testURI, Failure)
	assert.True(t, p.ShouldIgnore(testURI))
	p.OnAccessCompletion(testURI, Success)
	assert.True(t, p.ShouldIgnore(testURI), "only Refresh lifts a degradation")
}

func TestFailureThresholdPerURIState(t *testing.T) {
	p, _ := newTestThreshold(1, time.Minute)
	other := "http://gateway-2.example:8080"

	p.OnAccessCompletion(testURI, Failure)
	assert.True(t, p.ShouldIgnore(testURI))
	assert.False(t, p.ShouldIgnore(other))
}

func TestFailureThresholdConcurrent(t *testing.T) {
	p, _ := newTestThreshold(50, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			uri := fmt.Sprintf("http://gateway-%d.example", i%2)
			for j := 0; j < 100; j++ {
				p.OnAccessStart(uri)
				p.ShouldIgnore(uri)
				p.OnAccessCompletion(uri, AccessResult(j%2))
				p.Refresh()
			}
		}(i)
	}
	wg.Wait()
}
