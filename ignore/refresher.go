// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ignore

import (
	"sync"
	"time"
)

// DefaultRefreshInterval is the interval applied by NewRefresher for a
// non-positive argument.
const DefaultRefreshInterval = 10 * time.Second

// A Refresher drives a policy chain's Refresh on a fixed interval from
// its own goroutine, providing the periodic external trigger the chain
// expects. Stop it when the chain is retired.
type Refresher struct {
	stop     chan struct{}
	stopped  sync.WaitGroup
	stopOnce sync.Once
}

// NewRefresher starts a goroutine calling p.Refresh every interval
// until Stop is called. A non-positive interval falls back to
// DefaultRefreshInterval.
func NewRefresher(p Policy, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	r := &Refresher{stop: make(chan struct{})}
	r.stopped.Add(1)
	go func() {
		defer r.stopped.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Refresh()
			case <-r.stop:
				return
			}
		}
	}()
	return r
}

// Stop halts the refresh loop and waits for it to exit. A second Stop
// is a no-op.
func (r *Refresher) Stop() {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	r.stopped.Wait()
}
