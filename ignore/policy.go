// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package ignore

// An AccessResult is the outcome of one finished attempt against an
// endpoint, reported back to the policy chain by its consumer.
type AccessResult int

const (
	// Success indicates the attempt against the endpoint succeeded.
	Success AccessResult = iota
	// Failure indicates the attempt against the endpoint failed.
	Failure
)

var accessResultNames = []string{
	"Success",
	"Failure",
}

// String returns the name of the access result.
func (r AccessResult) String() string {
	if int(r) < len(accessResultNames) {
		return accessResultNames[r]
	}
	return "AccessResult(?)"
}

// A Policy decides whether a candidate endpoint URI should currently
// be skipped by an endpoint selector, and tracks the health signals it
// needs from the attempts the selector makes.
//
// Implementations of Policy must be safe for concurrent use by
// multiple goroutines: the same chain is shared across every
// concurrently-issued request. Refresh may run concurrently with the
// other methods, and its effect on any one URI's state is atomic.
//
// Policies wrap one another. Notification calls (OnAccessStart,
// OnAccessCompletion, Refresh) run outermost-first: a decider updates
// its own state and then propagates the call to its inner policy.
// ShouldIgnore combines verdicts with logical OR, so wrapping a policy
// never hides an inner ignore verdict.
type Policy interface {
	// OnAccessStart notifies the chain that an attempt against uri is
	// beginning. It must not block indefinitely.
	OnAccessStart(uri string)

	// OnAccessCompletion notifies the chain of the outcome of the
	// just-finished attempt against uri.
	OnAccessCompletion(uri string, result AccessResult)

	// ShouldIgnore reports whether uri should currently be skipped.
	// It is deterministic and free of side effects on chain state.
	ShouldIgnore(uri string) bool

	// Refresh re-evaluates or expires time-based ignore state, then
	// propagates to the inner policy. It is intended to be driven by
	// a periodic external trigger, not called on every access.
	Refresh()

	// Inner returns the wrapped policy, or nil at the chain's base.
	Inner() Policy
}

// None is the chain terminator: it ignores nothing, tracks nothing,
// and has no inner policy.
var None Policy = nonePolicy{}

type nonePolicy struct{}

func (nonePolicy) OnAccessStart(string) {}

func (nonePolicy) OnAccessCompletion(string, AccessResult) {}

func (nonePolicy) ShouldIgnore(string) bool { return false }

func (nonePolicy) Refresh() {}

func (nonePolicy) Inner() Policy { return nil }

// innerOrNone normalizes a possibly-nil inner policy to None so the
// deciders can propagate unconditionally.
func innerOrNone(p Policy) Policy {
	if p == nil {
		return None
	}
	return p
}
