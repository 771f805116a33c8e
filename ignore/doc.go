// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package ignore provides composable endpoint-ignore policies for a
// load balancer selecting among several gateway addresses.
//
// The interface Policy defines a single decision unit. A selector asks
// ShouldIgnore whether a candidate endpoint URI is currently a bad
// choice, brackets each attempt with OnAccessStart and
// OnAccessCompletion so policies can track health signals, and
// periodically drives Refresh so time-based ignore state can expire.
//
// Policies compose by wrapping: each decider holds an inner Policy,
// reachable through Inner, and combines verdicts with logical OR, so a
// wrapping policy can never hide an inner policy's ignore verdict.
// Notifications run outermost-first: a decider updates its own state,
// then propagates the call to its inner policy. Chains terminate at
// None.
//
//	policy := ignore.NewFailureThreshold(
//	    ignore.NewBreaker(ignore.None, 5, time.Minute),
//	    3, 30*time.Second)
//	if !policy.ShouldIgnore(uri) {
//	    policy.OnAccessStart(uri)
//	    ...
//	    policy.OnAccessCompletion(uri, ignore.Success)
//	}
//
// If the built-in deciders are insufficient, fully custom deciders can
// be created via custom implementations of Policy.
package ignore
