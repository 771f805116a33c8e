// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hbasex

import (
	"context"
	"errors"
	"fmt"
)

// A Kind classifies an error returned by the Requester. Every error the
// Requester surfaces is an *Error carrying exactly one Kind, so callers
// can branch on failure class without string matching.
type Kind int

const (
	// KindArgument indicates a required argument was missing or invalid.
	// Raised synchronously, before any network I/O.
	KindArgument Kind = iota
	// KindValidation indicates the per-call options failed their own
	// Validate check. Raised before any network I/O.
	KindValidation
	// KindTimeout indicates a phase of the exchange exhausted the
	// remaining time budget. The in-flight transport operation was
	// aborted as part of raising this error.
	KindTimeout
	// KindTransport indicates any other network-level failure
	// (connection refused, DNS failure, protocol violation).
	KindTransport
	// KindClosed indicates the Requester was used after Close.
	KindClosed
)

var kindNames = []string{
	"argument",
	"validation",
	"timeout",
	"transport",
	"closed",
}

// String returns the name of the error kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// An Error is the error type returned by the Requester. It pairs a Kind
// with the operation that failed, the target URL when one was built, and
// the underlying cause when there is one.
type Error struct {
	// Kind is the failure class.
	Kind Kind
	// Op is the operation that failed, e.g. "Execute".
	Op string
	// URL is the target URL, when the failure occurred after the URL
	// was assembled. Empty otherwise.
	URL string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "hbasex: " + e.Op + ": " + e.Kind.String()
	if e.URL != "" {
		msg += " (" + e.URL + ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is reports kind equality, so errors.Is(err, &Error{Kind: KindTimeout})
// matches any timeout error regardless of operation or cause.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Timeout reports whether the error is a timeout, following the
// net.Error convention.
func (e *Error) Timeout() bool {
	return e != nil && e.Kind == KindTimeout
}

// IsTimeout reports whether err, or any error it wraps, is a Requester
// timeout error.
func IsTimeout(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Timeout()
}

// errBudget is the cause recorded when the time budget runs out during
// the body upload phase. It satisfies the net.Error timeout convention
// so it classifies the same way as a transport-level deadline error.
var errBudget error = budgetError{}

type budgetError struct{}

func (budgetError) Error() string   { return "time budget exhausted" }
func (budgetError) Timeout() bool   { return true }
func (budgetError) Temporary() bool { return true }

func argErr(op, msg string) *Error {
	return &Error{Kind: KindArgument, Op: op, Cause: errors.New(msg)}
}

// classify converts an error received from the transport into an *Error,
// separating deadline expiry from every other network-level failure.
// Wrapped causes are consulted, not just err itself, because net/http
// wraps transport errors in *url.Error.
func classify(op, url string, err error) *Error {
	kind := KindTransport
	if isTimeout(err) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Op: op, URL: url, Cause: err}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
