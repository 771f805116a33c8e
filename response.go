// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hbasex

import (
	"net/http"
	"time"
)

// A Response pairs the raw HTTP response from one gateway exchange with
// the measured round-trip latency.
//
// Ownership of Raw transfers to the caller: the caller must close
// Raw.Body when done with it, exactly as with a response from the
// standard net/http client.
type Response struct {
	// Raw is the HTTP response as received from the transport level,
	// including redirect-class responses, which the Requester never
	// follows. It is never nil on a successful exchange.
	Raw *http.Response

	// Elapsed is the wall-clock duration from the start of the
	// exchange to response headers received.
	Elapsed time.Duration
}

// StatusCode returns the HTTP status code of the raw response, or 0 if
// there is no raw response.
func (r *Response) StatusCode() int {
	if r == nil || r.Raw == nil {
		return 0
	}
	return r.Raw.StatusCode
}

// Header returns the HTTP response headers, or the nil header if there
// is no raw response. A nil return value is safe for read-only use,
// since http.Header is a map type.
func (r *Response) Header() http.Header {
	if r == nil || r.Raw == nil {
		var nilHeader http.Header
		return nilHeader
	}
	return r.Raw.Header
}
