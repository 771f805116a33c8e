// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hbasex

import (
	"context"
	"io"
	"net/http"

	"github.com/mouseflow/hbasex/option"
)

// Issuer is the interface that wraps the Requester's exchange methods.
//
// Execute performs one blocking request/response exchange; it is
// ExecuteContext with the background context. ExecuteContext is the
// context-aware form: it honors cancellation of ctx in addition to the
// per-call time budget. Requester implements Issuer, and any other
// Issuer implementation must behave substantially the same as
// Requester.
type Issuer interface {
	Execute(endpointPath, query, method string, body io.Reader, opts *option.Options) (*Response, error)
	ExecuteContext(ctx context.Context, endpointPath, query, method string, body io.Reader, opts *option.Options) (*Response, error)
}

// Closer is the interface that wraps the Requester's Close method.
//
// Close releases the held credentials exactly once and marks the
// implementation unusable for further calls. A second Close is a
// no-op.
type Closer interface {
	Close() error
}

// Executor groups the exchange methods with Close. Requester
// implements Executor.
type Executor interface {
	Issuer
	Closer
}

// Get uses the specified Issuer to issue a GET to the specified
// endpoint path, using the same policies as i.ExecuteContext.
func Get(ctx context.Context, i Issuer, endpointPath, query string, opts *option.Options) (*Response, error) {
	return i.ExecuteContext(ctx, endpointPath, query, http.MethodGet, nil, opts)
}

// Put uses the specified Issuer to issue a PUT of body to the specified
// endpoint path, using the same policies as i.ExecuteContext.
func Put(ctx context.Context, i Issuer, endpointPath, query string, body io.Reader, opts *option.Options) (*Response, error) {
	return i.ExecuteContext(ctx, endpointPath, query, http.MethodPut, body, opts)
}

// Post uses the specified Issuer to issue a POST of body to the
// specified endpoint path, using the same policies as i.ExecuteContext.
func Post(ctx context.Context, i Issuer, endpointPath, query string, body io.Reader, opts *option.Options) (*Response, error) {
	return i.ExecuteContext(ctx, endpointPath, query, http.MethodPost, body, opts)
}

// Delete uses the specified Issuer to issue a DELETE to the specified
// endpoint path, using the same policies as i.ExecuteContext.
func Delete(ctx context.Context, i Issuer, endpointPath, query string, opts *option.Options) (*Response, error) {
	return i.ExecuteContext(ctx, endpointPath, query, http.MethodDelete, nil, opts)
}
