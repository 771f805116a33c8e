// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package option

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/net/http/httpguts"
)

// DefaultContentType is the content type sent in the Accept and
// Content-Type headers when Options.ContentType is left empty. The
// gateway speaks protobuf by default.
const DefaultContentType = "application/x-protobuf"

// Default values applied by New.
const (
	DefaultPort              = 8080
	DefaultTimeout           = 30 * time.Second
	DefaultReceiveBufferSize = 1 << 20
)

// A Header is a single additional header entry to append to a request.
// Entries are applied independently, so the same Name may appear in
// more than one entry.
type Header struct {
	Name  string
	Value string
}

// Options describes one request exchange. The Requester consumes an
// Options value read-only; the same value may be shared across
// concurrent calls.
type Options struct {
	// Port is the gateway port to connect to on the cluster host.
	Port int `validate:"required,gte=1,lte=65535"`

	// AlternativeEndpoint is a base path prefix put in front of the
	// endpoint path, e.g. "/api/v1". Empty means no prefix. When set
	// it must begin with a slash.
	AlternativeEndpoint string `validate:"omitempty,startswith=/"`

	// ReceiveBufferSize sets the transport's read buffer size in
	// bytes. Zero leaves the transport default in place.
	ReceiveBufferSize int `validate:"gte=0"`

	// UseNagle enables the Nagle algorithm on the underlying TCP
	// connection. The default (false) disables Nagle, matching the
	// low-latency posture expected of a gateway client.
	UseNagle bool

	// Timeout is the single end-to-end budget for the whole exchange:
	// connection establishment, request body upload, and response
	// header retrieval all draw down this one allowance.
	Timeout time.Duration `validate:"gt=0"`

	// KeepAlive controls whether the underlying TCP connection may be
	// reused across exchanges.
	KeepAlive bool

	// AdditionalHeaders are appended to the request after the standard
	// headers, each entry independently and in order.
	AdditionalHeaders []Header `validate:"-"`

	// ContentType overrides DefaultContentType for the Accept and
	// Content-Type headers.
	ContentType string
}

// New returns an Options with the package defaults: port 8080, a 30
// second budget, a 1 MiB receive buffer, keep-alive on, and Nagle off.
func New() *Options {
	return &Options{
		Port:              DefaultPort,
		Timeout:           DefaultTimeout,
		ReceiveBufferSize: DefaultReceiveBufferSize,
		KeepAlive:         true,
	}
}

var validate = validator.New()

// Validate checks the Options for invalid combinations. It returns nil
// for a usable configuration and a descriptive error otherwise. The
// struct constraints are enforced by the validator tags; additional
// header entries are checked against the RFC 7230 token and field-value
// grammar.
func (o *Options) Validate() error {
	if o == nil {
		return errors.New("option: nil options")
	}
	if err := validate.Struct(o); err != nil {
		return err
	}
	for _, h := range o.AdditionalHeaders {
		if !httpguts.ValidHeaderFieldName(h.Name) {
			return fmt.Errorf("option: invalid header name %q", h.Name)
		}
		if !httpguts.ValidHeaderFieldValue(h.Value) {
			return fmt.Errorf("option: invalid value for header %q", h.Name)
		}
	}
	return nil
}
