// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hbasex

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mouseflow/hbasex/credential"
	"github.com/mouseflow/hbasex/option"
)

// An HTTPDoer implements a Do method in the same manner as the GoLang
// standard library http.Client from the net/http package.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response following
	// policy (such as redirects, cookies, auth) configured on the
	// HTTPDoer.
	//
	// The Do method must follow the contract documented on the GoLang
	// standard library http.Client from the net/http package.
	Do(r *http.Request) (*http.Response, error)
}

// A Requester performs single request/response exchanges against the
// gateway, one per call, each under one end-to-end time budget taken
// from the per-call options.
//
// A Requester holds exactly one credential store, attached at
// construction and released exactly once by Close. It keeps no
// per-call state, so a single Requester is safe for concurrent use by
// multiple goroutines. Transports are cached per distinct option
// configuration, so repeated calls with the same options reuse TCP
// connections (unless keep-alive is off).
type Requester struct {
	creds   *credential.Cluster
	doer    HTTPDoer
	logger  *zap.Logger
	metrics *Collector

	mu         sync.Mutex
	closed     bool
	transports map[transportKey]*http.Transport
}

// A RequesterOption configures a Requester at construction.
type RequesterOption func(*Requester)

// WithHTTPDoer replaces the built-in transport handling with d. When a
// doer is injected, the Requester no longer controls transport-level
// settings (receive buffer, Nagle, keep-alive, redirect policy); the
// doer is responsible for them.
func WithHTTPDoer(d HTTPDoer) RequesterOption {
	return func(r *Requester) { r.doer = d }
}

// WithLogger installs a logger for per-exchange debug lines. The
// default discards everything.
func WithLogger(l *zap.Logger) RequesterOption {
	return func(r *Requester) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithMetrics installs a metrics collector observing every exchange.
func WithMetrics(c *Collector) RequesterOption {
	return func(r *Requester) { r.metrics = c }
}

// NewRequester returns a Requester that signs every request with creds.
// It fails with a KindArgument error when creds is nil.
func NewRequester(creds *credential.Cluster, opts ...RequesterOption) (*Requester, error) {
	if creds == nil {
		return nil, argErr("NewRequester", "nil credentials")
	}
	r := &Requester{
		creds:      creds,
		logger:     zap.NewNop(),
		transports: make(map[transportKey]*http.Transport),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Execute performs one exchange and blocks until it completes or its
// time budget expires. It is ExecuteContext with the background
// context.
func (r *Requester) Execute(endpointPath, query, method string, body io.Reader, opts *option.Options) (*Response, error) {
	return r.ExecuteContext(context.Background(), endpointPath, query, method, body, opts)
}

// ExecuteContext performs one request/response exchange against the
// gateway.
//
// The target URL is assembled from the credential store's scheme and
// host, the options' port and base path prefix, endpointPath, and
// query (set verbatim as the URL's query component when non-empty).
// The request carries Accept and Content-Type headers equal to the
// configured content type, pre-emptive Basic authentication, and every
// additional header entry from opts, appended last. Redirect-class
// responses are returned as-is, never followed.
//
// The whole exchange runs under one deadline computed at entry from
// opts.Timeout. Connection establishment, body upload, and response
// retrieval each get only the budget remaining when they run; an
// exhausted budget aborts the in-flight transport operation and the
// call fails with a KindTimeout error. An expired or cancelled ctx is
// treated the same way.
//
// On success the returned Response owns the raw HTTP response; the
// caller must close its Body.
func (r *Requester) ExecuteContext(ctx context.Context, endpointPath, query, method string, body io.Reader, opts *option.Options) (*Response, error) {
	const op = "Execute"
	if ctx == nil {
		return nil, argErr(op, "nil context")
	}
	if r.isClosed() {
		return nil, &Error{Kind: KindClosed, Op: op}
	}
	if opts == nil {
		return nil, argErr(op, "nil options")
	}
	if err := opts.Validate(); err != nil {
		return nil, &Error{Kind: KindValidation, Op: op, Cause: err}
	}

	start := time.Now()
	deadline := start.Add(opts.Timeout)
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	u := r.buildURL(endpointPath, query, opts)
	if body != nil {
		body = &budgetReader{r: body, deadline: deadline}
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, &Error{Kind: KindArgument, Op: op, URL: u.String(), Cause: err}
	}
	contentType := opts.ContentType
	if contentType == "" {
		contentType = option.DefaultContentType
	}
	req.Header.Set("Accept", contentType)
	req.Header.Set("Content-Type", contentType)
	r.creds.Apply(req)
	for _, h := range opts.AdditionalHeaders {
		req.Header.Add(h.Name, h.Value)
	}

	if r.metrics != nil {
		r.metrics.startRequest(method, endpointPath)
		defer r.metrics.endRequest(method, endpointPath)
	}
	r.logger.Debug("issuing gateway request",
		zap.String("method", method),
		zap.String("url", u.String()),
		zap.Duration("budget", opts.Timeout))

	resp, err := r.doerFor(opts).Do(req)
	elapsed := time.Since(start)
	if err != nil {
		e := classify(op, u.String(), err)
		if r.metrics != nil {
			r.metrics.observeError(method, endpointPath, e.Kind)
		}
		r.logger.Debug("gateway request failed",
			zap.String("method", method),
			zap.String("url", u.String()),
			zap.Duration("elapsed", elapsed),
			zap.Error(e))
		return nil, e
	}
	if r.metrics != nil {
		r.metrics.observeRequest(method, endpointPath, resp.StatusCode, elapsed)
	}
	r.logger.Debug("gateway request complete",
		zap.String("method", method),
		zap.String("url", u.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))
	return &Response{Raw: resp, Elapsed: elapsed}, nil
}

// Close releases the credential store exactly once, closes any idle
// transport connections, and marks the Requester unusable. Calls after
// Close fail with a KindClosed error. A second Close is a no-op.
func (r *Requester) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	transports := r.transports
	r.transports = nil
	r.mu.Unlock()

	for _, t := range transports {
		t.CloseIdleConnections()
	}
	return r.creds.Close()
}

func (r *Requester) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}

func (r *Requester) buildURL(endpointPath, query string, opts *option.Options) *url.URL {
	base := r.creds.BaseURL()
	u := &url.URL{
		Scheme: base.Scheme,
		Host:   net.JoinHostPort(base.Hostname(), strconv.Itoa(opts.Port)),
		Path:   opts.AlternativeEndpoint + endpointPath,
	}
	if query != "" {
		u.RawQuery = query
	}
	return u
}

// remaining computes the budget left before deadline, clamped at zero.
// A phase handed a zero remaining budget is still attempted and fails
// on its next deadline check.
func remaining(deadline, now time.Time) time.Duration {
	d := deadline.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// budgetReader bounds the body upload phase by the remaining budget.
// The transport reads the request body through it; once the deadline
// passes, the next Read fails with a timeout-classified error, which
// makes the transport abort the in-flight request and close the body.
type budgetReader struct {
	r        io.Reader
	deadline time.Time
}

func (b *budgetReader) Read(p []byte) (int, error) {
	if remaining(b.deadline, time.Now()) == 0 {
		return 0, errBudget
	}
	return b.r.Read(p)
}

// transportKey is the option-derived transport configuration. Two
// option values with the same key share one transport.
type transportKey struct {
	bufferSize int
	useNagle   bool
	keepAlive  bool
}

func (r *Requester) doerFor(opts *option.Options) HTTPDoer {
	if r.doer != nil {
		return r.doer
	}
	key := transportKey{
		bufferSize: opts.ReceiveBufferSize,
		useNagle:   opts.UseNagle,
		keepAlive:  opts.KeepAlive,
	}
	r.mu.Lock()
	t, ok := r.transports[key]
	if !ok {
		t = newTransport(key)
		if r.transports != nil {
			r.transports[key] = t
		}
	}
	r.mu.Unlock()
	return &http.Client{
		Transport:     t,
		CheckRedirect: neverFollow,
	}
}

// neverFollow makes redirect-class responses observable by the caller
// instead of being silently followed.
func neverFollow(*http.Request, []*http.Request) error {
	return http.ErrUseLastResponse
}

func newTransport(key transportKey) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			conn, err := dialer.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			if tc, ok := conn.(*net.TCPConn); ok {
				// Go disables Nagle by default; SetNoDelay(false)
				// re-enables it when the options ask for that.
				if err := tc.SetNoDelay(!key.useNagle); err != nil {
					_ = conn.Close()
					return nil, err
				}
			}
			return conn, nil
		},
		ReadBufferSize:      key.bufferSize,
		DisableKeepAlives:   !key.keepAlive,
		ForceAttemptHTTP2:   true,
		MaxIdleConnsPerHost: 8,
		IdleConnTimeout:     90 * time.Second,
	}
}
