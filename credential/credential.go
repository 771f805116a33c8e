// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package credential holds the cluster credentials a Requester attaches
// to every outgoing request. One Cluster backs exactly one Requester;
// it is immutable after construction except for Close.
package credential

import (
	"errors"
	"net/http"
	"net/url"
	"sync"
)

var (
	// ErrNoBaseURL is returned by NewCluster when the base URL is nil
	// or has no scheme or host.
	ErrNoBaseURL = errors.New("credential: missing cluster base URL")
	// ErrNoUsername is returned by NewCluster when the username is
	// empty.
	ErrNoUsername = errors.New("credential: missing username")
)

// A Cluster registers one set of credentials for Basic authentication
// against the cluster's base address. It is safe for concurrent use:
// all fields are read-only after construction, and Close uses its own
// guard.
type Cluster struct {
	baseURL  url.URL
	username string
	password string

	mu     sync.Mutex
	closed bool
}

// NewCluster returns a credential store for the cluster reachable at
// baseURL. Only the URL's scheme and host are used; port and path are
// supplied per call through the request options.
func NewCluster(baseURL *url.URL, username, password string) (*Cluster, error) {
	if baseURL == nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, ErrNoBaseURL
	}
	if username == "" {
		return nil, ErrNoUsername
	}
	return &Cluster{
		baseURL:  *baseURL,
		username: username,
		password: password,
	}, nil
}

// BaseURL returns a copy of the cluster's base URL.
func (c *Cluster) BaseURL() *url.URL {
	u := c.baseURL
	return &u
}

// Apply attaches the Authorization header to req using Basic
// authentication. The header is sent pre-emptively, on the first
// attempt, rather than waiting for a 401 challenge.
func (c *Cluster) Apply(req *http.Request) {
	req.SetBasicAuth(c.username, c.password)
}

// Close releases the held credentials. A second call is a no-op, not
// an error.
func (c *Cluster) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.username = ""
	c.password = ""
	return nil
}
