// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package hbasex provides the request-issuing core of an HBase REST gateway
client: a Requester that performs a single HTTP exchange against the
gateway under one end-to-end time budget, with Basic credentials attached
up front.

Create a credential store and a Requester to begin issuing requests.

	creds, err := credential.NewCluster(baseURL, "admin", "secret")
	...
	rq, err := hbasex.NewRequester(creds)
	...
	defer rq.Close()
	resp, err := rq.Execute("/version/cluster", "", http.MethodGet, nil, option.New())

Every call takes an option.Options describing the target port, base path
prefix, timeout, and transport knobs. The timeout is a single budget for
the whole exchange: building the connection, uploading the request body,
and receiving the response headers all draw down the same allowance, and
an exhausted budget aborts whatever phase is in flight.

For control over how the Requester sends HTTP requests and receives HTTP
responses, inject a custom HTTPDoer:

	rq, err := hbasex.NewRequester(creds, hbasex.WithHTTPDoer(doer))

Structured logging and Prometheus metrics are optional:

	rq, err := hbasex.NewRequester(creds,
		hbasex.WithLogger(logger),
		hbasex.WithMetrics(hbasex.NewCollector()),
	)

Redirect-class responses (including 304 Not Modified) are never followed;
they are returned to the caller as-is. The Requester performs no retries
and interprets no response bodies. Endpoint health bookkeeping for a
load balancer sitting above this core lives in package ignore.
*/
package hbasex
