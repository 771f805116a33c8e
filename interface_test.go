// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package hbasex

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouseflow/hbasex/option"
)

func TestRequesterImplementsExecutor(t *testing.T) {
	var _ Executor = (*Requester)(nil)
}

func TestVerbHelpers(t *testing.T) {
	doer := &recordingDoer{}
	rq, err := NewRequester(testCreds(t, "https://cluster.example"), WithHTTPDoer(doer))
	require.NoError(t, err)
	defer rq.Close()
	ctx := context.Background()
	opts := option.New()

	testCases := []struct {
		name     string
		issue    func() (*Response, error)
		method   string
		wantBody string
	}{
		{
			name:   "Get",
			issue:  func() (*Response, error) { return Get(ctx, rq, "/t", "v=1", opts) },
			method: http.MethodGet,
		},
		{
			name:     "Put",
			issue:    func() (*Response, error) { return Put(ctx, rq, "/t", "", strings.NewReader("row"), opts) },
			method:   http.MethodPut,
			wantBody: "row",
		},
		{
			name:     "Post",
			issue:    func() (*Response, error) { return Post(ctx, rq, "/t", "", strings.NewReader("row"), opts) },
			method:   http.MethodPost,
			wantBody: "row",
		},
		{
			name:   "Delete",
			issue:  func() (*Response, error) { return Delete(ctx, rq, "/t", "", opts) },
			method: http.MethodDelete,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resp, err := testCase.issue()
			require.NoError(t, err)
			defer resp.Raw.Body.Close()
			req := doer.last()
			assert.Equal(t, testCase.method, req.Method)
			if testCase.wantBody != "" {
				b, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				assert.Equal(t, testCase.wantBody, string(b))
			}
		})
	}
}

func TestResponseAccessors(t *testing.T) {
	var nilResp *Response
	assert.Equal(t, 0, nilResp.StatusCode())
	assert.Nil(t, nilResp.Header())

	empty := &Response{}
	assert.Equal(t, 0, empty.StatusCode())
	assert.Nil(t, empty.Header())

	h := make(http.Header)
	h.Set("ETag", "abc")
	resp := &Response{Raw: &http.Response{StatusCode: 200, Header: h}}
	assert.Equal(t, 200, resp.StatusCode())
	assert.Equal(t, "abc", resp.Header().Get("ETag"))
}
