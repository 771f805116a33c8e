// Copyright 2026 The hbasex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package credential

import (
	"encoding/base64"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestNewCluster(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		c, err := NewCluster(mustParse(t, "https://cluster.example"), "admin", "secret")
		require.NoError(t, err)
		require.NotNil(t, c)
	})
	t.Run("NilBaseURL", func(t *testing.T) {
		c, err := NewCluster(nil, "admin", "secret")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrNoBaseURL)
	})
	t.Run("RelativeBaseURL", func(t *testing.T) {
		c, err := NewCluster(mustParse(t, "/no/host"), "admin", "secret")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrNoBaseURL)
	})
	t.Run("EmptyUsername", func(t *testing.T) {
		c, err := NewCluster(mustParse(t, "https://cluster.example"), "", "secret")
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrNoUsername)
	})
	t.Run("EmptyPassword", func(t *testing.T) {
		c, err := NewCluster(mustParse(t, "https://cluster.example"), "admin", "")
		assert.NoError(t, err)
		assert.NotNil(t, c)
	})
}

func TestBaseURLCopy(t *testing.T) {
	c, err := NewCluster(mustParse(t, "https://cluster.example"), "admin", "secret")
	require.NoError(t, err)
	u := c.BaseURL()
	u.Host = "tampered.example"
	assert.Equal(t, "cluster.example", c.BaseURL().Host)
}

func TestApply(t *testing.T) {
	c, err := NewCluster(mustParse(t, "https://cluster.example"), "admin", "secret")
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodGet, "https://cluster.example:8080/x", nil)
	require.NoError(t, err)
	c.Apply(req)
	expected := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
	assert.Equal(t, expected, req.Header.Get("Authorization"))
}

func TestCloseIdempotent(t *testing.T) {
	c, err := NewCluster(mustParse(t, "https://cluster.example"), "admin", "secret")
	require.NoError(t, err)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
}
