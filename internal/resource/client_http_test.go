// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-resource/internal/adapter"
	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/store"
)

type seenRequest struct {
	Method string
	Path   string
	Query  string
	Token  string
	Body   string
}

func newRecordingServer(t *testing.T, status int, payload string) (*httptest.Server, *[]seenRequest) {
	t.Helper()
	var seen []seenRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		seen = append(seen, seenRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Token:  r.Header.Get(AccessTokenHeader),
			Body:   string(body),
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, payload)
	}))
	t.Cleanup(srv.Close)

	return srv, &seen
}

func newHTTPClient(t *testing.T, baseURL string, cfg Config, tokens store.TokenReader) *Client {
	t.Helper()
	transport, err := adapter.NewHTTPTransport(config.ClientAdapter{HTTPAddress: baseURL}, logger.Nop())
	require.NoError(t, err)
	return NewClient(transport, tokens, cfg, logger.Nop())
}

func TestClient_OverHTTP(t *testing.T) {
	srv, seen := newRecordingServer(t, http.StatusOK, singleResponse)

	tokens := store.NewMemoryTokenStore(0)
	require.NoError(t, tokens.SetToken(context.Background(), "accessToken", "fake.jwt.token"))

	cfg := DefaultConfig()
	cfg.Auth = true
	c := newHTTPClient(t, srv.URL, cfg, tokens)
	c.SetURL("v3/posts/:id")
	require.NoError(t, c.Authenticate(context.Background()))

	params := NewParams().Set("limit", 10).Set("keywords", []string{"android", "iOS"}).Set("ignore", "")
	_, err := c.Get(IDs{"id": 123}, NewCallOptions().WithSuffix("/mock").WithParams(params)).Await(context.Background())
	require.NoError(t, err)

	body := map[string]any{"text": "abcdef"}
	res, err := c.Save(body, nil, nil).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", res["text"])

	require.Len(t, *seen, 2)

	get := (*seen)[0]
	assert.Equal(t, http.MethodGet, get.Method)
	assert.Equal(t, "/v3/posts/123/mock", get.Path)
	assert.Equal(t, "limit=10&keywords=android,iOS", get.Query)
	assert.Equal(t, "fake.jwt.token", get.Token)

	post := (*seen)[1]
	assert.Equal(t, http.MethodPost, post.Method)
	assert.Equal(t, "/v3/posts", post.Path)
	var sent map[string]any
	require.NoError(t, json.Unmarshal([]byte(post.Body), &sent))
	assert.Equal(t, body, sent)
}

func TestClient_OverHTTP_AbsoluteTemplate(t *testing.T) {
	srv, seen := newRecordingServer(t, http.StatusOK, "3")

	c := newHTTPClient(t, "", DefaultConfig(), nil)
	c.SetURL(srv.URL + "/v3/posts/:id")

	n, err := c.Count(nil).Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, float64(3), n)
	require.Len(t, *seen, 1)
	assert.Equal(t, "/v3/posts/count", (*seen)[0].Path)
}

func TestClient_OverHTTP_Unauthorized(t *testing.T) {
	srv, _ := newRecordingServer(t, http.StatusUnauthorized, `{"error":"missing token"}`)

	c := newHTTPClient(t, srv.URL, DefaultConfig(), nil)
	c.SetURL("v3/users")

	_, err := c.Query(nil, nil).Await(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusUnauthorized, transportErr.StatusCode)
}

func TestClient_SequenceWithSpacesReachesServer(t *testing.T) {
	srv, seen := newRecordingServer(t, http.StatusOK, `[]`)

	c := newHTTPClient(t, srv.URL, DefaultConfig(), nil)
	c.SetURL("posts/:id")

	opts := NewCallOptions().WithParams(NewParams().Set("tags", []string{"a b", "c"}))
	assert.Equal(t, "posts?tags=a b,c", c.BuildURL(nil, opts))

	_, err := c.Query(nil, opts).Await(context.Background())
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	assert.Equal(t, "/posts", (*seen)[0].Path)
	assert.Equal(t, "tags=a%20b,c", (*seen)[0].Query)
}
