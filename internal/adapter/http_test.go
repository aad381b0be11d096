// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/utils"
	"github.com/MKhiriev/go-rest-resource/models"
)

// newTestTransport creates a transport pointed at the test server.
func newTestTransport(t *testing.T, serverURL string) Transport {
	t.Helper()
	tr, err := NewHTTPTransport(config.ClientAdapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return tr
}

func jsonOptions() models.RequestOptions {
	return models.NewRequestOptions(map[string]string{
		"content-type": "application/json",
		"accept":       "application/json",
	})
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v3/posts/123", r.URL.Path)
		assert.Equal(t, "pageNo=1&keywords=a,b", r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, utils.DefaultUserAgent, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":123}`))
	}))
	defer srv.Close()

	resp, err := newTestTransport(t, srv.URL).Get(context.Background(), "v3/posts/123?pageNo=1&keywords=a,b", jsonOptions())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"id":123}`, string(resp.Body))
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestGet_RepeatedHeaderValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"a", "b"}, r.Header.Values("X-Access-Token"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	opts := jsonOptions()
	opts.Append("x-access-token", "a")
	opts.Append("x-access-token", "b")

	resp, err := newTestTransport(t, srv.URL).Get(context.Background(), "/anything", opts)
	require.NoError(t, err)
	assert.Empty(t, resp.Body)
}

func TestGet_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no such post"))
	}))
	defer srv.Close()

	resp, err := newTestTransport(t, srv.URL).Get(context.Background(), "v3/posts/1", jsonOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "no such post")
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGet_AbsoluteURLWithoutBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abs", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	resp, err := newTestTransport(t, "").Get(context.Background(), srv.URL+"/abs", jsonOptions())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(resp.Body))
}

func TestGet_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	resp, err := newTestTransport(t, url).Get(context.Background(), "v3/posts", jsonOptions())
	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "get request")
}

func TestGet_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	tr, err := NewHTTPTransport(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 20 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	_, err = tr.Get(context.Background(), "slow", jsonOptions())
	require.Error(t, err)
}

// ── Post / Put ───────────────────────────────────────────────────────────────

func TestPost_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v3/posts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "abcdef", body["text"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":1,"text":"abcdef"}`))
	}))
	defer srv.Close()

	resp, err := newTestTransport(t, srv.URL).Post(context.Background(), "v3/posts", map[string]any{"text": "abcdef"}, jsonOptions())
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestPost_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Post(context.Background(), "v3/posts", map[string]any{}, jsonOptions())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPut_SendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v3/posts/123", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"text":"ghijkl"}`, string(raw))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Put(context.Background(), "v3/posts/123", map[string]string{"text": "ghijkl"}, jsonOptions())
	require.NoError(t, err)
}

func TestPut_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Put(context.Background(), "v3/posts/1", nil, jsonOptions())
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v3/posts/123", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Delete(context.Background(), "v3/posts/123", jsonOptions())
	require.NoError(t, err)
}

func TestDelete_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestTransport(t, srv.URL).Delete(context.Background(), "v3/posts/123", jsonOptions())
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.ErrorIs(t, mapHTTPError(tt.status, nil), tt.want)
		})
	}

	assert.NoError(t, mapHTTPError(http.StatusOK, nil))
	assert.NoError(t, mapHTTPError(http.StatusNoContent, nil))

	var statusErr *StatusError
	err := mapHTTPError(http.StatusTeapot, nil)
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusTeapot, statusErr.StatusCode)
	assert.Equal(t, "I'm a teapot", statusErr.Body)
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"with path", "https://api.example.com/v1/", "https://api.example.com/v1", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPTransport_InvalidAddress(t *testing.T) {
	_, err := NewHTTPTransport(config.ClientAdapter{HTTPAddress: "http://"}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

// ── Request URL escaping ─────────────────────────────────────────────────────

func TestRequestURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "v3/posts/123?pageNo=1", "v3/posts/123?pageNo=1"},
		{"reserved kept", "posts?tags=a,b&x=%2F/y", "posts?tags=a,b&x=%2F/y"},
		{"space in query", "posts?tags=a b,c", "posts?tags=a%20b,c"},
		{"control bytes", "posts?q=a\tb\x7f", "posts?q=a%09b%7F"},
		{"non-ascii path", "posts/é", "posts/%C3%A9"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, requestURL(tt.input))
		})
	}
}

func TestGet_UnsafeBytesAreEscaped(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.Path+"?"+r.URL.RawQuery)
		assert.Equal(t, []string{"a b,c"}, r.URL.Query()["tags"])
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	tr := newTestTransport(t, srv.URL)

	_, err := tr.Get(context.Background(), "posts?tags=a b,c", jsonOptions())
	require.NoError(t, err)

	_, err = tr.Get(context.Background(), "posts/ü?tags=a b,c", jsonOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"/posts?tags=a%20b,c", "/posts/ü?tags=a%20b,c"}, seen)
}
