// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-rest-resource/internal/adapter"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/store"
	"github.com/MKhiriev/go-rest-resource/models"
)

const (
	searchSuffix = "/search"
	countSuffix  = "/count"
)

// Client is a REST resource bound to one URL template.
//
// The configuration is owned by the client. Authenticate is the only method
// that mutates it implicitly; calls snapshot the headers when they are sent.
type Client struct {
	transport adapter.Transport
	tokens    store.TokenReader
	logger    *logger.Logger

	mu       sync.RWMutex
	template string
	config   Config
}

// NewClient creates a resource client. tokens may be nil, in which case
// Authenticate never attaches a token.
func NewClient(transport adapter.Transport, tokens store.TokenReader, cfg Config, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	if cfg.TokenPropertyName == "" {
		cfg.TokenPropertyName = DefaultTokenPropertyName
	}

	return &Client{
		transport: transport,
		tokens:    tokens,
		logger:    log,
		config:    cfg.Clone(),
	}
}

// SetURL replaces the URL template.
func (c *Client) SetURL(template string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.template = template
}

// URL returns the current URL template.
func (c *Client) URL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.template
}

// Config returns a copy of the current configuration.
func (c *Client) Config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config.Clone()
}

// SetConfig replaces the configuration.
func (c *Client) SetConfig(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.config = cfg.Clone()
}

// Authenticate appends the x-access-token header to the configured request
// options when authentication is enabled and the token store holds a token
// under the configured key. Otherwise it does nothing. Repeated calls append
// the header again.
func (c *Client) Authenticate(ctx context.Context) error {
	cfg := c.Config()
	if !cfg.Auth || c.tokens == nil {
		return nil
	}

	token, err := c.tokens.Token(ctx, cfg.TokenPropertyName)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			c.logger.Debug().Str("key", cfg.TokenPropertyName).Msg("no access token stored")
			return nil
		}
		return fmt.Errorf("read access token %q: %w", cfg.TokenPropertyName, err)
	}
	if token == "" {
		return nil
	}

	c.mu.Lock()
	c.config.RequestOptions.Append(AccessTokenHeader, token)
	c.mu.Unlock()

	c.logger.Debug().Str("key", cfg.TokenPropertyName).Msg("access token attached")
	return nil
}

// Query issues a GET and expects an array payload.
func (c *Client) Query(ids IDs, opts *CallOptions) *Call[[]any] {
	return QueryAs[[]any](c, ids, opts)
}

// Get issues a GET and expects an object payload.
func (c *Client) Get(ids IDs, opts *CallOptions) *Call[map[string]any] {
	return GetAs[map[string]any](c, ids, opts)
}

// Save issues a POST with body encoded as JSON.
func (c *Client) Save(body any, ids IDs, opts *CallOptions) *Call[map[string]any] {
	return SaveAs[map[string]any](c, body, ids, opts)
}

// Update issues a PUT with body encoded as JSON.
func (c *Client) Update(body any, ids IDs, opts *CallOptions) *Call[map[string]any] {
	return UpdateAs[map[string]any](c, body, ids, opts)
}

// Delete issues a DELETE.
func (c *Client) Delete(ids IDs, opts *CallOptions) *Call[any] {
	return DeleteAs[any](c, ids, opts)
}

// Search issues a GET against the collection's /search endpoint.
func (c *Client) Search(opts *CallOptions) *Call[[]any] {
	return SearchAs[[]any](c, opts)
}

// Count issues a GET against the collection's /count endpoint and returns
// the numeric payload.
func (c *Client) Count(opts *CallOptions) *Call[float64] {
	return dispatch[float64](c, http.MethodGet, c.collectionURL(countSuffix, opts), nil, opts)
}

// BuildURL returns the URL a call with ids and opts would target.
func (c *Client) BuildURL(ids IDs, opts *CallOptions) string {
	return Resolve(c.URL(), ids) + opts.suffix() + opts.query()
}

func (c *Client) collectionURL(endpoint string, opts *CallOptions) string {
	return Resolve(c.URL(), nil) + endpoint + opts.suffix() + opts.query()
}

func (c *Client) requestOptions(opts *CallOptions) models.RequestOptions {
	if opts != nil && opts.RequestOptions != nil {
		return opts.RequestOptions.Clone()
	}
	return c.Config().RequestOptions
}

func (c *Client) send(ctx context.Context, method, url string, body any, reqOpts models.RequestOptions) (*models.Response, error) {
	switch method {
	case http.MethodGet:
		return c.transport.Get(ctx, url, reqOpts)
	case http.MethodPost:
		return c.transport.Post(ctx, url, body, reqOpts)
	case http.MethodPut:
		return c.transport.Put(ctx, url, body, reqOpts)
	case http.MethodDelete:
		return c.transport.Delete(ctx, url, reqOpts)
	default:
		return nil, fmt.Errorf("unsupported method %s", method)
	}
}

// dispatch binds one round trip to a lazy call. The URL is fixed now; the
// headers are read when the call is awaited.
func dispatch[T any](c *Client, method, url string, body any, opts *CallOptions) *Call[T] {
	return newCall(func(ctx context.Context) (T, error) {
		var data T

		if err := ctx.Err(); err != nil {
			return data, &TransportError{Method: method, URL: url, Err: err}
		}

		start := time.Now()
		resp, err := c.send(ctx, method, url, body, c.requestOptions(opts))

		log := c.logger.Debug().
			Str("method", method).
			Str("url", url).
			Dur("duration", time.Since(start))
		if resp != nil {
			log = log.Int("status", resp.StatusCode)
		}
		log.Msg("resource call")

		if err != nil {
			transportErr := &TransportError{Method: method, URL: url, Err: err}
			if resp != nil {
				transportErr.StatusCode = resp.StatusCode
			}
			c.logger.Err(err).Str("method", method).Str("url", url).Msg("resource call failed")
			return data, transportErr
		}

		if resp == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
			return data, nil
		}
		if err = resp.JSON(&data); err != nil {
			return data, &DecodeError{Method: method, URL: url, Body: resp.Body, Err: err}
		}

		return data, nil
	})
}
