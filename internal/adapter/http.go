// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-rest-resource/internal/config"
	"github.com/MKhiriev/go-rest-resource/internal/logger"
	"github.com/MKhiriev/go-rest-resource/internal/utils"
	"github.com/MKhiriev/go-rest-resource/models"
	"github.com/go-resty/resty/v2"
)

type httpTransport struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPTransport constructs a resty implementation of [Transport].
// A non-empty cfg.HTTPAddress is normalised into the base URL that relative
// request URLs are resolved against; without it every URL must be absolute.
// cfg.RequestTimeout bounds each round trip when positive.
//
// Returns [ErrInvalidBaseURL] (wrapped) if the address cannot be parsed.
func NewHTTPTransport(cfg config.ClientAdapter, logger *logger.Logger) (Transport, error) {
	client := utils.NewHTTPClient()

	if cfg.HTTPAddress != "" {
		baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
		}
		client.SetBaseURL(baseURL)
	}
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpTransport{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [Transport].
func (h *httpTransport) Get(ctx context.Context, url string, opts models.RequestOptions) (*models.Response, error) {
	return h.execute(h.request(ctx, opts), http.MethodGet, url)
}

// Post implements [Transport]. A nil body sends no payload.
func (h *httpTransport) Post(ctx context.Context, url string, body any, opts models.RequestOptions) (*models.Response, error) {
	return h.execute(h.request(ctx, opts).SetBody(body), http.MethodPost, url)
}

// Put implements [Transport]. A nil body sends no payload.
func (h *httpTransport) Put(ctx context.Context, url string, body any, opts models.RequestOptions) (*models.Response, error) {
	return h.execute(h.request(ctx, opts).SetBody(body), http.MethodPut, url)
}

// Delete implements [Transport].
func (h *httpTransport) Delete(ctx context.Context, url string, opts models.RequestOptions) (*models.Response, error) {
	return h.execute(h.request(ctx, opts), http.MethodDelete, url)
}

func (h *httpTransport) request(ctx context.Context, opts models.RequestOptions) *resty.Request {
	req := h.client.R().SetContext(ctx)
	for key, values := range opts.Headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	return req
}

// execute sends req and converts the outcome. A non-2xx status yields both the
// response and the mapped error.
func (h *httpTransport) execute(req *resty.Request, method, url string) (*models.Response, error) {
	resp, err := req.Execute(method, requestURL(url))
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpTransport.execute").
			Str("method", method).
			Str("url", url).
			Msg("request failed")
		return nil, fmt.Errorf("%s request: %w", strings.ToLower(method), err)
	}

	out := &models.Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}

	if err = mapHTTPError(out.StatusCode, out.Body); err != nil {
		h.logger.Debug().
			Str("func", "httpTransport.execute").
			Str("method", method).
			Str("url", resp.Request.URL).
			Int("status", out.StatusCode).
			Msg("server rejected request")
		return out, err
	}

	return out, nil
}
