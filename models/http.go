// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"net/http"
)

// RequestOptions is the per-request options bag handed to the transport.
// Only headers are carried today; the zero value is ready to use.
type RequestOptions struct {
	// Headers are sent with every request built from these options.
	Headers http.Header
}

// NewRequestOptions builds options from a flat header map.
func NewRequestOptions(headers map[string]string) RequestOptions {
	opts := RequestOptions{Headers: make(http.Header, len(headers))}
	for k, v := range headers {
		opts.Headers.Set(k, v)
	}
	return opts
}

// Append adds value to the header key, keeping any existing values.
func (o *RequestOptions) Append(key, value string) {
	if o.Headers == nil {
		o.Headers = make(http.Header)
	}
	o.Headers.Add(key, value)
}

// Has reports whether header key has at least one value.
func (o RequestOptions) Has(key string) bool {
	return len(o.Headers.Values(key)) > 0
}

// Clone returns a deep copy so the caller can mutate headers freely.
func (o RequestOptions) Clone() RequestOptions {
	return RequestOptions{Headers: o.Headers.Clone()}
}

// Response is the raw result of one round trip.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}
