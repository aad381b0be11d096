// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"github.com/MKhiriev/go-rest-resource/models"
)

// CallOptions tunes a single call. Nil fields are not applied.
type CallOptions struct {
	// URLSuffix is appended to the resolved template, before the query string.
	URLSuffix *string

	// Params are encoded with [EncodeQuery] and appended last.
	Params *Params

	// RequestOptions replaces the client's configured headers for this call.
	RequestOptions *models.RequestOptions
}

// NewCallOptions returns empty call options ready for chaining.
func NewCallOptions() *CallOptions {
	return &CallOptions{}
}

// WithSuffix sets the URL suffix.
func (o *CallOptions) WithSuffix(suffix string) *CallOptions {
	o.URLSuffix = &suffix
	return o
}

// WithParams sets the query parameters.
func (o *CallOptions) WithParams(params *Params) *CallOptions {
	o.Params = params
	return o
}

// WithRequestOptions overrides the request options for this call.
func (o *CallOptions) WithRequestOptions(opts models.RequestOptions) *CallOptions {
	o.RequestOptions = &opts
	return o
}

func (o *CallOptions) suffix() string {
	if o == nil || o.URLSuffix == nil {
		return ""
	}
	return *o.URLSuffix
}

func (o *CallOptions) query() string {
	if o == nil || o.Params == nil {
		return ""
	}
	return EncodeQuery(o.Params)
}
