// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"net/http"
)

// QueryAs is [Client.Query] decoding into T.
func QueryAs[T any](c *Client, ids IDs, opts *CallOptions) *Call[T] {
	return dispatch[T](c, http.MethodGet, c.BuildURL(ids, opts), nil, opts)
}

// GetAs is [Client.Get] decoding into T.
func GetAs[T any](c *Client, ids IDs, opts *CallOptions) *Call[T] {
	return dispatch[T](c, http.MethodGet, c.BuildURL(ids, opts), nil, opts)
}

// SaveAs is [Client.Save] decoding into T.
func SaveAs[T any](c *Client, body any, ids IDs, opts *CallOptions) *Call[T] {
	return dispatch[T](c, http.MethodPost, c.BuildURL(ids, opts), body, opts)
}

// UpdateAs is [Client.Update] decoding into T.
func UpdateAs[T any](c *Client, body any, ids IDs, opts *CallOptions) *Call[T] {
	return dispatch[T](c, http.MethodPut, c.BuildURL(ids, opts), body, opts)
}

// DeleteAs is [Client.Delete] decoding into T.
func DeleteAs[T any](c *Client, ids IDs, opts *CallOptions) *Call[T] {
	return dispatch[T](c, http.MethodDelete, c.BuildURL(ids, opts), nil, opts)
}

// SearchAs is [Client.Search] decoding into T.
func SearchAs[T any](c *Client, opts *CallOptions) *Call[T] {
	return dispatch[T](c, http.MethodGet, c.collectionURL(searchSuffix, opts), nil, opts)
}
