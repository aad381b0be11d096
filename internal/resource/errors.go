// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"errors"
	"fmt"
)

// Sentinel errors matched by [TransportError] and [DecodeError] through
// [errors.Is].
var (
	// ErrTransport reports that the request could not be completed or the
	// server answered with a non-2xx status.
	ErrTransport = errors.New("resource transport error")

	// ErrDecode reports that the response body is not the expected JSON.
	ErrDecode = errors.New("resource decode error")
)

// TransportError wraps the failure reported by the transport for one call.
type TransportError struct {
	Method string
	URL    string
	// StatusCode is the HTTP status when the server answered, zero otherwise.
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is matches [ErrTransport].
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError wraps a JSON decoding failure for one call.
type DecodeError struct {
	Method string
	URL    string
	// Body is the raw payload that failed to decode.
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode response: %v", e.Method, e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches [ErrDecode].
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
