// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resource implements a generic REST resource client.
//
// A [Client] owns a URL template such as "v3/posts/:id/comments/:commentId".
// Every operation resolves the template against an [IDs] mapping with
// [Resolve], appends an optional suffix and the query string produced by
// [EncodeQuery], and dispatches the request through an [adapter.Transport].
// Operations return a lazy [Call]: nothing is sent until [Call.Await] is
// invoked, and a call performs at most one round trip.
//
// Failures are reported as [*TransportError] (the transport or the server
// rejected the request) or [*DecodeError] (the body is not the expected JSON).
// Both can be matched with [errors.Is] against [ErrTransport] and [ErrDecode].
package resource
