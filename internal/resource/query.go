// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"strings"
)

// Params is an insertion-ordered set of query parameters. Values are scalars
// or slices of scalars. The zero value is an empty set.
type Params struct {
	keys   []string
	values map[string]any
}

// NewParams returns an empty parameter set.
func NewParams() *Params {
	return &Params{values: make(map[string]any)}
}

// Set stores value under key. Re-setting a key keeps its original position.
func (p *Params) Set(key string, value any) *Params {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	return p
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	value, ok := p.values[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of keys.
func (p *Params) Len() int {
	return len(p.keys)
}

// EncodeQuery renders params as a query string with a leading "?".
//
// Keys whose value is nil, false, zero, an empty string or an empty sequence
// are skipped. A sequence is sent as a comma-joined list whose elements are not
// escaped; scalar values are escaped like the key. When nothing qualifies the
// result is the empty string.
func EncodeQuery(params *Params) string {
	if params == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("?")
	for _, key := range params.keys {
		value := params.values[key]
		if !truthy(value) {
			continue
		}

		if items, ok := sequence(value); ok {
			if len(items) == 0 {
				continue
			}
			b.WriteString("&")
			b.WriteString(EscapeComponent(key))
			b.WriteString("=")
			b.WriteString(joinItems(items))
			continue
		}

		b.WriteString("&")
		b.WriteString(EscapeComponent(key))
		b.WriteString("=")
		b.WriteString(EscapeComponent(formatScalar(value)))
	}

	query := strings.Replace(b.String(), "?&", "?", 1)
	if query == "?" {
		return ""
	}
	return query
}

// joinItems joins sequence elements with a raw comma. Nested sequences are
// flattened into the same list and nil elements render as empty strings.
func joinItems(items []any) string {
	parts := make([]string, len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		if nested, ok := sequence(item); ok {
			parts[i] = joinItems(nested)
			continue
		}
		parts[i] = formatScalar(item)
	}
	return strings.Join(parts, ",")
}

const upperhex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s as a single URI component. Letters, digits
// and - _ . ! ~ * ' ( ) are kept; every other byte of the UTF-8 encoding is
// escaped. Spaces become %20, never "+".
func EscapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
