// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "strings"

const upperhex = "0123456789ABCDEF"

// requestURL percent-encodes the bytes of raw that may not appear in a request
// line: space, control bytes and every byte of a non-ASCII character. Reserved
// characters and existing escapes are left untouched.
func requestURL(raw string) string {
	n := 0
	for i := 0; i < len(raw); i++ {
		if mustEscape(raw[i]) {
			n++
		}
	}
	if n == 0 {
		return raw
	}

	var b strings.Builder
	b.Grow(len(raw) + 2*n)
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if mustEscape(c) {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func mustEscape(c byte) bool {
	return c <= ' ' || c >= 0x7f
}
