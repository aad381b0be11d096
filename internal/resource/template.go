// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"regexp"
	"strings"
)

// placeholderPattern matches a ":name" placeholder segment.
var placeholderPattern = regexp.MustCompile(`:\w+`)

// IDs maps placeholder names (without the colon) to scalar values.
type IDs map[string]any

// Placeholders returns the placeholder tokens of template in order of
// appearance, colon included.
func Placeholders(template string) []string {
	return placeholderPattern.FindAllString(template, -1)
}

// Resolve substitutes the placeholders of template with values from ids.
//
// Placeholders are processed left to right. A supplied placeholder is replaced
// with the string form of its value, unescaped. A missing placeholder is
// removed together with the "/" in front of it, so "v3/posts/:id" resolves to
// "v3/posts" when no id is given. Substitution is purely mechanical: filling a
// later placeholder after omitting an earlier one is not corrected.
func Resolve(template string, ids IDs) string {
	params := Placeholders(template)
	if len(params) == 0 {
		return template
	}

	url := template
	for _, param := range params {
		key := param[1:]
		if value, ok := ids[key]; ok {
			url = strings.Replace(url, param, formatScalar(value), 1)
			continue
		}
		url = strings.Replace(url, "/"+param, "", 1)
	}

	return url
}
