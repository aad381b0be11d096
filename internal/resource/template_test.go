// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	assert.Nil(t, Placeholders("v3/api/posts"))
	assert.Equal(t, []string{":id"}, Placeholders("v3/api/posts/:id"))
	assert.Equal(t, []string{":id", ":commentId"}, Placeholders("v3/api/posts/:id/comments/:commentId"))
	// the scheme separator is not followed by a word character
	assert.Nil(t, Placeholders("http://api.example.com/posts"))
	assert.Equal(t, []string{":8080", ":id"}, Placeholders("http://localhost:8080/posts/:id"))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		template string
		ids      IDs
		want     string
	}{
		{name: "no placeholders", template: "v3/api/posts", ids: IDs{}, want: "v3/api/posts"},
		{name: "no placeholders ignores ids", template: "v3/api/posts", ids: IDs{"id": 1}, want: "v3/api/posts"},
		{name: "omitted trailing placeholder", template: "v3/api/posts/:id", ids: IDs{}, want: "v3/api/posts"},
		{name: "nil ids", template: "v3/api/posts/:id", ids: nil, want: "v3/api/posts"},
		{name: "filled placeholder", template: "v3/api/posts/:id", ids: IDs{"id": 123}, want: "v3/api/posts/123"},
		{name: "partially filled", template: "v3/api/posts/:id/comments/:commentId", ids: IDs{"id": 123}, want: "v3/api/posts/123/comments"},
		{name: "fully filled", template: "v3/api/posts/:id/comments/:commentId", ids: IDs{"id": 123, "commentId": 321}, want: "v3/api/posts/123/comments/321"},
		{name: "string value is not escaped", template: "files/:name", ids: IDs{"name": "a b/c"}, want: "files/a b/c"},
		{name: "float value", template: "items/:id", ids: IDs{"id": 1.5}, want: "items/1.5"},
		{name: "whole float value", template: "items/:id", ids: IDs{"id": float64(42)}, want: "items/42"},
		{name: "falsy but present value", template: "items/:id", ids: IDs{"id": 0}, want: "items/0"},
		{name: "earlier omitted later filled", template: "/:a/:b", ids: IDs{"b": "x"}, want: "/x"},
		{name: "placeholder without separator", template: "items:id", ids: IDs{}, want: "items:id"},
		{name: "absolute url with port", template: "http://localhost:8080/posts/:id", ids: IDs{"id": 7}, want: "http://localhost:8080/posts/7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.template, tt.ids))
		})
	}
}

// Each occurrence is its own placeholder, so a repeated name is filled twice.
func TestResolve_RepeatedPlaceholder(t *testing.T) {
	assert.Equal(t, "a/1/b/1", Resolve("a/:id/b/:id", IDs{"id": 1}))
	assert.Equal(t, "a/b", Resolve("a/:id/b/:id", nil))
}
