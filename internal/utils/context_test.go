// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "login", LoginCtxKey.String())
}

func TestGetLoginFromContext(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		wantLogin string
		wantOK    bool
	}{
		{"present", context.WithValue(context.Background(), LoginCtxKey, "alice"), "alice", true},
		{"missing", context.Background(), "", false},
		{"wrong type", context.WithValue(context.Background(), LoginCtxKey, 42), "", false},
		{"plain string key", context.WithValue(context.Background(), "login", "alice"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			login, ok := GetLoginFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLogin, login)
		})
	}
}
