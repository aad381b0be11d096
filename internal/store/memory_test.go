// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseTokenStore runs the behaviour every backend shares.
func exerciseTokenStore(t *testing.T, s TokenStore) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Token(ctx, "accessToken")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	require.NoError(t, s.SetToken(ctx, "accessToken", "abc"))
	token, err := s.Token(ctx, "accessToken")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	require.NoError(t, s.SetToken(ctx, "accessToken", "def"))
	token, err = s.Token(ctx, "accessToken")
	require.NoError(t, err)
	assert.Equal(t, "def", token)

	require.NoError(t, s.DeleteToken(ctx, "accessToken"))
	_, err = s.Token(ctx, "accessToken")
	assert.ErrorIs(t, err, ErrTokenNotFound)

	// deleting a missing key is not an error
	require.NoError(t, s.DeleteToken(ctx, "accessToken"))

	_, err = s.Token(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, s.SetToken(ctx, "", "x"), ErrEmptyKey)
	assert.ErrorIs(t, s.DeleteToken(ctx, ""), ErrEmptyKey)
}

func TestMemoryTokenStore(t *testing.T) {
	s := NewMemoryTokenStore(0)
	defer s.Close()
	exerciseTokenStore(t, s)
}

func TestMemoryTokenStore_TTL(t *testing.T) {
	s := NewMemoryTokenStore(time.Minute).(*memoryTokenStore)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.SetToken(context.Background(), "k", "v"))

	now = now.Add(59 * time.Second)
	token, err := s.Token(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", token)

	now = now.Add(time.Second)
	_, err = s.Token(context.Background(), "k")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}
