// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCache_EmptyMisses(t *testing.T) {
	c := NewHandleCache()

	_, ok := c.Get("cipher-1")
	assert.False(t, ok)
}

func TestHandleCache_HitOnlyOnExactCiphertext(t *testing.T) {
	c := NewHandleCache()
	h := NewHandle()
	c.Put("cipher-1", h)

	got, ok := c.Get("cipher-1")
	require.True(t, ok)
	assert.Same(t, h, got)

	_, ok = c.Get("cipher-2")
	assert.False(t, ok)
}

func TestHandleCache_PutReplacesEntry(t *testing.T) {
	c := NewHandleCache()
	first := NewHandle()
	second := NewHandle()

	c.Put("cipher-1", first)
	c.Put("cipher-2", second)

	// Old ciphertext no longer hits.
	_, ok := c.Get("cipher-1")
	assert.False(t, ok)

	got, ok := c.Get("cipher-2")
	require.True(t, ok)
	assert.Same(t, second, got)
}

func TestHandleCache_WriteThroughKeepsHandle(t *testing.T) {
	// A local mutation keeps the live handle but re-keys it under the new
	// ciphertext, so the next read skips decrypt+parse.
	c := NewHandleCache()
	h := NewHandle()
	c.Put("cipher-1", h)

	c.Put("cipher-2", h)

	got, ok := c.Get("cipher-2")
	require.True(t, ok)
	assert.Same(t, h, got)
}

func TestHandleCache_Invalidate(t *testing.T) {
	c := NewHandleCache()
	c.Put("cipher-1", NewHandle())

	c.Invalidate()

	_, ok := c.Get("cipher-1")
	assert.False(t, ok)
}
