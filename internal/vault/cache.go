// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import "sync"

// HandleCache caches the decrypted handle for the most recently seen
// encrypted blob, so repeated reads do not pay decrypt+parse every time.
//
// The cache is an optimization, never a source of truth: Get only returns a
// hit when the caller's ciphertext is byte-identical to the ciphertext the
// entry was populated with. Any code path that adopts vault content from a
// remote source, or clears the vault, must call Invalidate in the same
// logical operation as the write. Local mutation writes keep the live handle
// and re-Put it under the new ciphertext instead of invalidating.
type HandleCache struct {
	mu         sync.Mutex
	ciphertext string
	handle     *Handle
}

// NewHandleCache returns an empty cache.
func NewHandleCache() *HandleCache {
	return &HandleCache{}
}

// Get returns the cached handle iff ciphertext matches the ciphertext the
// cache was last populated with.
func (c *HandleCache) Get(ciphertext string) (*Handle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.handle == nil || c.ciphertext != ciphertext {
		return nil, false
	}
	return c.handle, true
}

// Put replaces the cache entry.
func (c *HandleCache) Put(ciphertext string, handle *Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ciphertext = ciphertext
	c.handle = handle
}

// Invalidate clears the cache. The next Get forces a decrypt+parse.
func (c *HandleCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ciphertext = ""
	c.handle = nil
}
