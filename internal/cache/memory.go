// SPDX-License-Identifier: MIT

package cache

import (
	"container/list"
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryCache is an in-process LRU cache. When it holds maxEntries
// entries, Set evicts the least recently used one. Expired entries are
// dropped when read.
type MemoryCache struct {
	mu         sync.Mutex
	maxEntries int
	order      *list.List // front = most recent; values are *memEntry
	entries    map[string]*list.Element
	now        func() time.Time
}

type memEntry struct {
	key       string
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates an LRU cache holding at most maxEntries entries;
// maxEntries <= 0 means unbounded.
func NewMemoryCache(maxEntries int) *MemoryCache {
	return &MemoryCache{
		maxEntries: maxEntries,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get returns a copy of the stored value.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	e := el.Value.(*memEntry)
	if !e.expiresAt.IsZero() && c.now().After(e.expiresAt) {
		c.remove(el)
		return nil, false, nil
	}
	c.order.MoveToFront(el)

	return slices.Clone(e.data), true, nil
}

// Set stores a copy of data.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	e := &memEntry{key: key, data: slices.Clone(data)}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	if el, ok := c.entries[key]; ok {
		el.Value = e
		c.order.MoveToFront(el)
		return nil
	}
	c.entries[key] = c.order.PushFront(e)
	for c.maxEntries > 0 && c.order.Len() > c.maxEntries {
		c.remove(c.order.Back())
	}

	return nil
}

// Delete removes key if present.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.remove(el)
	}

	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Close drops every entry.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.entries)

	return nil
}

func (c *MemoryCache) remove(el *list.Element) {
	c.order.Remove(el)
	delete(c.entries, el.Value.(*memEntry).key)
}

var _ Cache = (*MemoryCache)(nil)
