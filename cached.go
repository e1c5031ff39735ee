// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultLookupCache = 8192

// Cached fronts a Tree with an LRU of recently found entries. Get and
// Contains are served from the cache when they can; every other method goes
// straight to the tree.
//
// The tree's ordering must agree with == on K, otherwise two keys the tree
// considers equal would occupy separate cache slots.
type Cached[K comparable, V any] struct {
	Tree[K, V]
	lookups *lru.Cache[K, V]
}

// NewCached wraps tree with a lookup cache holding up to size entries. A
// size of zero or less selects a default.
func NewCached[K comparable, V any](tree Tree[K, V], size int) (*Cached[K, V], error) {
	if size <= 0 {
		size = defaultLookupCache
	}
	lookups, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup cache: %w", err)
	}
	return &Cached[K, V]{Tree: tree, lookups: lookups}, nil
}

func (c *Cached[K, V]) Get(key K) (V, bool, error) {
	if v, ok := c.lookups.Get(key); ok {
		return v, true, nil
	}
	v, found, err := c.Tree.Get(key)
	if err != nil || !found {
		return v, found, err
	}
	c.lookups.Add(key, v)
	return v, true, nil
}

func (c *Cached[K, V]) Contains(key K) (bool, error) {
	if c.lookups.Contains(key) {
		return true, nil
	}
	return c.Tree.Contains(key)
}

func (c *Cached[K, V]) Delete(key K) (V, bool, error) {
	c.lookups.Remove(key)
	return c.Tree.Delete(key)
}

func (c *Cached[K, V]) Clear() {
	c.lookups.Purge()
	c.Tree.Clear()
}

// CacheLen reports how many entries the lookup cache currently holds.
func (c *Cached[K, V]) CacheLen() int {
	return c.lookups.Len()
}
