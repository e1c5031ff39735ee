// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"log/slog"
	"math/rand/v2"
)

// Option configures a tree at construction time.
type Option func(*config)

type config struct {
	logger *slog.Logger
	rng    *rand.Rand
}

// WithLogger sets the logger used for debug events. The default is
// slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithSeed gives a Treap its own deterministic priority stream. BST and
// AVL ignore it.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// base holds what every tree shares: the ordering, the key check and the
// logger.
type base[K any] struct {
	cmp    CompareFn[K]
	keys   keyCheck[K]
	logger *slog.Logger
}

func newBase[K any](cmp CompareFn[K], c config) base[K] {
	if cmp == nil {
		panic("ordered: nil compare function")
	}
	return base[K]{
		cmp:    cmp,
		keys:   newKeyCheck[K](),
		logger: c.logger,
	}
}

func (b *base[K]) checkKey(op string, key K) error {
	if err := b.keys.check(key); err != nil {
		b.logger.Debug("rejected key", "op", op, "error", err)
		return err
	}
	return nil
}
