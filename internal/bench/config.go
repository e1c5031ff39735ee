package bench

import (
	"errors"
	"fmt"
	"slices"
)

const (
	OrderRandom     = "random"
	OrderSequential = "sequential"

	KeysInt  = "int"
	KeysUUID = "uuid"

	TreeBST   = "bst"
	TreeAVL   = "avl"
	TreeTreap = "treap"
)

// AllTrees lists every structure the runner knows how to build.
var AllTrees = []string{TreeBST, TreeAVL, TreeTreap}

type Config struct {
	// Size is the number of keys inserted, looked up and deleted per tree.
	Size int
	// Order is OrderRandom or OrderSequential. Sequential only applies to
	// int keys.
	Order string
	Keys  string
	Trees []string
	// Seed drives the dataset and the treap priorities. Zero keeps the
	// runtime-seeded generators.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Size:  100_000,
		Order: OrderRandom,
		Keys:  KeysInt,
		Trees: AllTrees,
	}
}

func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	switch c.Order {
	case OrderRandom, OrderSequential:
	default:
		return fmt.Errorf("unknown order %q", c.Order)
	}
	switch c.Keys {
	case KeysInt:
	case KeysUUID:
		if c.Order == OrderSequential {
			return errors.New("sequential order requires int keys")
		}
	default:
		return fmt.Errorf("unknown key kind %q", c.Keys)
	}
	if len(c.Trees) == 0 {
		return errors.New("no trees selected")
	}
	for _, name := range c.Trees {
		if !slices.Contains(AllTrees, name) {
			return fmt.Errorf("unknown tree %q", name)
		}
	}
	return nil
}
