// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package ordered provides ordered key/value maps backed by three binary
// search tree variants that share one contract: an unbalanced BST, a
// height-balanced AVL tree and a randomized Treap.
//
// None of the trees are safe for concurrent use.
package ordered

import "fmt"

// Entry is a key/value pair produced by a traversal.
type Entry[K, V any] struct {
	Key   K
	Value V
}

func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}

// WalkFn is used when walking the tree. Takes a
// key and value, returning if iteration should
// be terminated.
type WalkFn[K, V any] func(k K, v V) bool

// Tree is the contract shared by BST, AVL and Treap.
type Tree[K, V any] interface {
	// Len is used to return the number of elements in the tree
	Len() int
	Clear()

	// Insert adds key with value. It returns false, without overwriting,
	// when key is already present.
	Insert(key K, value V) (bool, error)
	Contains(key K) (bool, error)
	Get(key K) (V, bool, error)
	// Delete removes key and returns the value it held.
	Delete(key K) (V, bool, error)

	Preorder() []Entry[K, V]
	Inorder() []Entry[K, V]
	Postorder() []Entry[K, V]
	LevelOrder() []Entry[K, V]

	// Walk visits entries in key order until fn returns true.
	Walk(fn WalkFn[K, V])
	Iterator() *Iterator[K, V]
	ReverseIterator() *ReverseIterator[K, V]
	Minimum() (Entry[K, V], bool)
	Maximum() (Entry[K, V], bool)
	// Height is -1 for an empty tree and 0 for a single node.
	Height() int
}

var (
	_ Tree[int, int] = (*BST[int, int])(nil)
	_ Tree[int, int] = (*AVL[int, int])(nil)
	_ Tree[int, int] = (*Treap[int, int])(nil)
)
