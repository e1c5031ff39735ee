// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

type avlNode[K, V any] struct {
	key    K
	value  V
	parent *avlNode[K, V]
	left   *avlNode[K, V]
	right  *avlNode[K, V]
	height int
}

func newAVLNode[K, V any](key K, value V) *avlNode[K, V] {
	return &avlNode[K, V]{key: key, value: value}
}

func (n *avlNode[K, V]) getKey() K {
	return n.key
}

func (n *avlNode[K, V]) getValue() V {
	return n.value
}

func (n *avlNode[K, V]) getLeft() node[K, V] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *avlNode[K, V]) getRight() node[K, V] {
	if n.right == nil {
		return nil
	}
	return n.right
}

func (n *avlNode[K, V]) setLeft(child *avlNode[K, V]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

func (n *avlNode[K, V]) setRight(child *avlNode[K, V]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

// safeHeight is -1 for an absent subtree.
func (n *avlNode[K, V]) safeHeight() int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *avlNode[K, V]) updateHeight() {
	n.height = 1 + max(n.left.safeHeight(), n.right.safeHeight())
}

// balance is height(left) - height(right).
func (n *avlNode[K, V]) balance() int {
	if n == nil {
		return 0
	}
	return n.left.safeHeight() - n.right.safeHeight()
}

func (n *avlNode[K, V]) maximum() *avlNode[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *avlNode[K, V]) minimum() *avlNode[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}
