// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// priority is the heap key of a treap node. Higher priorities sit closer
// to the root.
type priority uint32

type treapNode[K, V any] struct {
	key      K
	value    V
	left     *treapNode[K, V]
	right    *treapNode[K, V]
	priority priority
	size     int
}

func newTreapNode[K, V any](key K, value V, p priority) *treapNode[K, V] {
	return &treapNode[K, V]{key: key, value: value, priority: p, size: 1}
}

func (n *treapNode[K, V]) getKey() K {
	return n.key
}

func (n *treapNode[K, V]) getValue() V {
	return n.value
}

func (n *treapNode[K, V]) getLeft() node[K, V] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *treapNode[K, V]) getRight() node[K, V] {
	if n.right == nil {
		return nil
	}
	return n.right
}

func (n *treapNode[K, V]) setLeft(child *treapNode[K, V]) {
	n.left = child
	n.calcSize()
}

func (n *treapNode[K, V]) setRight(child *treapNode[K, V]) {
	n.right = child
	n.calcSize()
}

func (n *treapNode[K, V]) safeSize() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *treapNode[K, V]) calcSize() {
	n.size = 1 + n.left.safeSize() + n.right.safeSize()
}
