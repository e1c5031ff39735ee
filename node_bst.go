// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

type bstNode[K, V any] struct {
	key    K
	value  V
	parent *bstNode[K, V]
	left   *bstNode[K, V]
	right  *bstNode[K, V]
}

func (n *bstNode[K, V]) getKey() K {
	return n.key
}

func (n *bstNode[K, V]) getValue() V {
	return n.value
}

func (n *bstNode[K, V]) getLeft() node[K, V] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *bstNode[K, V]) getRight() node[K, V] {
	if n.right == nil {
		return nil
	}
	return n.right
}

func (n *bstNode[K, V]) setLeft(child *bstNode[K, V]) {
	n.left = child
	if child != nil {
		child.parent = n
	}
}

func (n *bstNode[K, V]) setRight(child *bstNode[K, V]) {
	n.right = child
	if child != nil {
		child.parent = n
	}
}

func (n *bstNode[K, V]) maximum() *bstNode[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (n *bstNode[K, V]) minimum() *bstNode[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}
