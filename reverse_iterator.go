// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// ReverseIterator is used to iterate over the entries of a tree
// in reverse in-order.
type ReverseIterator[K, V any] struct {
	stack []node[K, V]
}

func newReverseIterator[K, V any](root node[K, V]) *ReverseIterator[K, V] {
	ri := &ReverseIterator[K, V]{}
	ri.pushRight(root)
	return ri
}

func (ri *ReverseIterator[K, V]) pushRight(n node[K, V]) {
	for n != nil {
		ri.stack = append(ri.stack, n)
		n = n.getRight()
	}
}

// Previous returns the previous entry in reverse order
func (ri *ReverseIterator[K, V]) Previous() (K, V, bool) {
	if len(ri.stack) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	n := ri.stack[len(ri.stack)-1]
	ri.stack[len(ri.stack)-1] = nil
	ri.stack = ri.stack[:len(ri.stack)-1]
	ri.pushRight(n.getLeft())
	return n.getKey(), n.getValue(), true
}
