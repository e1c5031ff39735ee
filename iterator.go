// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// Iterator is used to iterate over the entries of a tree in ascending
// key order. It holds the path from the root to the next entry, so the
// tree must not be modified while an iterator is in use.
type Iterator[K, V any] struct {
	stack []node[K, V]
}

func newIterator[K, V any](root node[K, V]) *Iterator[K, V] {
	i := &Iterator[K, V]{}
	i.pushLeft(root)
	return i
}

func (i *Iterator[K, V]) pushLeft(n node[K, V]) {
	for n != nil {
		i.stack = append(i.stack, n)
		n = n.getLeft()
	}
}

// Next returns the next entry in order, or false once the iterator is
// exhausted.
func (i *Iterator[K, V]) Next() (K, V, bool) {
	if len(i.stack) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	n := i.stack[len(i.stack)-1]
	i.stack[len(i.stack)-1] = nil
	i.stack = i.stack[:len(i.stack)-1]
	i.pushLeft(n.getRight())
	return n.getKey(), n.getValue(), true
}
