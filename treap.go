// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// The implementation is a treap. See:
// https://en.wikipedia.org/wiki/Treap
// https://faculty.washington.edu/aragon/pubs/rst89.pdf

// Treap is a binary search tree on keys and a max-heap on random node
// priorities. Insertion splits and deletion merges; no rotations are used.
// The expected height is O(log n) whatever the insertion order.
type Treap[K, V any] struct {
	base[K]
	root *treapNode[K, V]
	rng  *rand.Rand
}

// NewTreap returns an empty Treap ordered by the natural order of K.
func NewTreap[K constraints.Ordered, V any](opts ...Option) *Treap[K, V] {
	return NewTreapFunc[K, V](compareOrdered[K], opts...)
}

// NewTreapFunc returns an empty Treap ordered by cmp.
func NewTreapFunc[K, V any](cmp CompareFn[K], opts ...Option) *Treap[K, V] {
	c := newConfig(opts)
	return &Treap[K, V]{base: newBase(cmp, c), rng: c.rng}
}

// Len reads the size cached at the root.
func (t *Treap[K, V]) Len() int {
	return t.root.safeSize()
}

func (t *Treap[K, V]) Clear() {
	t.logger.Debug("clearing tree", "kind", "treap", "size", t.Len())
	t.root = nil
}

func (t *Treap[K, V]) Insert(key K, value V) (bool, error) {
	if err := t.checkKey("insert", key); err != nil {
		return false, err
	}
	// split would push an existing key into the right half and duplicate it
	if t.get(key) != nil {
		return false, nil
	}
	t.root = t.insert(t.root, newTreapNode(key, value, t.nextPriority()))
	return true, nil
}

func (t *Treap[K, V]) Contains(key K) (bool, error) {
	if err := t.checkKey("contains", key); err != nil {
		return false, err
	}
	return t.get(key) != nil, nil
}

func (t *Treap[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if err := t.checkKey("get", key); err != nil {
		return zero, false, err
	}
	n := t.get(key)
	if n == nil {
		return zero, false, nil
	}
	return n.value, true, nil
}

func (t *Treap[K, V]) Delete(key K) (V, bool, error) {
	var zero V
	if err := t.checkKey("delete", key); err != nil {
		return zero, false, err
	}
	n := t.get(key)
	if n == nil {
		return zero, false, nil
	}
	old := n.value
	t.root = t.delete(t.root, key)
	return old, true, nil
}

func (t *Treap[K, V]) nextPriority() priority {
	if t.rng != nil {
		return priority(t.rng.Uint32())
	}
	return priority(rand.Uint32())
}

func (t *Treap[K, V]) get(key K) *treapNode[K, V] {
	n := t.root
	for n != nil {
		c := t.cmp(key, n.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil
}

// insert places x in the subtree at n and returns the new subtree root. x
// takes over the first position on the search path whose node has a lower
// priority, adopting the two halves of that subtree split at x's key.
func (t *Treap[K, V]) insert(n, x *treapNode[K, V]) *treapNode[K, V] {
	if n == nil {
		return x
	}
	if n.priority < x.priority {
		less, greater := t.split(n, x.key)
		x.setLeft(less)
		x.setRight(greater)
		return x
	}
	if t.cmp(x.key, n.key) < 0 {
		n.setLeft(t.insert(n.left, x))
	} else {
		n.setRight(t.insert(n.right, x))
	}
	return n
}

// split partitions the subtree at n into the keys less than key and the
// keys greater than or equal to it. Both halves keep heap order.
func (t *Treap[K, V]) split(n *treapNode[K, V], key K) (less, greater *treapNode[K, V]) {
	if n == nil {
		return nil, nil
	}
	if t.cmp(n.key, key) < 0 {
		l, r := t.split(n.right, key)
		n.setRight(l)
		return n, r
	}
	l, r := t.split(n.left, key)
	n.setLeft(r)
	return l, n
}

func (t *Treap[K, V]) delete(n *treapNode[K, V], key K) *treapNode[K, V] {
	if n == nil {
		return nil
	}
	c := t.cmp(key, n.key)
	switch {
	case c == 0:
		merged := merge(n.left, n.right)
		n.left, n.right = nil, nil
		return merged
	case c < 0:
		n.setLeft(t.delete(n.left, key))
	default:
		n.setRight(t.delete(n.right, key))
	}
	return n
}

// merge joins two subtrees where every key in a is less than every key in
// b. The root with the higher priority becomes the parent.
func merge[K, V any](a, b *treapNode[K, V]) *treapNode[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.priority < b.priority {
		b.setLeft(merge(a, b.left))
		return b
	}
	a.setRight(merge(a.right, b))
	return a
}

func (t *Treap[K, V]) rootNode() node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root
}

func (t *Treap[K, V]) Preorder() []Entry[K, V] {
	return preorder(t.rootNode(), make([]Entry[K, V], 0, t.Len()))
}

func (t *Treap[K, V]) Inorder() []Entry[K, V] {
	return inorder(t.rootNode(), make([]Entry[K, V], 0, t.Len()))
}

func (t *Treap[K, V]) Postorder() []Entry[K, V] {
	return postorder(t.rootNode(), make([]Entry[K, V], 0, t.Len()))
}

func (t *Treap[K, V]) LevelOrder() []Entry[K, V] {
	return levelOrder(t.rootNode(), make([]Entry[K, V], 0, t.Len()))
}

// Walk is used to walk the tree
func (t *Treap[K, V]) Walk(fn WalkFn[K, V]) {
	recursiveWalk(t.rootNode(), fn)
}

func (t *Treap[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(t.rootNode())
}

func (t *Treap[K, V]) ReverseIterator() *ReverseIterator[K, V] {
	return newReverseIterator(t.rootNode())
}

func (t *Treap[K, V]) Minimum() (Entry[K, V], bool) {
	n := t.root
	if n == nil {
		return Entry[K, V]{}, false
	}
	for n.left != nil {
		n = n.left
	}
	return entryOf[K, V](n)
}

func (t *Treap[K, V]) Maximum() (Entry[K, V], bool) {
	n := t.root
	if n == nil {
		return Entry[K, V]{}, false
	}
	for n.right != nil {
		n = n.right
	}
	return entryOf[K, V](n)
}

func (t *Treap[K, V]) Height() int {
	return subtreeHeight(t.rootNode())
}
