// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import "golang.org/x/exp/constraints"

// BST is an unbalanced binary search tree. Operations cost O(height), which
// degrades to O(n) when keys arrive in sorted order.
type BST[K, V any] struct {
	base[K]
	root *bstNode[K, V]
	size int
}

// NewBST returns an empty BST ordered by the natural order of K.
func NewBST[K constraints.Ordered, V any](opts ...Option) *BST[K, V] {
	return NewBSTFunc[K, V](compareOrdered[K], opts...)
}

// NewBSTFunc returns an empty BST ordered by cmp.
func NewBSTFunc[K, V any](cmp CompareFn[K], opts ...Option) *BST[K, V] {
	return &BST[K, V]{base: newBase(cmp, newConfig(opts))}
}

func (t *BST[K, V]) Len() int {
	return t.size
}

func (t *BST[K, V]) Clear() {
	t.logger.Debug("clearing tree", "kind", "bst", "size", t.size)
	t.root = nil
	t.size = 0
}

func (t *BST[K, V]) Insert(key K, value V) (bool, error) {
	if err := t.checkKey("insert", key); err != nil {
		return false, err
	}
	n, parent, c := t.locate(key)
	if n != nil {
		return false, nil
	}
	leaf := &bstNode[K, V]{key: key, value: value}
	switch {
	case parent == nil:
		t.setRoot(leaf)
	case c < 0:
		parent.setLeft(leaf)
	default:
		parent.setRight(leaf)
	}
	t.size++
	return true, nil
}

func (t *BST[K, V]) Contains(key K) (bool, error) {
	if err := t.checkKey("contains", key); err != nil {
		return false, err
	}
	n, _, _ := t.locate(key)
	return n != nil, nil
}

func (t *BST[K, V]) Get(key K) (V, bool, error) {
	var zero V
	if err := t.checkKey("get", key); err != nil {
		return zero, false, err
	}
	n, _, _ := t.locate(key)
	if n == nil {
		return zero, false, nil
	}
	return n.value, true, nil
}

func (t *BST[K, V]) Delete(key K) (V, bool, error) {
	var zero V
	if err := t.checkKey("delete", key); err != nil {
		return zero, false, err
	}
	n, _, _ := t.locate(key)
	if n == nil {
		return zero, false, nil
	}
	old := n.value
	t.delete(n)
	t.size--
	return old, true, nil
}

// locate descends from the root. It returns the node holding key, or nil
// together with the node whose missing child key belongs in and the last
// comparison made against it.
func (t *BST[K, V]) locate(key K) (n, parent *bstNode[K, V], c int) {
	n = t.root
	for n != nil {
		c = t.cmp(key, n.key)
		if c == 0 {
			return n, n.parent, 0
		}
		parent = n
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return nil, parent, c
}

// delete never splices out a node with two children: it moves the in-order
// predecessor's entry into x and removes the predecessor instead, which has
// no right child.
func (t *BST[K, V]) delete(x *bstNode[K, V]) {
	if x.left != nil && x.right != nil {
		pred := x.left.maximum()
		x.key, x.value = pred.key, pred.value
		x = pred
	}

	child := x.left
	if child == nil {
		child = x.right
	}
	t.replaceChild(x.parent, x, child)

	x.parent = nil
	x.left = nil
	x.right = nil
}

func (t *BST[K, V]) setRoot(x *bstNode[K, V]) {
	t.root = x
	if x != nil {
		x.parent = nil
	}
}

func (t *BST[K, V]) replaceChild(p, old, x *bstNode[K, V]) {
	switch {
	case p == nil:
		if t.root != old {
			panic("corrupt bst")
		}
		t.setRoot(x)
	case p.left == old:
		p.setLeft(x)
	case p.right == old:
		p.setRight(x)
	default:
		panic("corrupt bst")
	}
}

func (t *BST[K, V]) rootNode() node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root
}

func (t *BST[K, V]) Preorder() []Entry[K, V] {
	return preorder(t.rootNode(), make([]Entry[K, V], 0, t.size))
}

func (t *BST[K, V]) Inorder() []Entry[K, V] {
	return inorder(t.rootNode(), make([]Entry[K, V], 0, t.size))
}

func (t *BST[K, V]) Postorder() []Entry[K, V] {
	return postorder(t.rootNode(), make([]Entry[K, V], 0, t.size))
}

func (t *BST[K, V]) LevelOrder() []Entry[K, V] {
	return levelOrder(t.rootNode(), make([]Entry[K, V], 0, t.size))
}

// Walk is used to walk the tree
func (t *BST[K, V]) Walk(fn WalkFn[K, V]) {
	recursiveWalk(t.rootNode(), fn)
}

func (t *BST[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(t.rootNode())
}

func (t *BST[K, V]) ReverseIterator() *ReverseIterator[K, V] {
	return newReverseIterator(t.rootNode())
}

func (t *BST[K, V]) Minimum() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}
	return entryOf[K, V](t.root.minimum())
}

func (t *BST[K, V]) Maximum() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}
	return entryOf[K, V](t.root.maximum())
}

func (t *BST[K, V]) Height() int {
	return subtreeHeight(t.rootNode())
}
