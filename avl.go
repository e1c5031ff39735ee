// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import "golang.org/x/exp/constraints"

// AVL is a height-balanced binary search tree: the heights of the two
// subtrees of every node differ by at most one.
type AVL[K, V any] struct {
	base[K]
	root *avlNode[K, V]
	size int
}

// NewAVL returns an empty AVL tree ordered by the natural order of K.
func NewAVL[K constraints.Ordered, V any](opts ...Option) *AVL[K, V] {
	return NewAVLFunc[K, V](compareOrdered[K], opts...)
}

// NewAVLFunc returns an empty AVL tree ordered by cmp.
func NewAVLFunc[K, V any](cmp CompareFn[K], opts ...Option) *AVL[K, V] {
	return &AVL[K, V]{base: newBase(cmp, newConfig(opts))}
}

func (t *AVL[K, V]) Len() int {
	return t.size
}

func (t *AVL[K, V]) Clear() {
	t.logger.Debug("clearing tree", "kind", "avl", "size", t.size)
	t.root = nil
	t.size = 0
}

func (t *AVL[K, V]) Insert(key K, value V) (bool, error) {
	if err := t.checkKey("insert", key); err != nil {
		return false, err
	}
	root, inserted := t.insert(t.root, key, value)
	if !inserted {
		return false, nil
	}
	t.setRoot(root)
	t.size++
	return true, nil
}

func (t *AVL[K, V]) Contains(key K) (bool, error) {
	if err := t.checkKey("contains", key); err != nil {
		return false, err
	}
	return t.get(key) != nil, nil
}

func (t *AVL[K, V]) Get(key K) (V, bool, error) {
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

func (t *AVL[K, V]) Delete(key K) (V, bool, error) {
	var zero V
	if err := t.checkKey("delete", key); err != nil {
		return zero, false, err
	}
	root, old, deleted := t.delete(t.root, key)
	if !deleted {
		return zero, false, nil
	}
	t.setRoot(root)
	t.size--
	return old, true, nil
}

func (t *AVL[K, V]) get(key K) *avlNode[K, V] {
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

func (t *AVL[K, V]) setRoot(x *avlNode[K, V]) {
	t.root = x
	if x != nil {
		x.parent = nil
	}
}

// insert adds key below n and returns the rebalanced subtree root. Nothing
// is touched when key already exists.
func (t *AVL[K, V]) insert(n *avlNode[K, V], key K, value V) (*avlNode[K, V], bool) {
	if n == nil {
		return newAVLNode(key, value), true
	}

	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		child, ok := t.insert(n.left, key, value)
		if !ok {
			return n, false
		}
		n.setLeft(child)
	case c > 0:
		child, ok := t.insert(n.right, key, value)
		if !ok {
			return n, false
		}
		n.setRight(child)
	default:
		return n, false
	}

	n.updateHeight()
	return t.restructure(n, key), true
}

// restructure restores the balance of n after key was inserted somewhere
// below it. The side of the near child the key went to picks between a
// single and a double rotation.
func (t *AVL[K, V]) restructure(n *avlNode[K, V], key K) *avlNode[K, V] {
	balance := n.balance()
	switch {
	case balance > 1 && t.cmp(key, n.left.key) < 0:
		// LL
		return rotateRight(n)
	case balance > 1 && t.cmp(key, n.left.key) > 0:
		// LR
		n.setLeft(rotateLeft(n.left))
		return rotateRight(n)
	case balance < -1 && t.cmp(key, n.right.key) > 0:
		// RR
		return rotateLeft(n)
	case balance < -1 && t.cmp(key, n.right.key) < 0:
		// RL
		n.setRight(rotateRight(n.right))
		return rotateLeft(n)
	}
	return n
}

// delete removes key from the subtree at n and returns the new subtree
// root along with the removed value.
func (t *AVL[K, V]) delete(n *avlNode[K, V], key K) (*avlNode[K, V], V, bool) {
	var zero V
	if n == nil {
		return nil, zero, false
	}

	var old V
	c := t.cmp(key, n.key)
	switch {
	case c < 0:
		child, v, ok := t.delete(n.left, key)
		if !ok {
			return n, zero, false
		}
		n.setLeft(child)
		old = v
	case c > 0:
		child, v, ok := t.delete(n.right, key)
		if !ok {
			return n, zero, false
		}
		n.setRight(child)
		old = v
	default:
		old = n.value
		if n.left == nil || n.right == nil {
			child := n.left
			if child == nil {
				child = n.right
			}
			if child != nil {
				child.parent = n.parent
			}
			n.parent, n.left, n.right = nil, nil, nil
			return child, old, true
		}
		// Two children: take over the predecessor's entry, then remove the
		// predecessor from the left subtree.
		pred := n.left.maximum()
		n.key, n.value = pred.key, pred.value
		child, _, _ := t.delete(n.left, pred.key)
		n.setLeft(child)
	}

	n.updateHeight()
	return rebalance(n), old, true
}

// rebalance restores the balance of n after a deletion below it. The
// removed key says nothing about the shape left behind, so the near
// child's own balance picks the rotation.
func rebalance[K, V any](n *avlNode[K, V]) *avlNode[K, V] {
	switch balance := n.balance(); {
	case balance > 1:
		if n.left.balance() < 0 {
			n.setLeft(rotateLeft(n.left))
		}
		return rotateRight(n)
	case balance < -1:
		if n.right.balance() > 0 {
			n.setRight(rotateRight(n.right))
		}
		return rotateLeft(n)
	}
	return n
}

// rotateRight rotates the subtree rooted at node y.
// turning (y (x a b) c) into (x a (y b c)).
func rotateRight[K, V any](y *avlNode[K, V]) *avlNode[K, V] {
	p := y.parent
	x := y.left
	b := x.right

	y.setLeft(b)
	x.setRight(y)
	x.parent = p

	y.updateHeight()
	x.updateHeight()
	return x
}

// rotateLeft rotates the subtree rooted at node x.
// turning (x a (y b c)) into (y (x a b) c).
func rotateLeft[K, V any](x *avlNode[K, V]) *avlNode[K, V] {
	p := x.parent
	y := x.right
	b := y.left

	x.setRight(b)
	y.setLeft(x)
	y.parent = p

	x.updateHeight()
	y.updateHeight()
	return y
}

func (t *AVL[K, V]) rootNode() node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root
}

func (t *AVL[K, V]) Preorder() []Entry[K, V] {
	return preorder(t.rootNode(), make([]Entry[K, V], 0, t.size))
}

func (t *AVL[K, V]) Inorder() []Entry[K, V] {
	return inorder(t.rootNode(), make([]Entry[K, V], 0, t.size))
}

func (t *AVL[K, V]) Postorder() []Entry[K, V] {
	return postorder(t.rootNode(), make([]Entry[K, V], 0, t.size))
}

func (t *AVL[K, V]) LevelOrder() []Entry[K, V] {
	return levelOrder(t.rootNode(), make([]Entry[K, V], 0, t.size))
}

// Walk is used to walk the tree
func (t *AVL[K, V]) Walk(fn WalkFn[K, V]) {
	recursiveWalk(t.rootNode(), fn)
}

func (t *AVL[K, V]) Iterator() *Iterator[K, V] {
	return newIterator(t.rootNode())
}

func (t *AVL[K, V]) ReverseIterator() *ReverseIterator[K, V] {
	return newReverseIterator(t.rootNode())
}

func (t *AVL[K, V]) Minimum() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}
	return entryOf[K, V](t.root.minimum())
}

func (t *AVL[K, V]) Maximum() (Entry[K, V], bool) {
	if t.root == nil {
		return Entry[K, V]{}, false
	}
	return entryOf[K, V](t.root.maximum())
}

// Height reads the cached height of the root.
func (t *AVL[K, V]) Height() int {
	return t.root.safeHeight()
}
