// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func keysOf[K, V any](entries []Entry[K, V]) []K {
	keys := make([]K, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func requireStrictlyAscending[K, V any](t testing.TB, cmp CompareFn[K], entries []Entry[K, V]) {
	t.Helper()
	for i := 1; i < len(entries); i++ {
		require.Negative(t, cmp(entries[i-1].Key, entries[i].Key),
			"keys out of order at %d: %v then %v", i, entries[i-1].Key, entries[i].Key)
	}
}

// verifyBST checks parent links and returns the node count.
func verifyBST[K, V any](t testing.TB, tree *BST[K, V]) int {
	t.Helper()
	if tree.root != nil {
		require.Nil(t, tree.root.parent, "root has a parent")
	}
	var walk func(n *bstNode[K, V]) int
	walk = func(n *bstNode[K, V]) int {
		if n == nil {
			return 0
		}
		if n.left != nil {
			require.Same(t, n, n.left.parent, "left child of %v has wrong parent", n.key)
		}
		if n.right != nil {
			require.Same(t, n, n.right.parent, "right child of %v has wrong parent", n.key)
		}
		return 1 + walk(n.left) + walk(n.right)
	}
	count := walk(tree.root)
	require.Equal(t, tree.Len(), count)
	requireStrictlyAscending(t, tree.cmp, tree.Inorder())
	return count
}

// verifyAVL checks cached heights, the balance bound and parent links.
func verifyAVL[K, V any](t testing.TB, tree *AVL[K, V]) {
	t.Helper()
	if tree.root != nil {
		require.Nil(t, tree.root.parent, "root has a parent")
	}
	var walk func(n *avlNode[K, V]) (height, count int)
	walk = func(n *avlNode[K, V]) (int, int) {
		if n == nil {
			return -1, 0
		}
		if n.left != nil {
			require.Same(t, n, n.left.parent, "left child of %v has wrong parent", n.key)
		}
		if n.right != nil {
			require.Same(t, n, n.right.parent, "right child of %v has wrong parent", n.key)
		}
		lh, lc := walk(n.left)
		rh, rc := walk(n.right)
		require.LessOrEqual(t, lh-rh, 1, "left heavy at %v", n.key)
		require.GreaterOrEqual(t, lh-rh, -1, "right heavy at %v", n.key)
		h := 1 + max(lh, rh)
		require.Equal(t, h, n.height, "stale height at %v", n.key)
		return h, 1 + lc + rc
	}
	_, count := walk(tree.root)
	require.Equal(t, tree.Len(), count)
	requireStrictlyAscending(t, tree.cmp, tree.Inorder())
}

// verifyTreap checks the heap order on priorities and the cached sizes.
func verifyTreap[K, V any](t testing.TB, tree *Treap[K, V]) {
	t.Helper()
	var walk func(n *treapNode[K, V]) int
	walk = func(n *treapNode[K, V]) int {
		if n == nil {
			return 0
		}
		if n.left != nil {
			require.GreaterOrEqual(t, uint32(n.priority), uint32(n.left.priority), "heap order broken at %v", n.key)
		}
		if n.right != nil {
			require.GreaterOrEqual(t, uint32(n.priority), uint32(n.right.priority), "heap order broken at %v", n.key)
		}
		size := 1 + walk(n.left) + walk(n.right)
		require.Equal(t, size, n.size, "stale size at %v", n.key)
		return size
	}
	count := walk(tree.root)
	require.Equal(t, tree.Len(), count)
	requireStrictlyAscending(t, tree.cmp, tree.Inorder())
}
