// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var fixtureKeys = []int{50, 30, 70, 20, 40, 60, 80, 90, 100, 10}

func newFixtureBST(t *testing.T) *BST[int, string] {
	t.Helper()
	tree := NewBST[int, string]()
	for _, k := range fixtureKeys {
		ok, err := tree.Insert(k, cardinal(k))
		require.NoError(t, err)
		require.True(t, ok)
	}
	return tree
}

func TestBST_Traversals(t *testing.T) {
	t.Parallel()

	tree := newFixtureBST(t)
	require.Equal(t, 10, tree.Len())
	require.Equal(t, []int{50, 30, 20, 10, 40, 70, 60, 80, 90, 100}, keysOf(tree.Preorder()))
	require.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, keysOf(tree.Inorder()))
	require.Equal(t, []int{10, 20, 40, 30, 60, 100, 90, 80, 70, 50}, keysOf(tree.Postorder()))
	require.Equal(t, []int{50, 30, 70, 20, 40, 60, 80, 10, 90, 100}, keysOf(tree.LevelOrder()))
	require.Equal(t, 4, tree.Height())
	verifyBST(t, tree)
}

func TestBST_DeleteTwoChildrenUsesPredecessor(t *testing.T) {
	t.Parallel()

	tree := newFixtureBST(t)
	old, found, err := tree.Delete(30)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, cardinal(30), old)

	require.Equal(t, 9, tree.Len())
	require.Equal(t, []int{50, 20, 10, 40, 70, 60, 80, 90, 100}, keysOf(tree.Preorder()))
	require.Equal(t, []int{10, 20, 40, 50, 60, 70, 80, 90, 100}, keysOf(tree.Inorder()))
	require.Equal(t, []int{10, 40, 20, 60, 100, 90, 80, 70, 50}, keysOf(tree.Postorder()))
	require.Equal(t, []int{50, 20, 70, 10, 40, 60, 80, 90, 100}, keysOf(tree.LevelOrder()))

	// The moved entry keeps its own value.
	v, found, err := tree.Get(20)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, cardinal(20), v)
	verifyBST(t, tree)
}

func TestBST_DeleteShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		desc     string
		key      int
		preorder []int
	}{
		{"leaf", 10, []int{50, 30, 20, 40, 70, 60, 80, 90, 100}},
		{"only right child", 80, []int{50, 30, 20, 10, 40, 70, 60, 90, 100}},
		{"only left child", 20, []int{50, 30, 10, 40, 70, 60, 80, 90, 100}},
		{"root", 50, []int{40, 30, 20, 10, 70, 60, 80, 90, 100}},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			tree := newFixtureBST(t)
			_, found, err := tree.Delete(tc.key)
			require.NoError(t, err)
			require.True(t, found)
			require.Equal(t, tc.preorder, keysOf(tree.Preorder()))
			verifyBST(t, tree)
		})
	}
}

func TestBST_DeleteDownToEmpty(t *testing.T) {
	t.Parallel()

	tree := newFixtureBST(t)
	for _, k := range fixtureKeys {
		_, found, err := tree.Delete(k)
		require.NoError(t, err)
		require.True(t, found)
		verifyBST(t, tree)
	}
	require.Zero(t, tree.Len())
	require.Nil(t, tree.root)
	require.Equal(t, -1, tree.Height())
	require.Empty(t, tree.LevelOrder())
}

func TestBST_SequentialInsertDegenerates(t *testing.T) {
	t.Parallel()

	tree := NewBST[int, struct{}]()
	for i := 0; i < 1000; i++ {
		_, err := tree.Insert(i, struct{}{})
		require.NoError(t, err)
	}
	require.Equal(t, 999, tree.Height())
	verifyBST(t, tree)
}

func cardinal(k int) string {
	names := map[int]string{
		10: "ten", 20: "twenty", 30: "thirty", 40: "forty", 50: "fifty",
		60: "sixty", 70: "seventy", 80: "eighty", 90: "ninety", 100: "one hundred",
	}
	return names[k]
}
