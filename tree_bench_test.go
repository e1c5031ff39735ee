// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"math/rand/v2"
	"testing"

	"github.com/hashicorp/go-uuid"
)

const datasetSize = 100000

func generateDataset(size int) []string {
	dataset := make([]string, size)
	for i := 0; i < size; i++ {
		uuid1, _ := uuid.GenerateUUID()
		dataset[i] = uuid1
	}
	return dataset
}

var benchTrees = map[string]func() Tree[string, int]{
	"BST":   func() Tree[string, int] { return NewBST[string, int]() },
	"AVL":   func() Tree[string, int] { return NewAVL[string, int]() },
	"Treap": func() Tree[string, int] { return NewTreap[string, int]() },
}

func BenchmarkMixedOperations(b *testing.B) {
	dataset := generateDataset(datasetSize)
	for name, newTree := range benchTrees {
		b.Run(name, func(b *testing.B) {
			tree := newTree()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key := dataset[i%datasetSize]

				// Randomly choose an operation
				switch rand.IntN(3) {
				case 0:
					tree.Insert(key, i)
				case 1:
					tree.Get(key)
				case 2:
					tree.Delete(key)
				}
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	for name, newTree := range benchTrees {
		b.Run(name, func(b *testing.B) {
			tree := newTree()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				uuid1, _ := uuid.GenerateUUID()
				tree.Insert(uuid1, n)
			}
		})
	}
}

func BenchmarkSearch(b *testing.B) {
	for name, newTree := range benchTrees {
		b.Run(name, func(b *testing.B) {
			tree := newTree()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				uuid1, _ := uuid.GenerateUUID()
				tree.Insert(uuid1, n)
				tree.Get(uuid1)
			}
		})
	}
}

func BenchmarkDelete(b *testing.B) {
	for name, newTree := range benchTrees {
		b.Run(name, func(b *testing.B) {
			tree := newTree()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				uuid1, _ := uuid.GenerateUUID()
				tree.Insert(uuid1, n)
				tree.Delete(uuid1)
			}
		})
	}
}

func BenchmarkSequentialInsert(b *testing.B) {
	trees := map[string]func() Tree[int, int]{
		"AVL":   func() Tree[int, int] { return NewAVL[int, int]() },
		"Treap": func() Tree[int, int] { return NewTreap[int, int]() },
	}
	for name, newTree := range trees {
		b.Run(name, func(b *testing.B) {
			tree := newTree()
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				tree.Insert(n, n)
			}
		})
	}
}
