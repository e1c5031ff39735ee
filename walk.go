// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

func preorder[K, V any](n node[K, V], out []Entry[K, V]) []Entry[K, V] {
	if n == nil {
		return out
	}
	out = append(out, Entry[K, V]{Key: n.getKey(), Value: n.getValue()})
	out = preorder(n.getLeft(), out)
	return preorder(n.getRight(), out)
}

func inorder[K, V any](n node[K, V], out []Entry[K, V]) []Entry[K, V] {
	if n == nil {
		return out
	}
	out = inorder(n.getLeft(), out)
	out = append(out, Entry[K, V]{Key: n.getKey(), Value: n.getValue()})
	return inorder(n.getRight(), out)
}

func postorder[K, V any](n node[K, V], out []Entry[K, V]) []Entry[K, V] {
	if n == nil {
		return out
	}
	out = postorder(n.getLeft(), out)
	out = postorder(n.getRight(), out)
	return append(out, Entry[K, V]{Key: n.getKey(), Value: n.getValue()})
}

// levelOrder is a breadth-first walk, left to right within a level.
func levelOrder[K, V any](n node[K, V], out []Entry[K, V]) []Entry[K, V] {
	if n == nil {
		return out
	}
	queue := []node[K, V]{n}
	for len(queue) > 0 {
		curr := queue[0]
		queue[0] = nil
		queue = queue[1:]
		out = append(out, Entry[K, V]{Key: curr.getKey(), Value: curr.getValue()})
		if l := curr.getLeft(); l != nil {
			queue = append(queue, l)
		}
		if r := curr.getRight(); r != nil {
			queue = append(queue, r)
		}
	}
	return out
}

// recursiveWalk is used to do an in-order walk of a node
// recursively. Returns true if the walk should be aborted
func recursiveWalk[K, V any](n node[K, V], fn WalkFn[K, V]) bool {
	if n == nil {
		return false
	}
	if recursiveWalk(n.getLeft(), fn) {
		return true
	}
	if fn(n.getKey(), n.getValue()) {
		return true
	}
	return recursiveWalk(n.getRight(), fn)
}

// subtreeHeight counts edges on the longest downward path, -1 for nil.
func subtreeHeight[K, V any](n node[K, V]) int {
	if n == nil {
		return -1
	}
	return 1 + max(subtreeHeight(n.getLeft()), subtreeHeight(n.getRight()))
}

func entryOf[K, V any](n node[K, V]) (Entry[K, V], bool) {
	if n == nil {
		return Entry[K, V]{}, false
	}
	return Entry[K, V]{Key: n.getKey(), Value: n.getValue()}, true
}
