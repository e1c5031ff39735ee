// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

// node is the read-only view the traversals need. Every balancing strategy
// has its own concrete node carrying only the fields it maintains.
//
// getLeft and getRight return a nil interface, never a typed nil, for a
// missing child.
type node[K, V any] interface {
	getKey() K
	getValue() V
	getLeft() node[K, V]
	getRight() node[K, V]
}
