// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package ordered

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// ErrInvalidKey is returned when a key holds no value (a nil pointer,
// interface, map, slice, func or chan) and so cannot be ordered.
var ErrInvalidKey = errors.New("ordered: invalid key")

// CompareFn orders two keys. It returns a negative number when a < b,
// zero when a == b and a positive number when a > b.
type CompareFn[K any] func(a, b K) int

// compareOrdered is the natural order. NaN sorts before every other value
// and is equal to itself, which keeps the order total for floats.
func compareOrdered[K constraints.Ordered](a, b K) int {
	aNaN := a != a
	bNaN := b != b
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// keyCheck rejects nil-valued keys. Whether K can hold nil at all is
// resolved once so that value types never pay for reflection.
type keyCheck[K any] struct {
	nilable bool
	name    string
}

func newKeyCheck[K any]() keyCheck[K] {
	typ := reflect.TypeFor[K]()
	switch typ.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return keyCheck[K]{nilable: true, name: typ.String()}
	}
	return keyCheck[K]{name: typ.String()}
}

func (c keyCheck[K]) check(key K) error {
	if !c.nilable {
		return nil
	}
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return fmt.Errorf("%w: nil %s", ErrInvalidKey, c.name)
	}
	// An interface-typed K may carry a non-nilable dynamic value.
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return fmt.Errorf("%w: nil %s", ErrInvalidKey, c.name)
		}
	}
	return nil
}
