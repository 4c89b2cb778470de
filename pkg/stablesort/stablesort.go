// SPDX-License-Identifier: MPL-2.0

// Package stablesort reorders a slice by an integer class while keeping the
// relative order of elements that share a class.
package stablesort

import (
	"cmp"

	"golang.org/x/exp/slices"
)

type ranked[T any] struct {
	elem  T
	class int
	index int
}

// By sorts s in place by ascending class(elem). Elements with equal class keep
// their original relative order; the original index is the explicit tiebreak,
// so the result does not depend on the stability of the underlying sort.
func By[T any](s []T, class func(T) int) {
	if len(s) < 2 {
		return
	}

	tagged := make([]ranked[T], len(s))
	for i, elem := range s {
		tagged[i] = ranked[T]{elem: elem, class: class(elem), index: i}
	}

	slices.SortFunc(tagged, func(a, b ranked[T]) int {
		return cmp.Or(cmp.Compare(a.class, b.class), cmp.Compare(a.index, b.index))
	})

	for i := range tagged {
		s[i] = tagged[i].elem
	}
}

// Sorted returns a sorted copy of s, leaving s untouched.
func Sorted[T any](s []T, class func(T) int) []T {
	out := slices.Clone(s)
	By(out, class)
	return out
}
