// Package sets provides eager set operations over slices.
//
// Slices stand in for sets: elements are compared by equality, duplicates
// are tolerated on input and removed from output, and results keep the
// first-occurrence order of their inputs instead of being unordered. For
// lazy element streams see the seq package.
package sets

import "github.com/samber/lo"

// Dedupe returns s without duplicate elements.
func Dedupe[T comparable](s []T) []T {
	return lo.Uniq(s)
}

// Duplicates returns the elements that occur more than once in s, each
// reported once.
func Duplicates[T comparable](s []T) []T {
	return lo.FindDuplicates(s)
}

// Intersect returns the elements of a that also occur in b.
func Intersect[T comparable](a, b []T) []T {
	return lo.Intersect(a, b)
}

// Difference returns the elements of a that do not occur in b.
func Difference[T comparable](a, b []T) []T {
	left, _ := lo.Difference(a, b)
	return left
}

// SymmetricDifference returns the elements that occur in exactly one of
// a and b, elements of a first.
func SymmetricDifference[T comparable](a, b []T) []T {
	left, right := lo.Difference(a, b)
	return append(left, right...)
}

// Union returns the deduplicated concatenation of the given slices.
func Union[T comparable](ss ...[]T) []T {
	return lo.Union(ss...)
}

// IsSubset reports whether every element of sub occurs in super.
func IsSubset[T comparable](sub, super []T) bool {
	return lo.Every(super, sub)
}

// IsSuperset reports whether super contains every element of sub.
func IsSuperset[T comparable](super, sub []T) bool {
	return lo.Every(super, sub)
}

// IsDisjoint reports whether a and b share no elements.
func IsDisjoint[T comparable](a, b []T) bool {
	return lo.None(a, b)
}
