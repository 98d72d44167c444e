// File: seqx.go
// Title: Generic Sequence Utilities
// Description: Implements generic helpers over ordered slices: transformation,
//              search, and reordering. These are the companion operations for
//              working with split results and join inputs from the text
//              package, and are insertion-order preserving throughout.
// Author: htiek
// Version: v0.1.0
// Created: 2026-08-04
// Modified: 2026-08-04
//
// Change History:
// - 2026-08-04 v0.1.0: Initial implementation with core sequence utilities

package seqx

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Reduce reduces the slice to a single value using the provided function
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	if slice == nil || reducer == nil {
		return initial
	}

	result := initial
	for _, item := range slice {
		result = reducer(result, item)
	}
	return result
}

// Contains reports whether any element satisfies the predicate
func Contains[T any](slice []T, predicate func(T) bool) bool {
	return IndexOf(slice, predicate) != -1
}

// IndexOf returns the index of the first element satisfying the predicate,
// or -1 when there is none
func IndexOf[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}
	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// Reverse returns a new slice with the elements in reverse order
func Reverse[T any](slice []T) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, len(slice))
	for i, item := range slice {
		result[len(slice)-1-i] = item
	}
	return result
}

// Each calls the visitor for every element in order
func Each[T any](slice []T, visitor func(T)) {
	if visitor == nil {
		return
	}
	for _, item := range slice {
		visitor(item)
	}
}
