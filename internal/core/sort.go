// Package core contains the scheduling engine: the task store, the
// stable ordering routine, the greedy feasibility scheduler, the
// reminder classifier, the completed-task archive, and configuration.
package core

import "cmp"

// SortByKey returns a new slice holding items ordered by the given
// key, ascending. The input slice is left untouched.
//
// The sort is a stable divide-and-conquer merge sort: the sequence is
// split into two halves, each half is sorted recursively, and the
// halves are merged by repeatedly taking the smaller-keyed head
// element. On key equality the left-half element is taken first, so
// elements with equal keys keep their original relative order.
func SortByKey[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	out := make([]T, len(items))
	copy(out, items)
	if len(out) <= 1 {
		return out
	}
	mid := len(out) / 2
	left := SortByKey(out[:mid], key)
	right := SortByKey(out[mid:], key)
	return mergeByKey(left, right, key)
}

// mergeByKey merges two key-ordered slices into one, preferring the
// left slice on ties.
func mergeByKey[T any, K cmp.Ordered](left, right []T, key func(T) K) []T {
	result := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if key(left[i]) <= key(right[j]) {
			result = append(result, left[i])
			i++
		} else {
			result = append(result, right[j])
			j++
		}
	}
	result = append(result, left[i:]...)
	result = append(result, right[j:]...)
	return result
}
