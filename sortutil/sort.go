// Copyright 2025 go-sortutil Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sortutil

import "cmp"

//go:generate go run ../cmd/netgen -max 8 -pkg sortutil -output zsortnet.go

// Thresholds for different sorting strategies.
const (
	// sortNetworkThreshold: use a compare-exchange network for slices this
	// size or smaller.
	sortNetworkThreshold = 8

	// sortInsertionThreshold: use insertion sort for slices this size or
	// smaller.
	sortInsertionThreshold = 16
)

// Less reports whether a orders before b. It must define a strict weak
// ordering over the element type; Sort and friends behave arbitrarily (or
// panic under the ordercheck build tag) when it does not.
type Less[T any] func(a, b T) bool

// Ascending is the natural ascending-order comparator for ordered types.
func Ascending[T cmp.Ordered](a, b T) bool { return a < b }

// Descending is the natural descending-order comparator for ordered types.
func Descending[T cmp.Ordered](a, b T) bool { return b < a }

// Sort sorts data in-place so that it is non-decreasing under less.
// The sort is not stable: elements that compare equal may be reordered
// relative to each other. Time is O(n log n) in the worst case.
func Sort[T any](data []T, less Less[T]) {
	n := len(data)
	if n <= 1 {
		return
	}
	verifyOrder(data, less)
	sortImpl(data, less, maxDepth(n))
}

// IsSorted reports whether data is non-decreasing under less.
func IsSorted[T any](data []T, less Less[T]) bool {
	for i := len(data) - 1; i > 0; i-- {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// maxDepth returns the recursion budget before falling back to heapsort:
// 2 * floor(log2(n)).
func maxDepth(n int) int {
	depth := 0
	for tmp := n; tmp > 0; tmp >>= 1 {
		depth++
	}
	return depth * 2
}

// sortImpl is the recursive implementation of Sort.
func sortImpl[T any](data []T, less Less[T], depthLimit int) {
	n := len(data)

	if n <= 1 {
		return
	}

	// Use a sorting network for very small slices
	if n <= sortNetworkThreshold {
		sortNetwork(data, less)
		return
	}

	// Use insertion sort for small slices
	if n <= sortInsertionThreshold {
		sortInsertion(data, less)
		return
	}

	// Fallback to heapsort if recursion too deep
	if depthLimit == 0 {
		sortHeap(data, less)
		return
	}

	// Select pivot using sampled median
	pivot := pivotSampled(data, less)

	// Dutch national flag: data[:lt] < pivot, data[lt:gt] == pivot, data[gt:] > pivot
	lt, gt := partition3Way(data, pivot, less)

	// Recurse on partitions; the equal run is already in place
	if lt > 0 {
		sortImpl(data[:lt], less, depthLimit-1)
	}
	if gt < n {
		sortImpl(data[gt:], less, depthLimit-1)
	}
}

// sortInsertion is insertion sort for small slices. It is stable.
func sortInsertion[T any](data []T, less Less[T]) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && less(key, data[j]) {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

// sortHeap is heapsort for the O(n log n) worst-case guarantee.
func sortHeap[T any](data []T, less Less[T]) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Build max-heap
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, less, i, n)
	}

	// Extract elements
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, less, 0, i)
	}
}

func siftDown[T any](data []T, less Less[T], i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < n && less(data[largest], data[left]) {
			largest = left
		}
		if right < n && less(data[largest], data[right]) {
			largest = right
		}

		if largest == i {
			break
		}

		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
