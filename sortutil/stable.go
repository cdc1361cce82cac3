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

// Stable sorts data in-place so that it is non-decreasing under less,
// keeping elements that compare equal in their original relative order.
// Time is O(n log n); one scratch buffer of len(data) is allocated for the
// duration of the call.
func Stable[T any](data []T, less Less[T]) {
	n := len(data)
	if n <= 1 {
		return
	}
	verifyOrder(data, less)
	if n <= sortInsertionThreshold {
		sortInsertion(data, less)
		return
	}
	mergeSort(data, make([]T, n), less)
}

// mergeSort is top-down merge sort; scratch mirrors data in length.
func mergeSort[T any](data, scratch []T, less Less[T]) {
	n := len(data)
	if n <= sortInsertionThreshold {
		sortInsertion(data, less)
		return
	}

	mid := n / 2
	mergeSort(data[:mid], scratch[:mid], less)
	mergeSort(data[mid:], scratch[mid:], less)

	// Halves already in order, nothing to merge
	if !less(data[mid], data[mid-1]) {
		return
	}

	merge(data, mid, scratch, less)
}

// merge merges the sorted halves data[:mid] and data[mid:] in place,
// staging the left half in scratch. An element from the right half is
// taken only when it orders strictly before the left candidate, which
// keeps equal elements stable.
func merge[T any](data []T, mid int, scratch []T, less Less[T]) {
	copy(scratch[:mid], data[:mid])

	i, j, k := 0, mid, 0
	for i < mid && j < len(data) {
		if less(data[j], scratch[i]) {
			data[k] = data[j]
			j++
		} else {
			data[k] = scratch[i]
			i++
		}
		k++
	}
	for i < mid {
		data[k] = scratch[i]
		i++
		k++
	}
	// Remaining right-half elements are already in place
}
