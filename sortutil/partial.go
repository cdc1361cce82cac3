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

import "fmt"

// PartialSort rearranges data so that data[:k] holds the k smallest
// elements under less in non-decreasing order; data[k:] holds the remaining
// elements in unspecified order. Time is O(n log k).
//
// Fails with ErrOutOfRange when k < 0 or k > len(data), before any element
// is moved. k == 0 is a no-op; k == len(data) is a full sort.
func PartialSort[T any](data []T, k int, less Less[T]) error {
	n := len(data)
	if k < 0 || k > n {
		return fmt.Errorf("partial sort boundary %d of %d elements: %w", k, n, ErrOutOfRange)
	}
	if k == 0 || n <= 1 {
		return nil
	}
	verifyOrder(data, less)

	if k == n {
		sortImpl(data, less, maxDepth(n))
		return nil
	}

	// Max-heap over the first k positions: the root is the largest of the
	// current k smallest candidates.
	for i := k/2 - 1; i >= 0; i-- {
		siftDown(data[:k], less, i, k)
	}

	// Any later element smaller than the root evicts it
	for i := k; i < n; i++ {
		if less(data[i], data[0]) {
			data[0], data[i] = data[i], data[0]
			siftDown(data[:k], less, 0, k)
		}
	}

	// Heap extraction leaves data[:k] in ascending order
	for i := k - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data[:k], less, 0, i)
	}
	return nil
}

// NthElement rearranges data so that data[k] is the element a full sort
// would place there: no element after position k orders before data[k], and
// no element before position k orders after it. The two sides are otherwise
// in unspecified order. Expected time is O(n).
//
// Fails with ErrOutOfRange when k < 0 or k > len(data), before any element
// is moved. k == len(data) is a past-the-end boundary and a no-op.
func NthElement[T any](data []T, k int, less Less[T]) error {
	n := len(data)
	if k < 0 || k > n {
		return fmt.Errorf("nth element boundary %d of %d elements: %w", k, n, ErrOutOfRange)
	}
	if n <= 1 || k == n {
		return nil
	}
	verifyOrder(data, less)

	nthElementImpl(data, k, less, maxDepth(n))
	return nil
}

func nthElementImpl[T any](data []T, k int, less Less[T], depthLimit int) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Small ranges and pathological pivot runs: sorting settles every position
	if depthLimit == 0 || n <= sortInsertionThreshold {
		sortImpl(data, less, maxDepth(n))
		return
	}

	pivot := pivotSampled(data, less)
	lt, gt := partition3Way(data, pivot, less)

	if k < lt {
		nthElementImpl(data[:lt], k, less, depthLimit-1)
	} else if k >= gt {
		nthElementImpl(data[gt:], k-gt, less, depthLimit-1)
	}
	// lt <= k < gt: position k is inside the equal run - done
}
