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

// Package parallel sorts large slices over a worker pool: per-worker chunks
// are sorted concurrently with the core sortutil package, then merged
// pairwise level by level into a scratch buffer. Each worker only ever
// touches a disjoint subslice, so the core package's single-slice
// concurrency contract is preserved.
package parallel

import (
	"github.com/ajroetker/go-sortutil/sortutil"
	"github.com/ajroetker/go-sortutil/sortutil/contrib/workerpool"
)

// minParallel: below this length the pool overhead dominates and the sort
// runs sequentially.
const minParallel = 4096

// Sort sorts data in-place using pool workers. Not stable. The worst-case
// bound of the core sort carries over; one scratch buffer of len(data) is
// allocated for the merge phase.
func Sort[T any](pool *workerpool.Pool, data []T, less sortutil.Less[T]) {
	sortChunked(pool, data, less, sortutil.Sort[T])
}

// Stable sorts data in-place using pool workers, keeping elements that
// compare equal in their original relative order.
func Stable[T any](pool *workerpool.Pool, data []T, less sortutil.Less[T]) {
	sortChunked(pool, data, less, sortutil.Stable[T])
}

// sortChunked sorts equal chunks concurrently and merges them. The merge is
// left-biased, so chunk stability carries through to the whole slice.
func sortChunked[T any](pool *workerpool.Pool, data []T, less sortutil.Less[T], sortChunk func([]T, sortutil.Less[T])) {
	n := len(data)
	workers := pool.NumWorkers()
	if n < minParallel || workers == 1 {
		sortChunk(data, less)
		return
	}

	chunkSize := (n + workers - 1) / workers
	numChunks := (n + chunkSize - 1) / chunkSize

	pool.ParallelFor(numChunks, func(start, end int) {
		for c := start; c < end; c++ {
			lo := c * chunkSize
			hi := min(lo+chunkSize, n)
			sortChunk(data[lo:hi], less)
		}
	})

	// Pairwise merge levels, ping-ponging between data and scratch
	scratch := make([]T, n)
	src, dst := data, scratch
	for width := chunkSize; width < n; width *= 2 {
		pairWidth := 2 * width
		numPairs := (n + pairWidth - 1) / pairWidth

		pool.ParallelFor(numPairs, func(start, end int) {
			for p := start; p < end; p++ {
				lo := p * pairWidth
				mid := min(lo+width, n)
				hi := min(lo+pairWidth, n)
				if mid >= hi {
					// Unpaired tail: carry over unchanged
					copy(dst[lo:hi], src[lo:hi])
					continue
				}
				mergeInto(dst[lo:hi], src[lo:mid], src[mid:hi], less)
			}
		})

		src, dst = dst, src
	}

	if &src[0] != &data[0] {
		copy(data, src)
	}
}

// mergeInto merges sorted runs a and b into out. An element of b is taken
// only when it orders strictly before the candidate from a, keeping equal
// elements in left-run-first order.
func mergeInto[T any](out, a, b []T, less sortutil.Less[T]) {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			out[k] = b[j]
			j++
		} else {
			out[k] = a[i]
			i++
		}
		k++
	}
	copy(out[k:], a[i:])
	copy(out[k+len(a)-i:], b[j:])
}
