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

// Package sortutil provides in-place, comparator-driven sorting over slices
// of any element type.
//
// Every operation takes a caller-supplied Less function that must define a
// strict weak ordering (irreflexive, asymmetric, transitive). The package
// assumes no natural order internally; Ascending and Descending are provided
// as the customary default comparators for ordered types.
//
// # Algorithm
//
// Sort is an introsort:
//   - Compare-exchange networks for very small slices (<= 8 elements)
//   - Insertion sort for small slices (<= 16 elements)
//   - 3-way quicksort partitioning with sampled pivots for larger slices
//   - Heapsort fallback when recursion exceeds 2*floor(log2(n)), which
//     guarantees O(n log n) in the worst case
//
// Stable is a merge sort with a single O(n) scratch buffer. PartialSort is
// heap-based and runs in O(n log k). NthElement is a depth-limited
// quickselect with expected O(n) time.
//
// # Operations
//
//	sortutil.Sort(data, sortutil.Ascending)          // in-place, unstable
//	sortutil.Stable(data, byLength)                  // equal elements keep order
//	err := sortutil.PartialSort(data, k, less)       // smallest k, sorted prefix
//	err := sortutil.NthElement(data, k, less)        // data[k] as in a full sort
//	ok := sortutil.IsSorted(data, less)              // read-only check
//
// Boundary arguments outside [0, n] fail with ErrOutOfRange before any
// element is moved. Empty, single-element, already-sorted and all-equal
// inputs are valid no-ops, never errors.
//
// # Comparator diagnostics
//
// CheckStrictWeakOrder probes a comparator against a bounded sample of the
// input and reports ErrInvalidComparator on a violation. Builds with the
// "ordercheck" tag run this check inside every mutating operation and panic
// with the wrapped error before touching the slice; regular builds carry no
// instrumentation cost.
//
// # Concurrency
//
// All operations are synchronous and re-entrant. Concurrent calls are safe
// as long as each call operates on a disjoint slice; concurrent calls over
// the same slice must be serialized by the caller.
package sortutil
