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

// checkSampleSize bounds the number of elements probed by
// CheckStrictWeakOrder. Pair and triple loops over the sample keep the
// check at a few thousand comparator calls regardless of input size.
const checkSampleSize = 16

// CheckStrictWeakOrder probes less against a bounded, evenly spaced sample
// of data and reports a wrapped ErrInvalidComparator when irreflexivity,
// asymmetry or transitivity is violated. A nil result is not a proof of
// validity: only sampled elements are examined.
func CheckStrictWeakOrder[T any](data []T, less Less[T]) error {
	sample := sampleElements(data)

	for _, a := range sample {
		if less(a, a) {
			return fmt.Errorf("irreflexivity: less(x, x) is true for %v: %w", a, ErrInvalidComparator)
		}
	}

	for i, a := range sample {
		for _, b := range sample[i+1:] {
			if less(a, b) && less(b, a) {
				return fmt.Errorf("asymmetry: less(%v, %v) and less(%v, %v) both true: %w",
					a, b, b, a, ErrInvalidComparator)
			}
		}
	}

	for _, a := range sample {
		for _, b := range sample {
			for _, c := range sample {
				if less(a, b) && less(b, c) && !less(a, c) {
					return fmt.Errorf("transitivity: less(%v, %v) and less(%v, %v) but not less(%v, %v): %w",
						a, b, b, c, a, c, ErrInvalidComparator)
				}
			}
		}
	}

	return nil
}

// sampleElements picks up to checkSampleSize evenly spaced elements.
func sampleElements[T any](data []T) []T {
	n := len(data)
	if n <= checkSampleSize {
		return data
	}

	sample := make([]T, checkSampleSize)
	step := n / checkSampleSize
	for i := range sample {
		sample[i] = data[i*step]
	}
	return sample
}
