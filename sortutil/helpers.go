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

// Pivot selection and partitioning helpers shared by Sort, PartialSort and
// NthElement.

// pivotMedianOf3 selects the median of the first, middle and last elements.
func pivotMedianOf3[T any](data []T, less Less[T]) T {
	n := len(data)
	if n <= 2 {
		return data[0]
	}

	a := data[0]
	b := data[n/2]
	c := data[n-1]

	if less(b, a) {
		a, b = b, a
	}
	if less(c, b) {
		b = c
		if less(b, a) {
			b = a
		}
	}
	return b
}

// pivotSampled selects a pivot by sampling elements at regular intervals.
// For larger slices this gives a better estimate than median-of-3.
func pivotSampled[T any](data []T, less Less[T]) T {
	n := len(data)
	if n <= 8 {
		return pivotMedianOf3(data, less)
	}

	samples := []T{
		data[0],
		data[n/4],
		data[n/2],
		data[3*n/4],
		data[n-1],
	}

	sortInsertion(samples, less)
	return samples[2]
}

// partition3Way performs 3-way partitioning around a pivot value (Dutch
// national flag). Returns (lt, gt) indices where:
//   - data[0:lt] orders before pivot
//   - data[lt:gt] is equivalent to pivot
//   - data[gt:n] orders after pivot
func partition3Way[T any](data []T, pivot T, less Less[T]) (int, int) {
	lt := 0
	gt := len(data)
	i := 0

	for i < gt {
		if less(data[i], pivot) {
			data[lt], data[i] = data[i], data[lt]
			lt++
			i++
		} else if less(pivot, data[i]) {
			gt--
			data[i], data[gt] = data[gt], data[i]
		} else {
			i++
		}
	}

	return lt, gt
}
