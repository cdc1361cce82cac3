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

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

// TestPartialSortPrefix verifies the prefix equals a truncated full sort
func TestPartialSortPrefix(t *testing.T) {
	rand.Seed(31)
	for _, n := range []int{1, 2, 7, 16, 100, 1000} {
		for _, k := range []int{0, 1, n / 4, n / 2, n - 1, n} {
			if k < 0 || k > n {
				continue
			}

			data := make([]int, n)
			for i := range data {
				data[i] = rand.Intn(500)
			}
			want := slices.Clone(data)
			slices.Sort(want)

			if err := PartialSort(data, k, Ascending[int]); err != nil {
				t.Fatalf("PartialSort(n=%d, k=%d): %v", n, k, err)
			}

			if !slices.Equal(data[:k], want[:k]) {
				t.Errorf("PartialSort(n=%d, k=%d) prefix = %v, want %v", n, k, data[:k], want[:k])
			}

			// Remainder is unordered but must hold exactly the leftover elements
			rest := slices.Clone(data[k:])
			slices.Sort(rest)
			if !slices.Equal(rest, want[k:]) {
				t.Errorf("PartialSort(n=%d, k=%d) remainder lost elements", n, k)
			}
		}
	}
}

// TestPartialSortZero verifies k=0 is a no-op
func TestPartialSortZero(t *testing.T) {
	data := []int{5, 3, 8, 1}
	orig := slices.Clone(data)

	if err := PartialSort(data, 0, Ascending[int]); err != nil {
		t.Fatalf("PartialSort(k=0): %v", err)
	}
	if !slices.Equal(data, orig) {
		t.Errorf("PartialSort(k=0) modified data: %v, want %v", data, orig)
	}
}

// TestPartialSortFull verifies k=n equals a full sort
func TestPartialSortFull(t *testing.T) {
	data := []int{64, 34, 25, 12, 22, 11, 90}
	want := []int{11, 12, 22, 25, 34, 64, 90}

	if err := PartialSort(data, len(data), Ascending[int]); err != nil {
		t.Fatalf("PartialSort(k=n): %v", err)
	}
	if !slices.Equal(data, want) {
		t.Errorf("PartialSort(k=n) = %v, want %v", data, want)
	}
}

// TestPartialSortOutOfRange verifies boundary violations fail without mutation
func TestPartialSortOutOfRange(t *testing.T) {
	data := []int{5, 3, 8, 1}
	orig := slices.Clone(data)

	for _, k := range []int{-1, 5, 100} {
		err := PartialSort(data, k, Ascending[int])
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("PartialSort(k=%d) error = %v, want ErrOutOfRange", k, err)
		}
		if !slices.Equal(data, orig) {
			t.Errorf("PartialSort(k=%d) mutated data on error path", k)
		}
	}
}

// TestNthElement tests the selected position against a full sort
func TestNthElement(t *testing.T) {
	ref := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	for k := range ref {
		data := slices.Clone(ref)
		rand.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })

		if err := NthElement(data, k, Ascending[int]); err != nil {
			t.Fatalf("NthElement(k=%d): %v", k, err)
		}

		if data[k] != ref[k] {
			t.Errorf("NthElement(k=%d): got %v, want %v", k, data[k], ref[k])
		}
	}
}

// TestNthElementPartitions verifies both sides sit on the right side of data[k]
func TestNthElementPartitions(t *testing.T) {
	rand.Seed(41)
	for _, n := range []int{2, 17, 100, 1000, 10000} {
		data := make([]int, n)
		for i := range data {
			data[i] = rand.Intn(200)
		}
		k := n / 3

		if err := NthElement(data, k, Ascending[int]); err != nil {
			t.Fatalf("NthElement(n=%d, k=%d): %v", n, k, err)
		}

		for i := 0; i < k; i++ {
			if data[k] < data[i] {
				t.Fatalf("NthElement(n=%d, k=%d): data[%d]=%d after pivot %d", n, k, i, data[i], data[k])
			}
		}
		for i := k + 1; i < n; i++ {
			if data[i] < data[k] {
				t.Fatalf("NthElement(n=%d, k=%d): data[%d]=%d before pivot %d", n, k, i, data[i], data[k])
			}
		}
	}
}

// TestNthElementBoundary verifies k=n is a no-op and out-of-range fails
func TestNthElementBoundary(t *testing.T) {
	data := []int{5, 3, 8, 1}
	orig := slices.Clone(data)

	if err := NthElement(data, len(data), Ascending[int]); err != nil {
		t.Fatalf("NthElement(k=n): %v", err)
	}
	if !slices.Equal(data, orig) {
		t.Errorf("NthElement(k=n) modified data: %v, want %v", data, orig)
	}

	for _, k := range []int{-1, 5} {
		err := NthElement(data, k, Ascending[int])
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("NthElement(k=%d) error = %v, want ErrOutOfRange", k, err)
		}
		if !slices.Equal(data, orig) {
			t.Errorf("NthElement(k=%d) mutated data on error path", k)
		}
	}
}

// TestNthElementDuplicates tests selection inside long equal runs
func TestNthElementDuplicates(t *testing.T) {
	rand.Seed(42)
	data := make([]int, 1000)
	for i := range data {
		data[i] = rand.Intn(5)
	}
	want := slices.Clone(data)
	slices.Sort(want)

	k := 500
	if err := NthElement(data, k, Ascending[int]); err != nil {
		t.Fatalf("NthElement: %v", err)
	}
	if data[k] != want[k] {
		t.Errorf("NthElement(k=%d) = %d, want %d", k, data[k], want[k])
	}
}
