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
	"fmt"
	"math/rand"
	"slices"
	"testing"
)

var benchSizes = []int{16, 256, 4096, 65536}

func randomInts(n int) []int {
	rand.Seed(int64(n))
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Int()
	}
	return data
}

func BenchmarkSort(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomInts(n)
			buf := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				Sort(buf, Ascending)
			}
		})
	}
}

func BenchmarkSortStdlib(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomInts(n)
			buf := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				slices.Sort(buf)
			}
		})
	}
}

func BenchmarkStable(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomInts(n)
			buf := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				Stable(buf, Ascending)
			}
		})
	}
}

func BenchmarkPartialSort(b *testing.B) {
	const n = 65536
	for _, k := range []int{16, 256, 4096} {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			src := randomInts(n)
			buf := make([]int, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				if err := PartialSort(buf, k, Ascending[int]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkNthElement(b *testing.B) {
	const n = 65536
	src := randomInts(n)
	buf := make([]int, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		if err := NthElement(buf, n/2, Ascending[int]); err != nil {
			b.Fatal(err)
		}
	}
}
