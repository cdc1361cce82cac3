// Copyright 2025 The go-sortutil Authors. SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sortutil/sortutil"
	"github.com/ajroetker/go-sortutil/sortutil/contrib/workerpool"
)

type record struct {
	key int
	pos int
}

func byRecordKey(a, b record) bool { return a.key < b.key }

func TestSortMatchesStdlib(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rand.Seed(51)
	for _, n := range []int{0, 1, 100, minParallel - 1, minParallel, 100000} {
		data1 := make([]int, n)
		data2 := make([]int, n)
		for i := range data1 {
			v := rand.Intn(10000)
			data1[i] = v
			data2[i] = v
		}

		Sort(pool, data1, sortutil.Ascending[int])
		slices.Sort(data2)

		require.Equal(t, data2, data1, "n=%d", n)
	}
}

func TestSortSingleWorker(t *testing.T) {
	pool := workerpool.New(1)
	defer pool.Close()

	data := make([]int, 2*minParallel)
	for i := range data {
		data[i] = len(data) - i
	}

	Sort(pool, data, sortutil.Ascending[int])
	assert.True(t, sortutil.IsSorted(data, sortutil.Ascending[int]))
}

func TestSortOddWorkerCounts(t *testing.T) {
	// Non-power-of-two worker counts exercise unpaired merge tails
	for _, workers := range []int{3, 5, 7} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			pool := workerpool.New(workers)
			defer pool.Close()

			rand.Seed(int64(workers))
			data := make([]int, 50000)
			for i := range data {
				data[i] = rand.Intn(1000)
			}
			want := slices.Clone(data)
			slices.Sort(want)

			Sort(pool, data, sortutil.Ascending[int])
			require.Equal(t, want, data)
		})
	}
}

func TestStablePreservesOrder(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	rand.Seed(52)
	data := make([]record, 50000)
	for i := range data {
		data[i] = record{key: rand.Intn(8), pos: i}
	}

	Stable(pool, data, byRecordKey)

	for i := 1; i < len(data); i++ {
		require.GreaterOrEqual(t, data[i].key, data[i-1].key, "unsorted at %d", i)
		if data[i].key == data[i-1].key {
			require.Greater(t, data[i].pos, data[i-1].pos,
				"equal keys reordered at %d", i)
		}
	}
}

func TestSortCustomComparator(t *testing.T) {
	pool := workerpool.New(0)
	defer pool.Close()

	rand.Seed(53)
	data := make([]int, 20000)
	for i := range data {
		data[i] = rand.Intn(100000)
	}

	Sort(pool, data, sortutil.Descending[int])
	assert.True(t, sortutil.IsSorted(data, sortutil.Descending[int]))
}

func BenchmarkSort(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	const n = 1 << 20
	rand.Seed(54)
	src := make([]int, n)
	for i := range src {
		src[i] = rand.Int()
	}
	buf := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		Sort(pool, buf, sortutil.Ascending[int])
	}
}
