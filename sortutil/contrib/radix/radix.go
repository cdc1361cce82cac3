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

// Package radix provides a non-comparison fast path for slices with a
// natural ascending order: LSD radix sort, one byte per pass, O(n) per
// element width. It complements the comparator-driven core package for the
// numeric types where comparisons are not needed at all.
package radix

// Numeric lists the element types with a radix-sortable representation.
type Numeric interface {
	int32 | int64 | uint32 | uint64 | float32 | float64
}

type integer interface {
	int32 | int64 | uint32 | uint64
}

// Sort sorts data in-place in natural ascending order. For floats, NaNs
// order below -Inf or above +Inf depending on their sign bit, and -0 orders
// before +0. A scratch buffer of len(data) is allocated per call.
func Sort[T Numeric](data []T) {
	if len(data) <= 1 {
		return
	}

	var zero T
	switch any(zero).(type) {
	case int32:
		sortInteger(any(data).([]int32), 4, true)
	case int64:
		sortInteger(any(data).([]int64), 8, true)
	case uint32:
		sortInteger(any(data).([]uint32), 4, false)
	case uint64:
		sortInteger(any(data).([]uint64), 8, false)
	case float32:
		sortFloat32(any(data).([]float32))
	case float64:
		sortFloat64(any(data).([]float64))
	}
}

// sortInteger runs one radix pass per byte of the element width,
// ping-ponging between data and a scratch buffer. The final pass of a
// signed type places the sign byte's buckets in signed order.
func sortInteger[T integer](data []T, width int, signed bool) {
	src := data
	dst := make([]T, len(data))

	for pass := 0; pass < width; pass++ {
		shift := pass * 8
		if signed && pass == width-1 {
			radixPassSigned(src, dst, shift)
		} else {
			radixPass(src, dst, shift)
		}
		src, dst = dst, src
	}

	// Width is even, so src has landed back on data; keep the guard anyway
	if &src[0] != &data[0] {
		copy(data, src)
	}
}

// radixPass performs one stable LSD pass, bucketing on the byte at shift.
func radixPass[T integer](src, dst []T, shift int) {
	var count [256]int

	for i := range src {
		digit := int((src[i] >> shift) & 0xFF)
		count[digit]++
	}

	// Prefix sum turns counts into bucket offsets
	offset := 0
	for b := 0; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for i := range src {
		digit := int((src[i] >> shift) & 0xFF)
		dst[count[digit]] = src[i]
		count[digit]++
	}
}

// radixPassSigned is the final pass for signed types. The bucketed byte
// holds the sign bit, so buckets 128-255 (negative values) are laid out
// before buckets 0-127 (positive values).
func radixPassSigned[T integer](src, dst []T, shift int) {
	var count [256]int

	for i := range src {
		digit := int((src[i] >> shift) & 0xFF)
		count[digit]++
	}

	offset := 0
	for b := 128; b < 256; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}
	for b := 0; b < 128; b++ {
		c := count[b]
		count[b] = offset
		offset += c
	}

	for i := range src {
		digit := int((src[i] >> shift) & 0xFF)
		dst[count[digit]] = src[i]
		count[digit]++
	}
}
