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

package radix

import "math"

// Floats are sorted by mapping them to unsigned keys whose unsigned order
// matches float order: flip all bits of negative values, flip only the
// sign bit of positive values. After the integer sort the mapping is
// inverted; a key with the sign bit set was originally positive.

const (
	signBit32 = uint32(1) << 31
	signBit64 = uint64(1) << 63
)

func sortFloat32(data []float32) {
	keys := make([]uint32, len(data))
	for i, v := range data {
		u := math.Float32bits(v)
		if u&signBit32 != 0 {
			u = ^u
		} else {
			u ^= signBit32
		}
		keys[i] = u
	}

	sortInteger(keys, 4, false)

	for i, u := range keys {
		if u&signBit32 != 0 {
			u ^= signBit32
		} else {
			u = ^u
		}
		data[i] = math.Float32frombits(u)
	}
}

func sortFloat64(data []float64) {
	keys := make([]uint64, len(data))
	for i, v := range data {
		u := math.Float64bits(v)
		if u&signBit64 != 0 {
			u = ^u
		} else {
			u ^= signBit64
		}
		keys[i] = u
	}

	sortInteger(keys, 8, false)

	for i, u := range keys {
		if u&signBit64 != 0 {
			u ^= signBit64
		} else {
			u = ^u
		}
		data[i] = math.Float64frombits(u)
	}
}
