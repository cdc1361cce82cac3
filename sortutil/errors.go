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

import "errors"

var (
	// ErrOutOfRange is reported when a boundary argument falls outside
	// [0, n]. It is detected before any element is moved.
	ErrOutOfRange = errors.New("boundary out of range")

	// ErrInvalidComparator is reported when a comparator is detected to
	// violate the strict weak ordering contract.
	ErrInvalidComparator = errors.New("comparator violates strict weak ordering")
)
