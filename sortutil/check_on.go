// Copyright 2025 The go-sortutil Authors. SPDX-License-Identifier: Apache-2.0

//go:build ordercheck

package sortutil

// verifyOrder runs the strict weak ordering check before every mutating
// operation and panics with the wrapped ErrInvalidComparator on a
// violation, before any element is moved. Enabled by the ordercheck build
// tag.
func verifyOrder[T any](data []T, less Less[T]) {
	if err := CheckStrictWeakOrder(data, less); err != nil {
		panic(err)
	}
}
