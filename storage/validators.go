// SPDX-License-Identifier: MIT
// Package: storage
//
// Purpose:
//  - Single source of truth for the finite-value numeric policy.
//  - Return sentinels wrapped with the offending index so callers can report it.

package storage

import (
	"fmt"
	"math"
)

// IsNonFinite reports whether v is NaN or ±Inf.
func IsNonFinite[T Float](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// ValidateFinite returns ErrNaNInf (wrapped with the first bad index) when
// xs holds a NaN or ±Inf. Complexity: O(len(xs)), no allocation on success.
func ValidateFinite[T Float](xs []T) error {
	for i, v := range xs {
		if IsNonFinite(v) {
			return fmt.Errorf("ValidateFinite: index %d: %w", i, ErrNaNInf)
		}
	}

	return nil
}
