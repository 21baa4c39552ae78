// SPDX-License-Identifier: MIT
// Package storage: sentinel error set.
// Every message is prefixed with "storage: ..." so it can be grepped in logs.
// Call sites wrap with context via fmt.Errorf("ctx: %w", ErrX); match with errors.Is.

package storage

import "errors"

var (
	// ErrInvalidLength is returned when a negative length or capacity is requested.
	ErrInvalidLength = errors.New("storage: invalid length")

	// ErrCapacityExceeded is returned by Fixed.Resize when the requested length
	// is larger than the capacity chosen at construction.
	ErrCapacityExceeded = errors.New("storage: fixed capacity exceeded")

	// ErrOutOfRange indicates a Dense row or column index outside valid bounds.
	ErrOutOfRange = errors.New("storage: index out of range")

	// ErrInvalidShape indicates a Dense shape with a negative dimension.
	ErrInvalidShape = errors.New("storage: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("storage: NaN or Inf encountered")

	// ErrNilBuffer indicates that a nil Buffer was handed to NewDense.
	ErrNilBuffer = errors.New("storage: nil buffer")
)
