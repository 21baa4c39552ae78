// SPDX-License-Identifier: MIT

package storage

import "fmt"

// Float is the element constraint shared by all buffers.
type Float interface {
	~float32 | ~float64
}

// Buffer is a resizable, contiguous, index-addressable sequence of T.
//
// Contract:
//   - Data() returns a slice of exactly Len() elements aliasing the storage;
//     it stays valid until the next Resize.
//   - Resize(n) zero-fills the first n elements and sets Len() == n.
//   - Implementations are not safe for concurrent mutation.
type Buffer[T Float] interface {
	// Len returns the number of addressable elements.
	Len() int

	// Cap returns how many elements fit without reallocating.
	Cap() int

	// Resize sets the length to n and zero-fills the content.
	Resize(n int) error

	// Data exposes the backing slice (len == Len()).
	Data() []T
}

// Compile-time assertions.
var (
	_ Buffer[float64] = (*Growable[float64])(nil)
	_ Buffer[float64] = (*Fixed[float64])(nil)
	_ Buffer[float32] = (*Growable[float32])(nil)
	_ Buffer[float32] = (*Fixed[float32])(nil)
)

// Growable is the dynamically sized strategy: backed by a slice that grows
// when Resize asks for more than the current capacity.
type Growable[T Float] struct {
	data []T
}

// NewGrowable returns an empty Growable buffer.
func NewGrowable[T Float]() *Growable[T] {
	return &Growable[T]{}
}

// Len returns the current length.
func (g *Growable[T]) Len() int { return len(g.data) }

// Cap returns the capacity of the backing slice.
func (g *Growable[T]) Cap() int { return cap(g.data) }

// Data exposes the backing slice.
func (g *Growable[T]) Data() []T { return g.data }

// Resize sets the length to n, reusing the existing allocation when it is
// large enough. Complexity: O(n).
func (g *Growable[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("Growable.Resize(%d): %w", n, ErrInvalidLength)
	}
	if n > cap(g.data) {
		g.data = make([]T, n)

		return nil
	}
	g.data = g.data[:n]
	clear(g.data)

	return nil
}

// Fixed is the fixed-capacity strategy. Its storage is allocated exactly once
// in NewFixed; Resize only moves the logical length inside that capacity.
type Fixed[T Float] struct {
	data []T // len == capacity, never reallocated
	n    int // logical length
}

// NewFixed allocates a Fixed buffer able to hold capacity elements.
// The initial length equals the capacity, mirroring a statically sized array.
func NewFixed[T Float](capacity int) (*Fixed[T], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("NewFixed(%d): %w", capacity, ErrInvalidLength)
	}

	return &Fixed[T]{data: make([]T, capacity), n: capacity}, nil
}

// Len returns the logical length.
func (f *Fixed[T]) Len() int { return f.n }

// Cap returns the capacity fixed at construction.
func (f *Fixed[T]) Cap() int { return len(f.data) }

// Data exposes the first Len() elements of the fixed storage.
func (f *Fixed[T]) Data() []T { return f.data[:f.n] }

// Resize sets the logical length to n and zero-fills it.
//
// Errors:
//   - ErrInvalidLength when n < 0.
//   - ErrCapacityExceeded when n > Cap().
func (f *Fixed[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("Fixed.Resize(%d): %w", n, ErrInvalidLength)
	}
	if n > len(f.data) {
		return fmt.Errorf("Fixed.Resize(%d) with capacity %d: %w", n, len(f.data), ErrCapacityExceeded)
	}
	f.n = n
	clear(f.data[:n])

	return nil
}
