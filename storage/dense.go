// SPDX-License-Identifier: MIT

// Package storage - Dense row-major view over a Buffer.
//
// Purpose:
//   - Give the n×m right-hand side / moment matrix an explicit index formula i*cols + j.
//   - Keep the public surface safe: At/Set return errors instead of panicking.
//   - Leave allocation policy to the underlying Buffer (Growable or Fixed).
//
// Complexity quicksheet:
//   - NewDense: O(1); Reshape: O(r*c) zero fill; At/Set/Row: O(1).

package storage

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxRow     = "Row"
	ctxReshape = "Reshape"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix view.
//   - r,c hold dimensions.
//   - buf holds r*c elements in row-major order (offset = i*c + j).
type Dense[T Float] struct {
	r, c int
	buf  Buffer[T]
}

// NewDense wraps buf as a 0×0 matrix; call Reshape to size it.
func NewDense[T Float](buf Buffer[T]) (*Dense[T], error) {
	if buf == nil {
		return nil, ErrNilBuffer
	}

	return &Dense[T]{buf: buf}, nil
}

// Reshape resizes the underlying buffer to rows*cols and zero-fills it.
//
// Errors:
//   - ErrInvalidShape on negative dimensions.
//   - whatever the buffer reports (e.g. ErrCapacityExceeded for Fixed).
func (m *Dense[T]) Reshape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return denseErrorf(ctxReshape, rows, cols, ErrInvalidShape)
	}
	if err := m.buf.Resize(rows * cols); err != nil {
		return denseErrorf(ctxReshape, rows, cols, err)
	}
	m.r, m.c = rows, cols

	return nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Data exposes the flat row-major storage (len == Rows()*Cols()).
func (m *Dense[T]) Data() []T { return m.buf.Data() }

// indexOf computes the flat offset for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.buf.Data()[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.buf.Data()[idx] = v

	return nil
}

// Row returns row i as a slice aliasing the storage.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.buf.Data()[base : base+m.c], nil
}

// String implements fmt.Stringer for debugging: one bracketed line per row.
func (m *Dense[T]) String() string {
	var sb strings.Builder
	data := m.buf.Data()
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", float64(data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
