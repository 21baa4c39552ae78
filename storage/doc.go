// SPDX-License-Identifier: MIT

// Package storage provides the numeric buffers the spline and tridiagonal
// packages compute in.
//
// What & Why:
//
//	Every coefficient sequence (sub, main and super diagonal, the auxiliary
//	Sherman-Morrison column) and the moment matrix live in a Buffer. A Buffer
//	is an index-addressable, contiguous run of a single floating-point type.
//	Two sizing strategies implement it:
//	  • Growable: heap-backed, grows on demand, reuses capacity on shrink.
//	  • Fixed   : capacity chosen once at construction; Resize beyond it fails.
//
//	The strategy is picked once per owner and never changes afterwards, so
//	repeated solves with the same shape never allocate.
//
// Dense is a row-major view (offset = i*cols + j) over any Buffer, adapted
// from the flat Dense layout used for matrix kernels.
//
// Complexity:
//   - Len/Cap/Data/At/Set: O(1).
//   - Resize/Reshape: O(n) zero fill; allocation only when growing a Growable.
package storage
