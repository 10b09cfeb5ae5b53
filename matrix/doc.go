// SPDX-License-Identifier: MIT

// Package matrix provides a small dense linear-algebra kernel set.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with error-returning accessors and
//     support for zero-sized shapes.
//   - Kernels Mul, Add, Scale, Transpose, MatVec, DirectSum, Kron and
//     AllClose, each allocating a fresh result.
//
// Matrices are the arrows of the matrix categories in package functor: a
// diagram evaluates to the matrix of the linear map it denotes, composed
// with Mul and tensored with DirectSum or Kron.
package matrix
