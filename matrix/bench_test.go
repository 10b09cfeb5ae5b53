// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvcat/matrix"
)

// BenchmarkMul measures a 64×64 dense product.
func BenchmarkMul(b *testing.B) {
	a, _ := matrix.NewIdentity(64)
	c, _ := matrix.NewIdentity(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Mul(a, c)
	}
}

// BenchmarkKron measures an 8×8 by 8×8 Kronecker product.
func BenchmarkKron(b *testing.B) {
	a, _ := matrix.NewIdentity(8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.Kron(a, a)
	}
}
