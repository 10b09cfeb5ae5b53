// SPDX-License-Identifier: MIT

package functor_test

import (
	"testing"

	"github.com/katalvlaran/lvcat/functor"
	"github.com/katalvlaran/lvcat/moncat"
)

func chain(n int) moncat.Diagram {
	d := moncat.Id(moncat.PRO(1))
	for i := 0; i < n; i++ {
		d, _ = d.Then(copyBox, addBox)
	}

	return d
}

// BenchmarkEval measures the splice fast path.
func BenchmarkEval(b *testing.B) {
	d := chain(500)
	x := []float64{1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = functor.Eval(d, x)
	}
}

// BenchmarkApplyFunctions measures the generic fold into Functions.
func BenchmarkApplyFunctions(b *testing.B) {
	d := chain(500)
	F := functor.Evaluator()
	x := []float64{1}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, _ := F.Apply(d)
		_, _ = f.Call(x)
	}
}
