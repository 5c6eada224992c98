package optimize_test

import (
	"testing"

	"github.com/katalvlaran/enclose/interval"
	"github.com/katalvlaran/enclose/optimize"
)

func BenchmarkMinimize_Paraboloid2D(b *testing.B) {
	f := paraboloid([]float64{0.4, -0.7})
	box := interval.Uniform(2, interval.MustNew(-2, 2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := optimize.Minimize(f, box, 1e-4); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMinimize_Griewank2D(b *testing.B) {
	f := griewank2()
	box := interval.Uniform(2, interval.MustNew(-5, 5))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := optimize.Minimize(f, box, 0.02, optimize.WithMaxIterations(50_000)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMinimize_ParallelBounds(b *testing.B) {
	f := paraboloid([]float64{0.4, -0.7})
	box := interval.Uniform(2, interval.MustNew(-2, 2))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := optimize.Minimize(f, box, 1e-4, optimize.WithParallelBounds()); err != nil {
			b.Fatal(err)
		}
	}
}
