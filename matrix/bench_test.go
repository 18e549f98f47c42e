// Package matrix_test provides benchmarks for block allocation and access paths.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/blockmat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{64, 256, 1024}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkB *matrix.Block[float64]
)

func BenchmarkNew(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m, err := matrix.New[float64](n, n)
				if err != nil {
					b.Fatal(err)
				}
				sinkB = m
				_ = m.Release()
			}
		})
	}
}

func BenchmarkRowWalk(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustBlock[float64](b, n, n)
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				var s float64
				for i := 0; i < n; i++ {
					r, _ := m.Row(i)
					for _, v := range r {
						s += v
					}
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkFlatWalk(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustBlock[float64](b, n, n)
			flat, err := matrix.AsFlat(m)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for it := 0; it < b.N; it++ {
				var s float64
				for _, v := range flat {
					s += v
				}
				sinkF = s
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	m := mustBlock[float64](b, 256, 256)
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		v, _ := m.At(it&255, (it>>8)&255)
		sinkF = v
	}
}
