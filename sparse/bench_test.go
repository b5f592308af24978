// SPDX-License-Identifier: MIT
// Benchmarks for the core container, using deterministic random fill.

package sparse_test

import (
	"fmt"
	"io"
	"math/rand"
	"testing"

	"github.com/katalvlaran/orthosparse/sparse"
)

var benchSizes = []int{64, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *sparse.Matrix
	sinkF float64
)

func BenchmarkInsert(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			rng := rand.New(rand.NewSource(1337))
			for i := 0; i < b.N; i++ {
				m := MustNew(b, n, n, sparse.WithCapacity(n*4))
				for k := 0; k < n*4; k++ {
					_ = m.Insert(rng.Intn(n)+1, rng.Intn(n)+1, 1)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkGet(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(42))
			m := randomMatrix(b, rng, n, n, 0.05)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				v, _ := m.Get(rng.Intn(n)+1, rng.Intn(n)+1)
				sinkF += v
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	m := randomMatrix(b, rng, 256, 256, 0.05)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = m.Clone()
	}
}

func BenchmarkPrint(b *testing.B) {
	rng := rand.New(rand.NewSource(6))
	m := randomMatrix(b, rng, 128, 128, 0.05)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Print(io.Discard)
	}
}

func BenchmarkMultiply(b *testing.B) {
	rng := rand.New(rand.NewSource(9))
	x := randomMatrix(b, rng, 48, 48, 0.1)
	y := randomMatrix(b, rng, 48, 48, 0.1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := sparse.Multiply(x, y)
		if err != nil {
			b.Fatal(err)
		}
		sinkM = p
	}
}
