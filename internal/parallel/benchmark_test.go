package parallel

import (
	"fmt"
	"testing"
)

// BenchmarkWorkerPool_Create benchmarks pool start and shutdown.
func BenchmarkWorkerPool_Create(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		pool := NewWorkerPool(0) // Use GOMAXPROCS
		pool.Close()
	}
}

// BenchmarkWorkerPool_ExecuteAll benchmarks dispatching empty work items.
func BenchmarkWorkerPool_ExecuteAll(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			pool := NewWorkerPool(0)
			defer pool.Close()

			work := make([]func(), n)
			for i := range work {
				work[i] = func() {}
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pool.ExecuteAll(work)
			}
		})
	}
}

// BenchmarkWorkerPool_Range benchmarks block-sized averaging over an HD
// frame's worth of 8x8 cells.
func BenchmarkWorkerPool_Range(b *testing.B) {
	const cells = (1920 / 8) * (1080 / 8)
	sums := make([]uint32, cells)
	pixels := make([]byte, 8*8*4)
	for i := range pixels {
		pixels[i] = byte(i)
	}

	for _, workers := range []int{1, 4, 0} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			pool := NewWorkerPool(workers)
			defer pool.Close()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				pool.Range(cells, func(c int) {
					var s uint32
					for _, v := range pixels {
						s += uint32(v)
					}
					sums[c] = s
				})
			}
		})
	}
}
