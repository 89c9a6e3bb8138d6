package soavec

import (
	"cmp"
	"math/rand"
	"testing"
)

func BenchmarkPush(b *testing.B) {
	b.Run("Grow", func(b *testing.B) {
		b.ReportAllocs()
		v := NewVec2[int64, float64]()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Push(int64(i), float64(i))
		}
	})

	b.Run("Preallocated", func(b *testing.B) {
		b.ReportAllocs()
		v := NewVec2WithCapacity[int64, float64](b.N)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			v.Push(int64(i), float64(i))
		}
	})
}

func BenchmarkIterate(b *testing.B) {
	const n = 1 << 16
	v := NewVec2WithCapacity[int64, float64](n)
	for i := 0; i < n; i++ {
		v.Push(int64(i), float64(i))
	}

	b.Run("Columns", func(b *testing.B) {
		b.ReportAllocs()
		c1, _ := v.Columns()
		var sum int64
		for i := 0; i < b.N; i++ {
			for _, x := range c1 {
				sum += x
			}
		}
		_ = sum
	})

	b.Run("Refs", func(b *testing.B) {
		b.ReportAllocs()
		var sum int64
		for i := 0; i < b.N; i++ {
			for _, r := range v.All() {
				sum += *r.V1
			}
		}
		_ = sum
	})
}

func BenchmarkSortFunc(b *testing.B) {
	const n = 1 << 14
	keys := make([]int64, n)
	rng := rand.New(rand.NewSource(1))
	for i := range keys {
		keys[i] = rng.Int63()
	}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		v := NewVec2WithCapacity[int64, float64](n)
		for j := 0; j < n; j++ {
			v.Push(keys[j], float64(j))
		}
		b.StartTimer()
		v.SortFunc(func(x, y Ref2[int64, float64]) int { return cmp.Compare(*x.V1, *y.V1) })
	}
}
