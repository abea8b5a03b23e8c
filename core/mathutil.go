package core

import "golang.org/x/exp/constraints"

// Clamp limits v to the closed interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Index returns 0..n-1 as float64 values, the implicit x axis used when a
// series carries no explicit coordinates.
func Index(n int) []float64 {
	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}
	return idx
}
