package utils

import (
	"math/rand"

	"golang.org/x/exp/constraints"
)

func Max[T constraints.Ordered](x, y T) T {
	if x < y {
		return y
	}
	return x
}

func Min[T constraints.Ordered](x, y T) T {
	if y < x {
		return y
	}
	return x
}

// Shuffle with a caller provided source, so tests stay reproducible.
func Shuffle[T any](r *rand.Rand, slice []T) {
	for i := range slice {
		j := r.Intn(i + 1)
		slice[i], slice[j] = slice[j], slice[i]
	}
}
