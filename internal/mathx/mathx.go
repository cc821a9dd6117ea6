// Package mathx holds small generic numeric helpers shared by the economy models.
package mathx

import "golang.org/x/exp/constraints"

// Clamp bounds v to [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Floor returns v, or lo if v is below it.
func Floor[T constraints.Ordered](v, lo T) T {
	if v < lo {
		return lo
	}
	return v
}

// Cap returns v, or hi if v is above it.
func Cap[T constraints.Ordered](v, hi T) T {
	if v > hi {
		return hi
	}
	return v
}
