// Package entropy provides the pluggable randomness sources threaded through
// dungeon generation and loot rolling.
// Algorithms take the source as a parameter; entry points fall back to
// OrDefault when the caller leaves it nil.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source returns a random float64 in [0, 1).
type Source func() float64

// Seeded returns a deterministic source backed by math/rand.
// The same seed always yields the same sequence.
func Seeded(seed int64) Source {
	rng := mrand.New(mrand.NewSource(seed))
	return rng.Float64
}

// Crypto returns a non-deterministic source backed by crypto/rand.
func Crypto() Source {
	return cryptoRandFloat
}

// OrDefault returns src, or the crypto source when src is nil.
func OrDefault(src Source) Source {
	if src == nil {
		return cryptoRandFloat
	}
	return src
}

// Sequence returns a source that replays the given values in order and then
// repeats the last one. Useful for scripting exact outcomes.
func Sequence(values ...float64) Source {
	if len(values) == 0 {
		return func() float64 { return 0 }
	}
	i := 0
	return func() float64 {
		v := values[i]
		if i < len(values)-1 {
			i++
		}
		return v
	}
}

// Intn draws an integer in [0, n) from src. n <= 0 returns 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src() * float64(n))
	// Guard against sources that misbehave at the upper bound.
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// Seed draws a noise seed from src.
func Seed(src Source) int64 {
	return int64(src() * float64(1<<53))
}

// cryptoRandFloat generates a random float64 using crypto/rand.
func cryptoRandFloat() float64 {
	var buf [8]byte
	_, err := rand.Read(buf[:])
	if err != nil {
		// This should never happen but return 0.5 as a safe default.
		return 0.5
	}
	// Use only 53 bits for a uniform float64 in [0, 1).
	n := binary.LittleEndian.Uint64(buf[:]) >> 11
	return float64(n) / float64(1<<53)
}
