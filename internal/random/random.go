// Package random provides the randomness capability handed to every composer call.
// Seeded sources make outputs reproducible in tests; the default source is
// process-wide and unseeded.
package random

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

// Source draws uniform values. IntN panics when n <= 0, like math/rand.
type Source interface {
	IntN(n int) int
	Float64() float64
}

// New returns a reproducible source for the given seed. It is not safe for
// concurrent use; create one per composition.
func New(seed uint64) Source {
	return mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) IntN(n int) int   { return mrand.IntN(n) }
func (globalSource) Float64() float64 { return mrand.Float64() }

// Default returns the process-wide source. Safe for concurrent use.
func Default() Source {
	return globalSource{}
}

type cryptoSource struct {
	r *mrand.Rand
}

// Crypto returns a source backed by crypto/rand.
func Crypto() Source {
	return cryptoSource{r: mrand.New(cryptoReader{})}
}

func (c cryptoSource) IntN(n int) int   { return c.r.IntN(n) }
func (c cryptoSource) Float64() float64 { return c.r.Float64() }

// cryptoReader adapts crypto/rand to math/rand/v2's Source.
type cryptoReader struct{}

func (cryptoReader) Uint64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("random: crypto/rand read failed: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Pick returns a uniformly drawn byte of set. set must be non-empty.
func Pick(src Source, set string) byte {
	return set[src.IntN(len(set))]
}

// Shuffle permutes s in place with Fisher-Yates.
func Shuffle[T any](src Source, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
