// Package randutil builds reproducible math/rand/v2 sources.
package randutil

import rand "math/rand/v2"

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand whose sequence depends only on seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

// Stream returns the n-th independent source derived from seed. Survey
// workers use one stream each so a run is reproducible for a fixed worker
// count regardless of scheduling.
func Stream(seed int64, n int) *rand.Rand {
	u := splitmix(uint64(seed)) ^ splitmix(uint64(n)*goldenRatio64+1)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(u+goldenRatio64)))
}

func splitmix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
