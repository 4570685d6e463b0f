package propagation

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NoiseRMS returns the rms noise level that puts the strongest channel
// at the requested signal-to-noise ratio.
func NoiseRMS(snr, peak float64) float64 {
	return peak / snr
}

// AddNoise adds independent, seeded Gaussian noise of the given rms to
// every sample of every channel and returns the noisy copies. The
// inputs are left untouched.
func AddNoise(profiles [][]float64, rms float64, seed uint64) [][]float64 {
	noise := distuv.Normal{Mu: 0, Sigma: rms, Src: rand.NewPCG(seed, seed)}
	out := make([][]float64, len(profiles))
	for i, prof := range profiles {
		noisy := make([]float64, len(prof))
		for j, v := range prof {
			noisy[j] = v + noise.Rand()
		}
		out[i] = noisy
	}
	return out
}
