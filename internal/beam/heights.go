package beam

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Default emission height bounds (km). Slow pulsars emit from low in the
// magnetosphere, millisecond-class pulsars from near the light cylinder.
const (
	defaultHMaxKm     = 1000.0
	defaultHMinSlowKm = 20.0
	defaultHMinFastKm = 950.0
	slowPeriodS       = 0.15

	// Kijak & Gil radius-to-frequency exponent.
	rfmIndex = -0.26
)

// EmissionHeights draws n component emission heights (km), uniform in
// [hmin, hmax]. A bound that is zero or negative takes the
// period-dependent default: hmin 20 km for P >= 0.15 s and 950 km below
// that, hmax 1000 km. The draw is fully determined by seed.
func EmissionHeights(period float64, n int, seed uint64, hmin, hmax float64) []float64 {
	if hmax <= 0 {
		hmax = defaultHMaxKm
	}
	if hmin <= 0 {
		if period >= slowPeriodS {
			hmin = defaultHMinSlowKm
		} else {
			hmin = defaultHMinFastKm
		}
	}
	u := distuv.Uniform{Min: hmin, Max: hmax, Src: rand.NewPCG(seed, seed)}
	heights := make([]float64, n)
	for i := range heights {
		heights[i] = u.Rand()
	}
	return heights
}

// HeightsAtFrequency maps nominal heights to the effective emission
// height at freq (GHz) under radius-to-frequency mapping: lower
// frequencies are emitted from higher up. The mapping is the identity
// at 1 GHz and strictly decreasing in frequency.
func HeightsAtFrequency(heights []float64, freqGHz float64) []float64 {
	scale := math.Pow(freqGHz, rfmIndex)
	out := make([]float64, len(heights))
	for i, h := range heights {
		out[i] = h * scale
	}
	return out
}
