// Package signal holds the small profile-array operations shared by the
// propagation and dispersion-fitting stages.
package signal

import "gonum.org/v1/gonum/floats"

// Peak returns the maximum sample value of a non-empty profile.
func Peak(p []float64) float64 { return floats.Max(p) }

// PeakBin returns the first bin holding the maximum value, so ties
// resolve deterministically.
func PeakBin(p []float64) int {
	best := 0
	for i, v := range p {
		if v > p[best] {
			best = i
		}
	}
	return best
}

// Roll circularly shifts p right by n bins; negative n shifts left.
func Roll(p []float64, n int) []float64 {
	m := len(p)
	out := make([]float64, m)
	n = ((n % m) + m) % m
	for i, v := range p {
		out[(i+n)%m] = v
	}
	return out
}

// Average returns the element-wise mean across equally sized channels.
func Average(channels [][]float64) []float64 {
	out := make([]float64, len(channels[0]))
	for _, ch := range channels {
		floats.Add(out, ch)
	}
	floats.Scale(1/float64(len(channels)), out)
	return out
}

// Convolve computes the discrete linear convolution of a with kernel k,
// truncated to len(a), so a unit-sum kernel preserves flux.
func Convolve(a, k []float64) []float64 {
	out := make([]float64, len(a))
	for i := range out {
		lo := i - len(k) + 1
		if lo < 0 {
			lo = 0
		}
		var s float64
		for j := lo; j <= i; j++ {
			s += a[j] * k[i-j]
		}
		out[i] = s
	}
	return out
}

// WidthAt10 returns the pulse width in degrees at 10% of the peak: the
// number of bins at or above the threshold times the phase step. A flat
// or empty profile has zero width.
func WidthAt10(p []float64) float64 {
	if len(p) == 0 {
		return 0
	}
	peak := floats.Max(p)
	if peak <= 0 {
		return 0
	}
	threshold := 0.1 * peak
	n := 0
	for _, v := range p {
		if v >= threshold {
			n++
		}
	}
	return float64(n) * 360 / float64(len(p))
}
