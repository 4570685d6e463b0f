// Package propagation applies interstellar effects to synthesized pulse
// profiles: pulse-train replication, scatter broadening, cold-plasma
// dispersion and radiometer noise. Every stage is optional and the
// stages compose in the fixed order
// pulsetrain → scatter → extract → disperse → noise.
package propagation

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/psrsim/beamsim/internal/signal"
)

// Bhat et al. (2004) empirical scattering fit, log10(tau/ms) as a
// polynomial in log10(DM) plus a frequency power law.
const (
	bhatC0        = -6.46
	bhatC1        = 0.154
	bhatC2        = 1.07
	bhatFreqIndex = -3.86

	// Spread (dex) of the seeded log-normal multiplier around the fit.
	bhatSigmaDex = 0.5
)

// PulseTrain replicates a single-period profile n times contiguously so
// scatter convolution can spill across period edges naturally.
func PulseTrain(n, res int, prof []float64) []float64 {
	train := make([]float64, 0, n*res)
	for i := 0; i < n; i++ {
		train = append(train, prof[:res]...)
	}
	return train
}

// ScatterTime draws the scattering timescale in seconds at freq (GHz)
// for the given dispersion measure: the Bhat et al. (2004) fit with a
// seeded log-normal spread. The timescale falls steeply with frequency
// and grows with DM. A non-positive DM means no measurable scattering
// and returns 0.
func ScatterTime(freqGHz, dm float64, seed uint64) float64 {
	if dm <= 0 {
		return 0
	}
	spread := distuv.Normal{Mu: 0, Sigma: bhatSigmaDex, Src: rand.NewPCG(seed, seed)}.Rand()
	logDM := math.Log10(dm)
	logTauMs := bhatC0 + bhatC1*logDM + bhatC2*logDM*logDM +
		bhatFreqIndex*math.Log10(freqGHz) + spread
	return math.Pow(10, logTauMs) * 1e-3
}

// BroadeningKernel builds the one-sided exponential impulse response for
// scattering time tau (s), sampled at res bins per period (s). The
// kernel sums to one so scattering preserves flux; tau <= 0 degenerates
// to a delta kernel.
func BroadeningKernel(tau, period float64, res int) []float64 {
	kernel := make([]float64, res)
	if tau <= 0 {
		kernel[0] = 1
		return kernel
	}
	tres := period / float64(res)
	for i := range kernel {
		kernel[i] = math.Exp(-float64(i) * tres / tau)
	}
	floats.Scale(1/floats.Sum(kernel), kernel)
	return kernel
}

// Scatter convolves a pulse train with the broadening kernel, truncated
// to the train length.
func Scatter(train, kernel []float64) []float64 {
	return signal.Convolve(train, kernel)
}

// ExtractPulse recovers the central period window [res, 2·res) from a
// replicated train, where edge effects from the convolution have
// settled.
func ExtractPulse(train []float64, res int) []float64 {
	out := make([]float64, res)
	copy(out, train[res:2*res])
	return out
}
