// Package dmfit recovers the dispersion measure from a set of
// frequency-channel profiles by maximizing the peak of their
// de-dispersed average.
package dmfit

import (
	"github.com/psrsim/beamsim/internal/propagation"
	"github.com/psrsim/beamsim/internal/signal"
)

// DefaultCandidates is the number of trial DM values in a bracket.
const DefaultCandidates = 100

// Bracket half-width as a fraction of the implied delay, on top of the
// one-bin quantization ambiguity. Profile evolution across frequency
// biases the implied delay, so the bracket is widened beyond the pure
// bin ambiguity.
const bracketFraction = 0.25

// CandidateRange derives trial DM values bracketing the delay implied by
// the peak misalignment between the lowest and highest frequency
// channels.
//
// binLow and binHigh are the peak bins of the lowest and highest
// channel. Dispersion only ever delays the lower frequency, so their
// separation is wrapped into [0, res) — a delay past one full period is
// indistinguishable from its alias and stays ambiguous by construction.
// The wrapped separation is widened by one bin plus bracketFraction of
// the implied delay and mapped through the cold-plasma law at fLow/fHigh
// (GHz). Returns n evenly spaced non-negative candidates in ascending
// order.
func CandidateRange(period float64, res int, binLow, binHigh int, fLow, fHigh float64, n int) []float64 {
	dbin := ((binLow-binHigh)%res + res) % res

	tres := period / float64(res)
	dt := float64(dbin) * tres
	perDM := propagation.Delay(fHigh, fLow, 1)

	half := dt*bracketFraction + tres
	lo := (dt - half) / perDM
	hi := (dt + half) / perDM
	if lo < 0 {
		lo = 0
	}

	if n < 2 {
		return []float64{(lo + hi) / 2}
	}
	candidates := make([]float64, n)
	for i := range candidates {
		candidates[i] = lo + (hi-lo)*float64(i)/float64(n-1)
	}
	return candidates
}

// Result is the outcome of a dispersion-measure search.
type Result struct {
	BestDM     float64
	Candidates []float64
	Peaks      []float64 // averaged-profile peak per candidate
}

// Search de-disperses every channel to the highest frequency at each
// candidate DM, averages the aligned channels and keeps the candidate
// with the highest averaged peak. Ties keep the first (lowest)
// candidate, so the fit is deterministic.
func Search(profiles [][]float64, freqs []float64, period float64, candidates []float64) Result {
	res := len(profiles[0])
	tres := period / float64(res)
	fref := freqs[len(freqs)-1]

	r := Result{
		Candidates: candidates,
		Peaks:      make([]float64, len(candidates)),
	}
	shifted := make([][]float64, len(profiles))
	for ci, dm := range candidates {
		for i, prof := range profiles {
			shifted[i] = signal.Roll(prof, -propagation.DelayBins(fref, freqs[i], dm, tres))
		}
		r.Peaks[ci] = signal.Peak(signal.Average(shifted))
	}

	best := 0
	for i, pk := range r.Peaks {
		if pk > r.Peaks[best] {
			best = i
		}
	}
	r.BestDM = candidates[best]
	return r
}
