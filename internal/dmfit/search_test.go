package dmfit

import (
	"math"
	"slices"
	"testing"

	"github.com/psrsim/beamsim/internal/propagation"
	"github.com/psrsim/beamsim/internal/signal"
)

func gaussianProfile(res int, center, sigma float64) []float64 {
	p := make([]float64, res)
	for i := range p {
		d := float64(i) - center
		p[i] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	return p
}

// dispersedChannels builds identical Gaussian profiles delayed by the
// cold-plasma law at the given DM.
func dispersedChannels(res int, freqs []float64, period, dm float64) [][]float64 {
	tres := period / float64(res)
	fref := freqs[len(freqs)-1]
	base := gaussianProfile(res, float64(res)/2, 8)
	chans := make([][]float64, len(freqs))
	for i, f := range freqs {
		chans[i] = propagation.Disperse(base, fref, f, dm, tres)
	}
	return chans
}

func TestCandidateRangeBracketsImpliedDM(t *testing.T) {
	period, res := 0.16, 1000
	freqs := []float64{0.2, 1.0, 1.8, 2.6, 3.4}
	trueDM := 1.0
	chans := dispersedChannels(res, freqs, period, trueDM)

	binLow := signal.PeakBin(chans[0])
	binHigh := signal.PeakBin(chans[len(chans)-1])
	cands := CandidateRange(period, res, binLow, binHigh, freqs[0], freqs[len(freqs)-1], DefaultCandidates)

	if len(cands) != DefaultCandidates {
		t.Fatalf("got %d candidates, want %d", len(cands), DefaultCandidates)
	}
	if !slices.IsSorted(cands) {
		t.Fatal("candidates not ascending")
	}
	if cands[0] > trueDM || cands[len(cands)-1] < trueDM {
		t.Fatalf("bracket [%g, %g] does not contain true DM %g",
			cands[0], cands[len(cands)-1], trueDM)
	}
	for _, dm := range cands {
		if dm < 0 {
			t.Fatalf("negative candidate %g", dm)
		}
	}
}

func TestCandidateRangeWrap(t *testing.T) {
	// A peak that wrapped past the end of the phase window implies the
	// same delay as its unwrapped twin.
	wrapped := CandidateRange(0.16, 1000, 146, 500, 0.2, 3.4, 10)
	direct := CandidateRange(0.16, 1000, 646, 0, 0.2, 3.4, 10)
	if !slices.Equal(wrapped, direct) {
		t.Fatalf("wrapped separation differs: %v vs %v", wrapped, direct)
	}
}

func TestSearchRecoversDM(t *testing.T) {
	period, res := 0.16, 1000
	freqs := []float64{0.2, 1.0, 1.8, 2.6, 3.4}
	trueDM := 1.0
	chans := dispersedChannels(res, freqs, period, trueDM)

	binLow := signal.PeakBin(chans[0])
	binHigh := signal.PeakBin(chans[len(chans)-1])
	cands := CandidateRange(period, res, binLow, binHigh, freqs[0], freqs[len(freqs)-1], DefaultCandidates)

	r := Search(chans, freqs, period, cands)
	spacing := cands[1] - cands[0]
	if math.Abs(r.BestDM-trueDM) > 2*spacing+1e-12 {
		t.Fatalf("best DM %g, want %g within %g", r.BestDM, trueDM, 2*spacing)
	}
	if r.BestDM < cands[0] || r.BestDM > cands[len(cands)-1] {
		t.Fatalf("best DM %g outside its own bracket", r.BestDM)
	}

	again := Search(chans, freqs, period, cands)
	if again.BestDM != r.BestDM {
		t.Fatal("search is not deterministic")
	}
}

func TestSearchTieBreakFirst(t *testing.T) {
	// Flat profiles make every candidate tie; the first must win.
	flat := [][]float64{make([]float64, 100), make([]float64, 100)}
	freqs := []float64{0.2, 3.4}
	cands := []float64{0.5, 1.0, 1.5}
	r := Search(flat, freqs, 0.16, cands)
	if r.BestDM != cands[0] {
		t.Fatalf("tie broke to %g, want first candidate %g", r.BestDM, cands[0])
	}
}
