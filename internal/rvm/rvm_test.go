package rvm

import (
	"math"
	"testing"
)

func phases(n int) []float64 {
	ph := make([]float64, n)
	for i := range ph {
		ph[i] = -180 + 360*float64(i)/float64(n-1)
	}
	return ph
}

func TestPositionAnglesRange(t *testing.T) {
	for _, tc := range []struct{ alpha, beta, phi0, psi0 float64 }{
		{45, 5, 0, 0},
		{45, 15, 10, 15},
		{80, -10, -30, 85},
		{10, 3, 0, -89},
	} {
		psi := PositionAngles(tc.alpha, tc.beta, tc.phi0, tc.psi0, phases(721))
		if len(psi) != 721 {
			t.Fatalf("got %d angles, want 721", len(psi))
		}
		for i, p := range psi {
			if math.IsNaN(p) {
				t.Fatalf("alpha=%g beta=%g: NaN at bin %d", tc.alpha, tc.beta, i)
			}
			if p <= -90-1e-9 || p > 90+1e-9 {
				t.Fatalf("alpha=%g beta=%g: psi=%g outside (-90, 90]", tc.alpha, tc.beta, p)
			}
		}
	}
}

func TestPositionAngleAtFiducialPhase(t *testing.T) {
	psi := PositionAngles(45, 15, 10, 15, []float64{10})
	if math.Abs(psi[0]-15) > 1e-9 {
		t.Fatalf("psi(phi0) = %g, want psi0 = 15", psi[0])
	}
}

func TestPositionAnglesSteepestAtFiducial(t *testing.T) {
	// The classic RVM S-swing: steepest gradient near the fiducial
	// plane, with slope sign set by beta.
	ph := phases(3601)
	psi := PositionAngles(45, 5, 0, 0, ph)
	mid := len(ph) / 2
	slopeMid := math.Abs(psi[mid+10] - psi[mid-10])
	slopeEdge := math.Abs(psi[110] - psi[90])
	if slopeMid <= slopeEdge {
		t.Fatalf("swing not steepest at fiducial phase: %g vs %g", slopeMid, slopeEdge)
	}
}

func TestPositionAnglesDegenerateDenominator(t *testing.T) {
	// An orthogonal rotator with beta = 0 zeroes the denominator at
	// every phase; the arctangent limit must apply, never NaN or Inf.
	psi := PositionAngles(90, 0, 0, 10, phases(361))
	for i, p := range psi {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("degenerate geometry produced %g at bin %d", p, i)
		}
		if p <= -90-1e-9 || p > 90+1e-9 {
			t.Fatalf("degenerate geometry psi=%g outside (-90, 90]", p)
		}
	}
}
