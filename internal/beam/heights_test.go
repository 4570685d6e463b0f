package beam

import (
	"math"
	"slices"
	"testing"
)

func TestEmissionHeightsBounds(t *testing.T) {
	tests := []struct {
		name           string
		period         float64
		hmin, hmax     float64
		wantLo, wantHi float64
	}{
		{"explicit bounds", 0.16, 300, 600, 300, 600},
		{"slow pulsar defaults", 0.16, 0, 0, 20, 1000},
		{"fast pulsar defaults", 0.1, 0, 0, 950, 1000},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			heights := EmissionHeights(tc.period, 50, 4, tc.hmin, tc.hmax)
			if len(heights) != 50 {
				t.Fatalf("got %d heights, want 50", len(heights))
			}
			for _, h := range heights {
				if h < tc.wantLo || h > tc.wantHi {
					t.Fatalf("height %g outside [%g, %g]", h, tc.wantLo, tc.wantHi)
				}
			}
		})
	}
}

func TestEmissionHeightsDeterministic(t *testing.T) {
	a := EmissionHeights(0.16, 4, 4, 0, 0)
	b := EmissionHeights(0.16, 4, 4, 0, 0)
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different heights: %v vs %v", a, b)
	}
	c := EmissionHeights(0.16, 4, 5, 0, 0)
	if slices.Equal(a, c) {
		t.Fatalf("different seeds produced identical heights: %v", a)
	}
}

func TestHeightsAtFrequencyMonotonic(t *testing.T) {
	heights := []float64{100, 500}
	lo := HeightsAtFrequency(heights, 0.2)
	mid := HeightsAtFrequency(heights, 1.0)
	hi := HeightsAtFrequency(heights, 3.4)
	for i := range heights {
		if !(lo[i] > mid[i] && mid[i] > hi[i]) {
			t.Errorf("height %g: RFM not decreasing in frequency: %g %g %g",
				heights[i], lo[i], mid[i], hi[i])
		}
		if math.Abs(mid[i]-heights[i]) > 1e-12 {
			t.Errorf("RFM at 1 GHz should be the identity, got %g for %g", mid[i], heights[i])
		}
	}
}
