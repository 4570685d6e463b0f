package beam

import (
	"math"
	"math/rand/v2"
)

// PatchCenters places npatch emission patch centers (degrees on the
// grid) for every emission height. Patchy beams scatter centers over the
// annulus between half the opening angle and the full opening angle at
// that height; fan beams space them evenly around the full ring.
//
// The placement is fully determined by seed, so every frequency channel
// of a run sees the same azimuth pattern scaled by its own opening
// angles.
func PatchCenters(period float64, heights []float64, npatch int, seed uint64, fan bool) (cx, cy [][]float64) {
	rng := rand.New(rand.NewPCG(seed, seed))
	cx = make([][]float64, len(heights))
	cy = make([][]float64, len(heights))
	for i, h := range heights {
		rho := OpeningAngle(period, h)
		xs := make([]float64, npatch)
		ys := make([]float64, npatch)
		for p := 0; p < npatch; p++ {
			var az, r float64
			if fan {
				az = 2 * math.Pi * float64(p) / float64(npatch)
				r = rho
			} else {
				az = 2 * math.Pi * rng.Float64()
				r = rho * (0.5 + 0.5*rng.Float64())
			}
			xs[p] = r * math.Sin(az)
			ys[p] = r * math.Cos(az)
		}
		cx[i] = xs
		cy[i] = ys
	}
	return cx, cy
}
