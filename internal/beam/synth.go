package beam

import "math"

// PatchSet bundles everything the synthesizer needs for one frequency
// channel: per-component patch widths and centers, plus optional
// aberration offsets (nil when aberration is off).
type PatchSet struct {
	Widths           []float64
	CenterX, CenterY [][]float64
	AbX, AbY         []float64
}

// Synthesize accumulates every component's Gaussian patches into a dense
// intensity field. Each patch contributes
// exp(-(dx²+dy²)/(2σ²)) inside 3σ of its (aberration-shifted) center and
// exactly nothing beyond; the cutoff is hard, so the field is exactly
// zero outside the union of patch supports. Overlapping patches
// superpose additively.
func Synthesize(g Grid, ps PatchSet) *Field {
	field := NewField(g.Res)
	for c := range ps.Widths {
		sigma := ps.Widths[c]
		cut := 3 * sigma
		var abx, aby float64
		if ps.AbX != nil {
			abx, aby = ps.AbX[c], ps.AbY[c]
		}
		for p := range ps.CenterX[c] {
			pcx := ps.CenterX[c][p] + abx
			pcy := ps.CenterY[c][p] + aby
			for ix := 0; ix < g.Res; ix++ {
				dx := g.Node(ix) - pcx
				if math.Abs(dx) > cut {
					continue
				}
				for iy := 0; iy < g.Res; iy++ {
					dy := g.Node(iy) - pcy
					if dx*dx+dy*dy > cut*cut {
						continue
					}
					field.Add(ix, iy, math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma)))
				}
			}
		}
	}
	return field
}

// ExtractProfile samples the field at the nearest grid cell of every
// line-of-sight point. The profile has one sample per sight-line point;
// indices are clamped by Grid.Index, so the gather cannot run out of
// bounds.
func ExtractProfile(field *Field, g Grid, los LOS) []float64 {
	prof := make([]float64, len(los.X))
	for i := range los.X {
		prof[i] = field.At(g.Index(los.X[i]), g.Index(los.Y[i]))
	}
	return prof
}
