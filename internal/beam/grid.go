// Package beam models the pulsar emission beam: the angular grid over the
// projected polar cap, the rotating line of sight, emission heights and
// patch placement, and the synthesized 2D intensity field with its 1D
// profile cut.
package beam

import "math"

// Angular extent of the projected polar-cap grid, degrees.
const (
	GridMin = -180.0
	GridMax = 180.0
)

// Grid is a square discretization of the projected angle space
// [GridMin,GridMax]². Every component of one run (field accumulation,
// line-of-sight mapping, index conversion) must share the same Grid;
// mixing resolutions corrupts indexing.
type Grid struct {
	Res  int
	step float64
}

// NewGrid returns a grid with res cells per axis.
func NewGrid(res int) Grid {
	return Grid{Res: res, step: (GridMax - GridMin) / float64(res)}
}

// Node returns the coordinate of the i-th grid node. Nodes span the full
// extent inclusively, matching the phase axis.
func (g Grid) Node(i int) float64 {
	return GridMin + (GridMax-GridMin)*float64(i)/float64(g.Res-1)
}

// Index converts a coordinate to its enclosing grid index, clamped to
// [0,Res-1] so an imprecise line-of-sight coordinate can never escape
// the field.
func (g Grid) Index(coord float64) int {
	i := int(math.Floor((coord - GridMin) / g.step))
	if i < 0 {
		return 0
	}
	if i >= g.Res {
		return g.Res - 1
	}
	return i
}

// Phase returns the rotational phase axis in degrees, one value per bin,
// spanning -180..180 inclusive.
func (g Grid) Phase() []float64 {
	ph := make([]float64, g.Res)
	for i := range ph {
		ph[i] = g.Node(i)
	}
	return ph
}

// Field is a dense Res×Res intensity field over the grid, row-major in x.
type Field struct {
	Res  int
	Data []float64
}

// NewField returns a zeroed field over a res-cell grid.
func NewField(res int) *Field {
	return &Field{Res: res, Data: make([]float64, res*res)}
}

// At returns the intensity at cell (ix, iy).
func (f *Field) At(ix, iy int) float64 { return f.Data[ix*f.Res+iy] }

// Add accumulates v into cell (ix, iy).
func (f *Field) Add(ix, iy int, v float64) { f.Data[ix*f.Res+iy] += v }
