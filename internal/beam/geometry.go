package beam

import "math"

const (
	speedOfLight = 2.99792458e8 // m/s
	kmToM        = 1e3
)

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// LOS is the trajectory the observer's sight line traces across the
// projected beam over one rotation. X, Y and Theta are in degrees and
// share one entry per phase bin.
type LOS struct {
	X, Y, Theta []float64
}

// LineOfSight computes the sight-line trace for magnetic inclination
// alpha and impact parameter beta (degrees) over res phase steps
// spanning -180..180 degrees inclusive.
//
// Theta is the angular distance between the sight line and the magnetic
// axis from the spherical cosine rule with zeta = alpha+beta; the
// beam-frame azimuth follows the same spherical triangle the rotating
// vector model uses, so profile phases and position-angle phases line
// up. When sin(theta) vanishes the azimuth is undefined; the trace is
// pinned to the grid center (azimuth 0) instead of dividing by zero.
func LineOfSight(alpha, beta float64, res int) LOS {
	a := deg2rad(alpha)
	zeta := deg2rad(alpha + beta)
	los := LOS{
		X:     make([]float64, res),
		Y:     make([]float64, res),
		Theta: make([]float64, res),
	}
	for i := 0; i < res; i++ {
		phi := deg2rad(GridMin + (GridMax-GridMin)*float64(i)/float64(res-1))
		cosTheta := math.Cos(a)*math.Cos(zeta) + math.Sin(a)*math.Sin(zeta)*math.Cos(phi)
		cosTheta = math.Max(-1, math.Min(1, cosTheta))
		theta := math.Acos(cosTheta)
		sinTheta := math.Sin(theta)

		var az float64
		switch {
		case sinTheta < 1e-12:
			az = 0
		case math.Abs(math.Sin(a)) < 1e-12:
			// Aligned rotator: the beam frame co-rotates, azimuth is the
			// rotation phase itself.
			az = phi
		default:
			sinAz := math.Sin(zeta) * math.Sin(phi) / sinTheta
			cosAz := (math.Cos(zeta) - math.Cos(a)*cosTheta) / (math.Sin(a) * sinTheta)
			az = math.Atan2(sinAz, cosAz)
		}

		thetaDeg := rad2deg(theta)
		los.X[i] = thetaDeg * math.Sin(az)
		los.Y[i] = thetaDeg * math.Cos(az)
		los.Theta[i] = thetaDeg
	}
	return los
}

// OpeningAngle returns the half-opening angle (degrees) of the cone of
// last open field lines at emission height h (km) for rotation period P
// (seconds): rho = (3/2)·sqrt(2·pi·h/(c·P)).
func OpeningAngle(period, height float64) float64 {
	return rad2deg(1.5 * math.Sqrt(2*math.Pi*height*kmToM/(speedOfLight*period)))
}

// PatchWidths returns the Gaussian half-width (degrees) of the emission
// patches at each height: a tenth of the opening angle, so widths grow
// with height and shrink with period.
func PatchWidths(period float64, heights []float64) []float64 {
	w := make([]float64, len(heights))
	for i, h := range heights {
		w[i] = OpeningAngle(period, h) / 10
	}
	return w
}

// AberrationOffsets returns the per-height (x, y) kernel-center shift
// (degrees) due to relativistic aberration. The co-rotation speed at
// height h gives an angle 2·pi·h/(c·P), applied against the rotation
// direction and scaled by sin(alpha); an aligned rotator gets no shift.
func AberrationOffsets(heights []float64, period, alpha float64) (xoff, yoff []float64) {
	xoff = make([]float64, len(heights))
	yoff = make([]float64, len(heights))
	sa := math.Sin(deg2rad(alpha))
	for i, h := range heights {
		mag := rad2deg(2 * math.Pi * h * kmToM / (speedOfLight * period))
		xoff[i] = -mag * sa
		yoff[i] = 0
	}
	return xoff, yoff
}
