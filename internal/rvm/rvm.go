// Package rvm implements the rotating vector model, predicting the
// polarisation position-angle swing across a pulsar profile from its
// magnetic geometry.
package rvm

import "math"

func deg2rad(d float64) float64 { return d * math.Pi / 180 }
func rad2deg(r float64) float64 { return r * 180 / math.Pi }

// PositionAngles predicts the position angle in degrees at each
// rotational phase (degrees) for magnetic inclination alpha, impact
// parameter beta, fiducial phase phi0 and fiducial position angle psi0
// (all degrees):
//
//	psi = psi0 + atan( sin(alpha)·sin(phi-phi0) /
//	        (sin(zeta)·cos(alpha) - cos(zeta)·sin(alpha)·cos(phi-phi0)) )
//
// with zeta = alpha+beta. Results are wrapped into (-90°, 90°] by a
// single ±180° correction. A vanishing denominator takes the ±90°
// arctangent limit instead of propagating a division by zero.
func PositionAngles(alpha, beta, phi0, psi0 float64, phase []float64) []float64 {
	a := deg2rad(alpha)
	zeta := deg2rad(alpha + beta)
	p0 := deg2rad(phi0)
	s0 := deg2rad(psi0)

	out := make([]float64, len(phase))
	for i, ph := range phase {
		dphi := deg2rad(ph) - p0
		num := math.Sin(a) * math.Sin(dphi)
		den := math.Sin(zeta)*math.Cos(a) - math.Cos(zeta)*math.Sin(a)*math.Cos(dphi)

		var psi float64
		switch {
		case math.Abs(den) > 1e-15:
			psi = s0 + math.Atan(num/den)
		case num != 0:
			psi = s0 + math.Copysign(math.Pi/2, num)
		default:
			psi = s0
		}

		if psi <= -math.Pi/2 {
			psi += math.Pi
		} else if psi > math.Pi/2 {
			psi -= math.Pi
		}
		out[i] = rad2deg(psi)
	}
	return out
}
