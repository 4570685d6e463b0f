// Package pipeline wires beam synthesis, propagation and the dispersion
// fit into a single reproducible run.
package pipeline

import "fmt"

// Config is the immutable parameter bundle for one run. Zero values on
// optional fields mean "feature off" (SNR, aberration, scattering, fan
// beam) or "use the period-dependent default" (height bounds).
type Config struct {
	Period float64 // rotation period, seconds
	Alpha  float64 // magnetic inclination, degrees
	Beta   float64 // impact parameter, degrees

	HMinKm float64 // minimum emission height, km (0 = period default)
	HMaxKm float64 // maximum emission height, km (0 = 1000 km)
	NComp  int     // number of emission components
	NPatch int     // patches per component

	Seed uint64

	SNR float64 // target signal-to-noise ratio (0 = no noise)
	DM  float64 // dispersion measure, pc cm⁻³

	MinFreqGHz float64 // lowest channel frequency
	ChanBWGHz  float64 // channel bandwidth
	NChan      int     // number of frequency channels

	Aberration bool
	Scattering bool
	FanBeam    bool

	Resolution int // grid cells per axis and phase bins per period

	OutFile string // parameter record destination ("" = don't write)
}

// DefaultConfig mirrors the historical defaults of the beam generator:
// a 0.16 s pulsar seen at alpha 45°, beta 5°, four components of ten
// patches, five channels from 0.2 GHz at 0.8 GHz spacing, DM 1.
func DefaultConfig() Config {
	return Config{
		Period:     0.16,
		Alpha:      45,
		Beta:       5,
		NComp:      4,
		NPatch:     10,
		Seed:       4,
		DM:         1,
		MinFreqGHz: 0.2,
		ChanBWGHz:  0.8,
		NChan:      5,
		Resolution: 1000,
	}
}

// Frequencies returns the channel frequencies in GHz, evenly spaced
// from MinFreqGHz by ChanBWGHz.
func (c Config) Frequencies() []float64 {
	freqs := make([]float64, c.NChan)
	for i := range freqs {
		freqs[i] = c.MinFreqGHz + float64(i)*c.ChanBWGHz
	}
	return freqs
}

// Validate reports the first invalid parameter, if any.
func (c Config) Validate() error {
	switch {
	case c.Period <= 0:
		return fmt.Errorf("period must be positive, got %g", c.Period)
	case c.Resolution < 2:
		return fmt.Errorf("resolution must be at least 2, got %d", c.Resolution)
	case c.NComp < 1:
		return fmt.Errorf("need at least one component, got %d", c.NComp)
	case c.NPatch < 1:
		return fmt.Errorf("need at least one patch per component, got %d", c.NPatch)
	case c.NChan < 2:
		return fmt.Errorf("dispersion fitting needs at least two channels, got %d", c.NChan)
	case c.MinFreqGHz <= 0:
		return fmt.Errorf("minimum frequency must be positive, got %g", c.MinFreqGHz)
	case c.ChanBWGHz <= 0:
		return fmt.Errorf("channel bandwidth must be positive, got %g", c.ChanBWGHz)
	case c.DM < 0:
		return fmt.Errorf("dispersion measure cannot be negative, got %g", c.DM)
	case c.SNR < 0:
		return fmt.Errorf("signal-to-noise ratio cannot be negative, got %g", c.SNR)
	}
	return nil
}
