package propagation

import (
	"math"

	"github.com/psrsim/beamsim/internal/signal"
)

// Cold-plasma dispersion constant in seconds, for DM in pc cm⁻³ and
// frequencies in GHz.
const dispersionConstS = 4.148808e-3

// Delay returns the extra arrival time in seconds of frequency f
// relative to the reference fref (both GHz) for dispersion measure dm.
// Positive when f is below the reference.
func Delay(fref, f, dm float64) float64 {
	return dispersionConstS * dm * (1/(f*f) - 1/(fref*fref))
}

// DelayBins converts the relative dispersion delay to whole phase bins
// of width tres seconds.
func DelayBins(fref, f, dm, tres float64) int {
	return int(math.Round(Delay(fref, f, dm) / tres))
}

// Disperse delays a channel's profile by rolling it later by the
// frequency-dependent bin shift. Rolling by the negated shift
// de-disperses.
func Disperse(prof []float64, fref, f, dm, tres float64) []float64 {
	return signal.Roll(prof, DelayBins(fref, f, dm, tres))
}
