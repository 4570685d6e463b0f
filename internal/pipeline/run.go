package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/psrsim/beamsim/internal/beam"
	"github.com/psrsim/beamsim/internal/dmfit"
	"github.com/psrsim/beamsim/internal/propagation"
	"github.com/psrsim/beamsim/internal/signal"
)

// Periods replicated in the pulse train for scatter convolution.
const trainPeriods = 3

// Result is the read-only output bundle of one run, handed to the
// reporting and plotting collaborators. Nothing here is mutated after
// Run returns.
type Result struct {
	RunID  uuid.UUID
	Config Config

	Freqs   []float64 // channel frequencies, GHz
	Phase   []float64 // phase axis, degrees
	Heights []float64 // nominal emission heights, km

	Beams    []*beam.Field // per-channel 2D beam field
	Profiles [][]float64   // per-channel observed profile
	W10      []float64     // per-channel 10%-peak width, degrees

	ScatterTimes []float64 // per-channel timescale, s (scattering runs only)

	BestDM       float64
	DMCandidates []float64
}

// Run executes the full pipeline for one configuration: per-channel
// beam synthesis and profile extraction, then the propagation stages
// (scattering, dispersion, noise — each only when configured), then the
// dispersion-measure fit. The same Config always produces bit-identical
// results.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	res := &Result{
		RunID:  uuid.New(),
		Config: cfg,
		Freqs:  cfg.Frequencies(),
	}
	log := slog.With("run", res.RunID.String())

	grid := beam.NewGrid(cfg.Resolution)
	res.Phase = grid.Phase()
	los := beam.LineOfSight(cfg.Alpha, cfg.Beta, cfg.Resolution)
	res.Heights = beam.EmissionHeights(cfg.Period, cfg.NComp, cfg.Seed, cfg.HMinKm, cfg.HMaxKm)

	for _, freq := range res.Freqs {
		heights := beam.HeightsAtFrequency(res.Heights, freq)
		ps := beam.PatchSet{Widths: beam.PatchWidths(cfg.Period, heights)}
		ps.CenterX, ps.CenterY = beam.PatchCenters(cfg.Period, heights, cfg.NPatch, cfg.Seed, cfg.FanBeam)
		if cfg.Aberration {
			ps.AbX, ps.AbY = beam.AberrationOffsets(heights, cfg.Period, cfg.Alpha)
		}

		field := beam.Synthesize(grid, ps)
		prof := beam.ExtractProfile(field, grid, los)

		res.Beams = append(res.Beams, field)
		res.Profiles = append(res.Profiles, prof)
		res.W10 = append(res.W10, signal.WidthAt10(prof))
		log.Debug("channel synthesized", "freq_ghz", freq, "w10_deg", res.W10[len(res.W10)-1])
	}

	tres := cfg.Period / float64(cfg.Resolution)
	fref := res.Freqs[len(res.Freqs)-1]
	profiles := res.Profiles

	if cfg.Scattering {
		scattered := make([][]float64, len(profiles))
		for i, prof := range profiles {
			tau := propagation.ScatterTime(res.Freqs[i], cfg.DM, cfg.Seed)
			res.ScatterTimes = append(res.ScatterTimes, tau)
			train := propagation.PulseTrain(trainPeriods, cfg.Resolution, prof)
			kernel := propagation.BroadeningKernel(tau, cfg.Period, cfg.Resolution)
			scattered[i] = propagation.ExtractPulse(propagation.Scatter(train, kernel), cfg.Resolution)
		}
		profiles = scattered
		log.Debug("scattering applied", "tau_low_s", res.ScatterTimes[0])
	}

	if cfg.DM > 0 {
		dispersed := make([][]float64, len(profiles))
		for i, prof := range profiles {
			dispersed[i] = propagation.Disperse(prof, fref, res.Freqs[i], cfg.DM, tres)
		}
		profiles = dispersed
	}

	if cfg.SNR > 0 {
		var peak float64
		for _, prof := range profiles {
			peak = max(peak, signal.Peak(prof))
		}
		profiles = propagation.AddNoise(profiles, propagation.NoiseRMS(cfg.SNR, peak), cfg.Seed)
	}
	res.Profiles = profiles

	binLow := signal.PeakBin(profiles[0])
	binHigh := signal.PeakBin(profiles[len(profiles)-1])
	res.DMCandidates = dmfit.CandidateRange(cfg.Period, cfg.Resolution,
		binLow, binHigh, res.Freqs[0], fref, dmfit.DefaultCandidates)
	fit := dmfit.Search(profiles, res.Freqs, cfg.Period, res.DMCandidates)
	res.BestDM = fit.BestDM

	log.Info("run complete",
		"channels", cfg.NChan,
		"best_dm", res.BestDM,
		"w10_first_deg", res.W10[0],
		"w10_last_deg", res.W10[len(res.W10)-1],
	)
	return res, nil
}
