package main

// This file is the only one that talks to viper. Flag defaults come
// from an optional beamsim.toml in the working directory or
// /etc/beamsim; command-line flags override the file.

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/psrsim/beamsim/internal/pipeline"
)

// fileDefaults overlays beamsim.toml values onto the built-in defaults.
func fileDefaults() pipeline.Config {
	cfg := pipeline.DefaultConfig()

	v := viper.New()
	v.SetConfigName("beamsim")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/beamsim")
	if err := v.ReadInConfig(); err != nil {
		// No config file is a normal state; the defaults stand.
		return cfg
	}
	slog.Debug("config file loaded", "path", v.ConfigFileUsed())

	set := map[string]func(){
		"period":     func() { cfg.Period = v.GetFloat64("period") },
		"alpha":      func() { cfg.Alpha = v.GetFloat64("alpha") },
		"beta":       func() { cfg.Beta = v.GetFloat64("beta") },
		"hmin":       func() { cfg.HMinKm = v.GetFloat64("hmin") },
		"hmax":       func() { cfg.HMaxKm = v.GetFloat64("hmax") },
		"ncomp":      func() { cfg.NComp = v.GetInt("ncomp") },
		"npatch":     func() { cfg.NPatch = v.GetInt("npatch") },
		"seed":       func() { cfg.Seed = v.GetUint64("seed") },
		"snr":        func() { cfg.SNR = v.GetFloat64("snr") },
		"dm":         func() { cfg.DM = v.GetFloat64("dm") },
		"min-freq":   func() { cfg.MinFreqGHz = v.GetFloat64("min-freq") },
		"chan-bw":    func() { cfg.ChanBWGHz = v.GetFloat64("chan-bw") },
		"nchan":      func() { cfg.NChan = v.GetInt("nchan") },
		"aberration": func() { cfg.Aberration = v.GetBool("aberration") },
		"scatter":    func() { cfg.Scattering = v.GetBool("scatter") },
		"fan-beam":   func() { cfg.FanBeam = v.GetBool("fan-beam") },
		"resolution": func() { cfg.Resolution = v.GetInt("resolution") },
		"outfile":    func() { cfg.OutFile = v.GetString("outfile") },
	}
	for key, apply := range set {
		if v.IsSet(key) {
			apply()
		}
	}
	return cfg
}

// cliOptions holds flags that drive the binary rather than the pipeline.
type cliOptions struct {
	ppa     bool
	phi0    float64
	psi0    float64
	verbose bool
}

// parseFlags builds the run configuration from file defaults and flags.
func parseFlags(args []string) (pipeline.Config, cliOptions, error) {
	cfg := fileDefaults()
	var opts cliOptions

	fs := pflag.NewFlagSet("beamsim", pflag.ContinueOnError)
	fs.Float64Var(&cfg.Period, "period", cfg.Period, "rotation period in seconds")
	fs.Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "magnetic inclination in degrees")
	fs.Float64Var(&cfg.Beta, "beta", cfg.Beta, "impact parameter in degrees")
	fs.Float64Var(&cfg.HMinKm, "hmin", cfg.HMinKm, "minimum emission height in km (0 = period-dependent default)")
	fs.Float64Var(&cfg.HMaxKm, "hmax", cfg.HMaxKm, "maximum emission height in km (0 = 1000)")
	fs.IntVar(&cfg.NComp, "ncomp", cfg.NComp, "number of emission components")
	fs.IntVar(&cfg.NPatch, "npatch", cfg.NPatch, "number of patches per component")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "pseudo-random seed")
	fs.Float64Var(&cfg.SNR, "snr", cfg.SNR, "signal-to-noise ratio (0 = no noise)")
	fs.Float64Var(&cfg.DM, "dm", cfg.DM, "dispersion measure in pc cm^-3")
	fs.Float64Var(&cfg.MinFreqGHz, "min-freq", cfg.MinFreqGHz, "lowest channel frequency in GHz")
	fs.Float64Var(&cfg.ChanBWGHz, "chan-bw", cfg.ChanBWGHz, "channel bandwidth in GHz")
	fs.IntVar(&cfg.NChan, "nchan", cfg.NChan, "number of frequency channels")
	fs.BoolVar(&cfg.Aberration, "aberration", cfg.Aberration, "include aberration offsets")
	fs.BoolVar(&cfg.Scattering, "scatter", cfg.Scattering, "include interstellar scattering")
	fs.BoolVar(&cfg.FanBeam, "fan-beam", cfg.FanBeam, "fan beam instead of patchy beam")
	fs.IntVar(&cfg.Resolution, "resolution", cfg.Resolution, "grid cells per axis and phase bins per period")
	fs.StringVar(&cfg.OutFile, "outfile", cfg.OutFile, "append the fitted parameter record to this file")

	fs.BoolVar(&opts.ppa, "ppa", false, "print the rotating-vector-model position-angle swing")
	fs.Float64Var(&opts.phi0, "phi0", 0, "fiducial phase for --ppa, degrees")
	fs.Float64Var(&opts.psi0, "psi0", 0, "fiducial position angle for --ppa, degrees")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, opts, fmt.Errorf("parse flags: %w", err)
	}
	return cfg, opts, nil
}
