// Command beamsim synthesizes a pulsar's radio beam across frequency
// channels, propagates the profiles through the interstellar medium and
// fits the dispersion measure back out of the result.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/psrsim/beamsim/internal/pipeline"
	"github.com/psrsim/beamsim/internal/report"
	"github.com/psrsim/beamsim/internal/rvm"
	"github.com/psrsim/beamsim/internal/signal"
)

func main() {
	cfg, opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))

	res, err := pipeline.Run(cfg)
	if err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("beam grid: %s cells per channel, %d channels\n",
		humanize.Comma(int64(cfg.Resolution)*int64(cfg.Resolution)), cfg.NChan)
	for i, freq := range res.Freqs {
		fmt.Printf("  %s: peak %.4g, w10 %.2f deg\n",
			humanize.SIWithDigits(freq*1e9, 2, "Hz"),
			signal.Peak(res.Profiles[i]), res.W10[i])
	}
	fmt.Printf("best-fit DM: %.4f pc cm^-3 (configured %.4f)\n", res.BestDM, cfg.DM)

	if opts.ppa {
		psi := rvm.PositionAngles(cfg.Alpha, cfg.Beta, opts.phi0, opts.psi0, res.Phase)
		lo, hi := psi[0], psi[0]
		for _, p := range psi {
			if p < lo {
				lo = p
			}
			if p > hi {
				hi = p
			}
		}
		fmt.Printf("PPA swing: %.2f to %.2f deg across the profile\n", lo, hi)
	}

	if cfg.OutFile != "" {
		if err := report.Append(cfg.OutFile, res); err != nil {
			slog.Error("record write failed", "error", err)
			os.Exit(1)
		}
		slog.Info("parameter record appended", "path", cfg.OutFile)
	}
}
