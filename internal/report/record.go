// Package report writes the per-run parameter record consumed by
// downstream tooling.
package report

import (
	"fmt"
	"os"

	"github.com/psrsim/beamsim/internal/pipeline"
)

// Append writes one whitespace-separated record line
//
//	period alpha beta w10_first w10_last seed best_dm
//
// to path, creating the file when needed. Failures are returned, never
// swallowed; the record is the only durable output of a run.
func Append(path string, res *pipeline.Result) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	cfg := res.Config
	line := fmt.Sprintf("%g %g %g %g %g %d %g\n",
		cfg.Period, cfg.Alpha, cfg.Beta,
		res.W10[0], res.W10[len(res.W10)-1],
		cfg.Seed, res.BestDM)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}
