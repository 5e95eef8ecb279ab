package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/svgies/svgie/bench"
	"github.com/svgies/svgie/config"
	"github.com/svgies/svgie/ui"
)

func newBenchCmd(u ui.UI) *cobra.Command {
	defaults := bench.DefaultConfig()
	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Time identicon generation for every supported chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := bench.Config{
				Iterations: config.BenchIterations,
				Warmup:     config.BenchWarmup,
				Size:       config.BenchSize,
				RandomSeed: config.BenchRandomSeed,
			}
			p := message.NewPrinter(language.English)
			stop := u.Spinner(p.Sprintf("Running %d iterations per chain (%d warmup)...", cfg.Iterations, cfg.Warmup))
			results, err := bench.Run(cmd.Context(), cfg, logger)
			stop()
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{
					r.Chain.String(),
					millis(r.Avg),
					millis(r.Min),
					millis(r.Max),
					millis(r.Median),
				})
			}
			u.Section("Results (in milliseconds)")
			u.Table([]string{"Chain", "Avg", "Min", "Max", "Median"}, rows)

			summary, err := bench.Summarize(results)
			if err != nil {
				return err
			}
			u.Success("Fastest: %s (%sms)", summary.Fastest.Chain, millis(summary.Fastest.Avg))
			u.Warn("Slowest: %s (%sms)", summary.Slowest.Chain, millis(summary.Slowest.Avg))
			u.Info("Difference: %.1f%% slower", summary.SlowdownPercent)
			return nil
		},
	}
	benchCmd.Flags().IntVarP(&config.BenchIterations, "iterations", "n", defaults.Iterations, "Timed iterations per chain")
	benchCmd.Flags().IntVarP(&config.BenchWarmup, "warmup", "w", defaults.Warmup, "Untimed warmup iterations per chain")
	benchCmd.Flags().IntVarP(&config.BenchSize, "size", "s", defaults.Size, "SVG size in pixels")
	benchCmd.Flags().BoolVar(&config.BenchRandomSeed, "random-seed", false, "Use a fresh random seed for every call")
	return benchCmd
}

func millis(d time.Duration) string {
	return fmt.Sprintf("%.3f", float64(d)/float64(time.Millisecond))
}
