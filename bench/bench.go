// Package bench times the identicon pipelines against one reference address
// per chain.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/svgies/svgie/chain"
	"github.com/svgies/svgie/svgie"
)

type Config struct {
	Iterations int
	Warmup     int
	Size       int
	// RandomSeed gives every call a fresh seed so no two documents are equal.
	RandomSeed bool
}

func DefaultConfig() Config {
	return Config{
		Iterations: 100,
		Warmup:     10,
		Size:       128,
	}
}

type Target struct {
	Chain   chain.Type
	Address string
}

// Targets are benchmarked in this order.
var Targets = []Target{
	{chain.Arweave, "E_pOZW6MDRtcTraQlIEM0p4l_AedIadAO9j-RzuPol8"},
	{chain.EVM, "0xA3Ca2a4BFb8Af380cf2D42e40A832E7a205db08e"},
	{chain.Solana, "DYw8jCTfwHNRJhhmFcbXvVDTqWMEVFBX6ZKUmG5CNSKK"},
	{chain.Bitcoin, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"},
}

type Result struct {
	Chain   chain.Type
	Samples int
	Avg     time.Duration
	Min     time.Duration
	Max     time.Duration
	Median  time.Duration
}

type Summary struct {
	Fastest Result
	Slowest Result
	// SlowdownPercent is how much slower the slowest average is than the fastest.
	SlowdownPercent float64
}

var ErrNoResults = errors.New("no benchmark results")

func (c Config) validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("iterations must be at least 1, got %d", c.Iterations)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("warmup must not be negative, got %d", c.Warmup)
	}
	if c.Size < 1 {
		return fmt.Errorf("size must be at least 1, got %d", c.Size)
	}
	return nil
}

// Run benchmarks every target. The context is checked between calls.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(Targets))
	for _, target := range Targets {
		logger.Debug("benchmarking chain",
			zap.Stringer("chain", target.Chain),
			zap.Int("iterations", cfg.Iterations),
			zap.Int("warmup", cfg.Warmup),
		)
		result, err := Measure(ctx, target, cfg)
		if err != nil {
			return nil, err
		}
		logger.Debug("chain done",
			zap.Stringer("chain", target.Chain),
			zap.Duration("avg", result.Avg),
			zap.Duration("median", result.Median),
		)
		results = append(results, result)
	}
	return results, nil
}

// Measure runs cfg.Warmup untimed calls, then cfg.Iterations timed ones.
func Measure(ctx context.Context, target Target, cfg Config) (Result, error) {
	fn := svgie.For(target.Chain)
	if fn == nil {
		return Result{}, fmt.Errorf("%w: %s", chain.ErrUnknownChain, target.Chain)
	}
	call := func() error {
		opts := []svgie.Option{svgie.WithSize(cfg.Size)}
		if cfg.RandomSeed {
			opts = append(opts, svgie.WithSeed(uuid.NewString()))
		}
		if _, ok := fn(target.Address, opts...); !ok {
			return fmt.Errorf("%s rejected reference address %s", target.Chain, target.Address)
		}
		return nil
	}

	for i := 0; i < cfg.Warmup; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := call(); err != nil {
			return Result{}, err
		}
	}
	samples := make([]time.Duration, 0, cfg.Iterations)
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		start := time.Now()
		if err := call(); err != nil {
			return Result{}, err
		}
		samples = append(samples, time.Since(start))
	}
	result := Stats(samples)
	result.Chain = target.Chain
	return result, nil
}

// Stats computes the average, extremes and median of samples. The median is
// the element at n/2 after sorting.
func Stats(samples []time.Duration) Result {
	if len(samples) == 0 {
		return Result{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	var total time.Duration
	for _, s := range sorted {
		total += s
	}
	return Result{
		Samples: len(sorted),
		Avg:     total / time.Duration(len(sorted)),
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Median:  sorted[len(sorted)/2],
	}
}

// Summarize picks the fastest and slowest chain by average.
func Summarize(results []Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrNoResults
	}
	s := Summary{Fastest: results[0], Slowest: results[0]}
	for _, r := range results[1:] {
		if r.Avg < s.Fastest.Avg {
			s.Fastest = r
		}
		if r.Avg > s.Slowest.Avg {
			s.Slowest = r
		}
	}
	if s.Fastest.Avg > 0 {
		s.SlowdownPercent = (float64(s.Slowest.Avg)/float64(s.Fastest.Avg) - 1) * 100
	}
	return s, nil
}
