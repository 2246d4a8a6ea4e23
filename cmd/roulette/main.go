package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/drop0ne/Roulette-Simulator/pool"
	"github.com/drop0ne/Roulette-Simulator/roulette"
)

func main() {
	if err := run(); err != nil {
		colorPrintf(Red, "roulette: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := parseFlags()
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	opts := []pool.Option{}
	if cfg.MaxTrialsPerSec > 0 {
		burst := max(cfg.Workers, 1)
		opts = append(opts, pool.WithRateLimit(cfg.MaxTrialsPerSec, burst))
	}

	p, err := pool.New(cfg.Workers, opts...)
	if err != nil {
		return err
	}

	printHeader(cfg)
	start := time.Now()

	futures := make([]*pool.Future[roulette.TrialResult], 0, cfg.Trials)
	for i := 0; i < cfg.Trials; i++ {
		settings := cfg.Settings(i)
		f, err := pool.Submit(p, func(ctx context.Context) (roulette.TrialResult, error) {
			return roulette.RunTrial(ctx, settings)
		})
		if err != nil {
			return fmt.Errorf("submit trial %d: %w", i, err)
		}
		futures = append(futures, f)
	}

	bar := makeProgressBar(cfg.Trials)
	results := make([]roulette.TrialResult, 0, len(futures))
	for i, f := range futures {
		res, err := f.Get()
		if err != nil {
			return fmt.Errorf("trial %d failed: %w", i, err)
		}
		results = append(results, res)
		_ = bar.Add(1)
	}

	if err := p.Shutdown(30 * time.Second); err != nil {
		return err
	}

	renderSummary(roulette.Summarize(results), time.Since(start))
	renderSampleSession(results[0])
	return nil
}

// parseFlags layers command-line flags over the optional YAML config,
// which itself layers over the defaults.
func parseFlags() (roulette.Config, error) {
	var (
		configPath    = flag.String("config", "", "path to YAML config file")
		trials        = flag.Int("trials", 0, "number of trials to simulate")
		workers       = flag.Int("workers", 0, "worker pool size (default: GOMAXPROCS)")
		bankroll      = flag.Float64("bankroll", 0, "starting bankroll per trial")
		lossThreshold = flag.Int("loss-threshold", 0, "consecutive losses before switching bet color")
		maxSpins      = flag.Int("max-spins", 0, "spin limit per trial")
		target        = flag.Float64("target", 0, "stop a trial early at this bankroll (0 = off)")
		seed          = flag.Int64("seed", 0, "base seed for reproducible runs (0 = random)")
	)
	flag.Parse()

	cfg := roulette.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = roulette.LoadConfig(*configPath); err != nil {
			return roulette.Config{}, err
		}
	}

	if *trials > 0 {
		cfg.Trials = *trials
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *bankroll > 0 {
		cfg.Bankroll = *bankroll
	}
	if *lossThreshold > 0 {
		cfg.LossThreshold = *lossThreshold
	}
	if *maxSpins > 0 {
		cfg.MaxSpins = *maxSpins
	}
	if *target > 0 {
		cfg.Target = *target
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	return cfg, nil
}
