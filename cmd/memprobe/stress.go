package main

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/memaccess/accessor"
	"github.com/hupe1980/memaccess/bitcodec"
	"github.com/hupe1980/memaccess/internal/mmap"
	"github.com/hupe1980/memaccess/strategy"
)

var errCounterMismatch = errors.New("counter mismatch")

type stressConfig struct {
	goroutines int
	iterations int
	strategy   string
	opsPerSec  float64
	progress   time.Duration
}

type stressResult struct {
	strategy strategy.Type
	counter  int64
	elapsed  time.Duration
}

func (app *appCtx) stressCommand() *cobra.Command {
	cfg := stressConfig{}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "contend on a compare-and-swap counter in native memory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.stress(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "strategy=%s goroutines=%d iterations=%d counter=%d elapsed=%s\n",
				res.strategy, cfg.goroutines, cfg.iterations, res.counter, res.elapsed)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.goroutines, "goroutines", 4, "number of contending goroutines")
	flags.IntVar(&cfg.iterations, "iterations", 10000, "increments per goroutine")
	flags.StringVar(&cfg.strategy, "strategy", strategy.TypePlatformAware.String(), "strategy role: standard, alignment-aware or platform-aware")
	flags.Float64Var(&cfg.opsPerSec, "ops-per-sec", 0, "throttle increments across all goroutines (0 = unlimited)")
	flags.DurationVar(&cfg.progress, "progress", time.Second, "minimum interval between progress logs")
	return cmd
}

func (app *appCtx) stress(ctx context.Context, cfg stressConfig) (stressResult, error) {
	if cfg.goroutines <= 0 || cfg.iterations < 0 {
		return stressResult{}, fmt.Errorf("invalid workload: %d goroutines, %d iterations", cfg.goroutines, cfg.iterations)
	}

	t, err := strategy.ParseType(cfg.strategy)
	if err != nil {
		return stressResult{}, err
	}
	s, err := app.provider.Get(t)
	if err != nil {
		return stressResult{}, fmt.Errorf("strategy %s: %w", t, err)
	}

	m, err := mmap.MapAnon(bitcodec.CacheLineLength)
	if err != nil {
		return stressResult{}, err
	}
	defer m.Close()

	d, err := accessor.NewDirect(accessor.WithStrategy(s))
	if err != nil {
		return stressResult{}, err
	}
	addr := m.Address()

	var limiter *rate.Limiter
	if cfg.opsPerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.opsPerSec), 1)
	}

	logger := app.logger.WithStrategy(app.provider.Resolve(t).String()).WithAddress(addr)
	total := int64(cfg.goroutines) * int64(cfg.iterations)
	progress := rate.Sometimes{Interval: cfg.progress}
	var done atomic.Int64

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for range cfg.goroutines {
		g.Go(func() error {
			for range cfg.iterations {
				if limiter != nil {
					if err := limiter.Wait(gctx); err != nil {
						return err
					}
				} else if err := gctx.Err(); err != nil {
					return err
				}

				for {
					cur := d.GetLongVolatile(addr)
					if d.CompareAndSwapLong(addr, cur, cur+1) {
						break
					}
				}

				n := done.Add(1)
				progress.Do(func() { logger.LogStressProgress(gctx, n, total) })
			}
			return nil
		})
	}
	err = g.Wait()
	elapsed := time.Since(start)
	counter := d.GetLongVolatile(addr)

	logger.LogStress(ctx, cfg.goroutines, cfg.iterations, counter, elapsed, err)
	if err != nil {
		return stressResult{}, err
	}
	if counter != total {
		return stressResult{}, fmt.Errorf("%w: expected %d, got %d", errCounterMismatch, total, counter)
	}
	return stressResult{strategy: app.provider.Resolve(t), counter: counter, elapsed: elapsed}, nil
}
