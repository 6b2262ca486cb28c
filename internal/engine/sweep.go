package engine

import (
	"context"
	"io"
	"sort"
	"sync"

	"smacross/types"

	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type periodPair struct {
	fast int
	slow int
}

// SweepResult is one grid point of a parameter sweep.
type SweepResult struct {
	FastPeriod int
	SlowPeriod int
	Report     types.BacktestReport
}

// Sweep backtests every fast < slow pair of the grid, running up to
// workers backtests at once. Results are ordered by profit/loss, best first,
// with ties broken by fast then slow period.
func Sweep(ctx context.Context, candles []types.Candle, positions []types.Position, initialBalance decimal.Decimal, base *StrategyConfig, grid *SweepConfig) ([]SweepResult, error) {
	pairs := gridPairs(grid.fastPeriods, grid.slowPeriods)
	bar := initProgressBar(len(pairs), grid.progress)

	results := make([]SweepResult, 0, len(pairs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(grid.workers)
	for _, pair := range pairs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := Backtest(candles, positions, initialBalance, base.withPeriods(pair.fast, pair.slow))
			if err != nil {
				return err
			}
			mu.Lock()
			results = append(results, SweepResult{FastPeriod: pair.fast, SlowPeriod: pair.slow, Report: report})
			mu.Unlock()
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if !a.Report.ProfitLoss.Equal(b.Report.ProfitLoss) {
			return a.Report.ProfitLoss.GreaterThan(b.Report.ProfitLoss)
		}
		if a.FastPeriod != b.FastPeriod {
			return a.FastPeriod < b.FastPeriod
		}
		return a.SlowPeriod < b.SlowPeriod
	})
	return results, nil
}

func gridPairs(fast, slow []int) []periodPair {
	pairs := lo.FlatMap(lo.Uniq(fast), func(f int, _ int) []periodPair {
		return lo.Map(lo.Uniq(slow), func(s int, _ int) periodPair {
			return periodPair{fast: f, slow: s}
		})
	})
	return lo.Filter(pairs, func(p periodPair, _ int) bool {
		return p.fast >= 1 && p.fast < p.slow
	})
}

// DefaultSweepGrid returns the fast and slow periods of the reference sweep.
func DefaultSweepGrid() ([]int, []int) {
	return []int{5, 7, 9, 10, 12, 14, 20}, []int{20, 30, 50, 100, 200}
}

func initProgressBar(maxTicks int, w io.Writer) *progressbar.ProgressBar {
	if w == nil {
		return nil
	}
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Sweeping SMA periods..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
