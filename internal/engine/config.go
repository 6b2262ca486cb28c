package engine

import (
	"io"

	"smacross/strategies/smacross"
	"smacross/types"

	"github.com/shopspring/decimal"
)

type StrategyConfig struct {
	fast   int
	slow   int
	params smacross.Params
	policy types.ParsePolicy
}

func NewStrategyConfig(fast, slow int, params smacross.Params, policy types.ParsePolicy) *StrategyConfig {
	return &StrategyConfig{
		fast:   fast,
		slow:   slow,
		params: params,
		policy: policy,
	}
}

// withPeriods copies the config with a different fast/slow pair.
func (c *StrategyConfig) withPeriods(fast, slow int) *StrategyConfig {
	next := *c
	next.fast, next.slow = fast, slow
	return &next
}

type SweepConfig struct {
	fastPeriods []int
	slowPeriods []int
	workers     int
	progress    io.Writer
}

// NewSweepConfig describes a grid of fast x slow periods. progress receives
// the progress bar; nil disables it.
func NewSweepConfig(fastPeriods, slowPeriods []int, workers int, progress io.Writer) *SweepConfig {
	if workers < 1 {
		workers = 1
	}
	return &SweepConfig{
		fastPeriods: fastPeriods,
		slowPeriods: slowPeriods,
		workers:     workers,
		progress:    progress,
	}
}

type ReportingConfig struct {
	initialBalance decimal.Decimal
	printSignals   bool
	signalsFile    string
}

func NewReportingConfig(initialBalance decimal.Decimal, printSignals bool, signalsFile string) *ReportingConfig {
	return &ReportingConfig{
		initialBalance: initialBalance,
		printSignals:   printSignals,
		signalsFile:    signalsFile,
	}
}
