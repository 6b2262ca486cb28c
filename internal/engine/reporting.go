package engine

import (
	"fmt"
	"io"

	"smacross/types"
)

// PrintReport writes a human readable summary of report to w.
func PrintReport(w io.Writer, report types.BacktestReport, printSignals bool) {
	fmt.Fprintln(w, "===== Backtest Report =====")
	fmt.Fprintf(w, "Initial Balance:       %s\n", report.InitialBalance)
	fmt.Fprintf(w, "Final Balance:         %s\n", report.FinalBalance)
	fmt.Fprintf(w, "Profit/Loss:           %s\n", report.ProfitLoss)
	fmt.Fprintf(w, "Number of Trades:      %d\n", report.TradeCount)

	fmt.Fprintln(w, "\n-- Open Position --")
	fmt.Fprintf(w, "Open Position:         %t\n", report.OpenPosition)
	if report.OpenPositionEntry != nil {
		fmt.Fprintf(w, "Entry Price:           %s\n", report.OpenPositionEntry)
	}
	fmt.Fprintf(w, "Unrealized PnL:        %s\n", report.UnrealizedPnL)

	fmt.Fprintf(w, "\n-- Signals (%d) --\n", len(report.Signals))
	if printSignals {
		for _, s := range report.Signals {
			fmt.Fprintln(w, s)
		}
	}
	fmt.Fprintln(w, "===========================")
}

// PrintSweep writes one line per grid point, best first.
func PrintSweep(w io.Writer, results []SweepResult) {
	fmt.Fprintln(w, "===== SMA Sweep =====")
	fmt.Fprintf(w, "%-6s %-6s %-8s %-20s %-6s\n", "n1", "n2", "trades", "profit/loss", "open")
	for _, r := range results {
		fmt.Fprintf(w, "%-6d %-6d %-8d %-20s %-6t\n",
			r.FastPeriod, r.SlowPeriod, r.Report.TradeCount, r.Report.ProfitLoss, r.Report.OpenPosition)
	}
	fmt.Fprintln(w, "=====================")
}
