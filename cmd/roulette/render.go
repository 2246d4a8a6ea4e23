package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"

	"github.com/drop0ne/Roulette-Simulator/roulette"
)

var (
	Bold   = color.New(color.Bold)
	Green  = color.New(color.FgGreen)
	Red    = color.New(color.FgRed)
	Yellow = color.New(color.FgYellow)
)

func colorPrintLn(c *color.Color, a ...any) {
	_, _ = c.Println(a...)
}

func colorPrintf(c *color.Color, format string, a ...any) {
	_, _ = c.Printf(format, a...)
}

func printHeader(cfg roulette.Config) {
	fmt.Println()
	colorPrintLn(Bold, "═══════════════════════════════════════════════════════════")
	colorPrintLn(Bold, "ROULETTE MONTE-CARLO SIMULATION")
	colorPrintLn(Bold, "═══════════════════════════════════════════════════════════")
	fmt.Printf("  Trials: %s  Workers: %d  Bankroll: $%.2f\n",
		formatNumber(cfg.Trials), cfg.Workers, cfg.Bankroll)
	fmt.Printf("  Loss threshold: %d  Spin limit: %s  Seed: %d\n",
		cfg.LossThreshold, formatNumber(cfg.MaxSpins), cfg.Seed)
	if cfg.Target > 0 {
		fmt.Printf("  Target bankroll: $%.2f\n", cfg.Target)
	}
	fmt.Println()
}

func renderSummary(s roulette.Summary, elapsed time.Duration) {
	fmt.Println()
	colorPrintLn(Bold, "═══════════════════════════════════════════════════════════")
	colorPrintLn(Bold, "RESULTS")
	colorPrintLn(Bold, "═══════════════════════════════════════════════════════════")
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Metric", "Value")

	_ = table.Append("Trials", formatNumber(s.Trials))
	_ = table.Append("Ruined", fmt.Sprintf("%s (%.1f%%)", formatNumber(s.Ruined), s.RuinRate()*100))
	if s.TargetReached > 0 {
		_ = table.Append("Reached target", formatNumber(s.TargetReached))
	}
	_ = table.Append("Mean final bankroll", fmt.Sprintf("$%.2f", s.MeanFinal))
	_ = table.Append("Median final bankroll", fmt.Sprintf("$%.2f", s.MedianFinal))
	_ = table.Append("Min / max final", fmt.Sprintf("$%.2f / $%.2f", s.MinFinal, s.MaxFinal))
	_ = table.Append("Mean spins per trial", fmt.Sprintf("%.1f", s.MeanSpins))
	_ = table.Append("Total wagered", fmt.Sprintf("$%.2f", s.TotalWagered))

	if err := table.Render(); err != nil {
		colorPrintLn(Red, "Error rendering results table")
	}

	fmt.Println()
	colorPrintf(Green, "✅ Simulated %s trials in %s\n",
		formatNumber(s.Trials), elapsed.Round(time.Millisecond))
}

// renderSampleSession shows the tail of one trial so a run is not just
// aggregate numbers.
func renderSampleSession(r roulette.TrialResult) {
	fmt.Println()
	colorPrintLn(Yellow, "Sample session (trial 0):")
	fmt.Printf("  Final bankroll $%.2f after %d spins (%d wins, %d losses, %d color switches)\n",
		r.FinalBankroll, r.Spins, r.Wins, r.Losses, r.ColorSwitches)
	for _, entry := range r.History {
		fmt.Printf("    %s\n", entry)
	}
	fmt.Println()
}

func makeProgressBar(trials int) *progressbar.ProgressBar {
	return progressbar.NewOptions(trials,
		progressbar.OptionSetDescription("Running trials"),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(65*time.Millisecond),
	)
}

// formatNumber formats an integer with comma separators.
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	var result strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			_, _ = result.WriteString(",")
		}
		_, _ = result.WriteString(string(c))
	}
	return result.String()
}
