package roulette

import "sort"

// Summary aggregates a batch of trial results into the numbers the
// report cares about.
type Summary struct {
	Trials        int
	Ruined        int
	TargetReached int
	MeanFinal     float64
	MedianFinal   float64
	MinFinal      float64
	MaxFinal      float64
	MeanSpins     float64
	TotalWagered  float64
}

// RuinRate returns the fraction of trials that ended with an empty
// bankroll.
func (s Summary) RuinRate() float64 {
	if s.Trials == 0 {
		return 0
	}
	return float64(s.Ruined) / float64(s.Trials)
}

// Summarize folds trial results into a Summary. An empty slice yields
// the zero Summary.
func Summarize(results []TrialResult) Summary {
	if len(results) == 0 {
		return Summary{}
	}

	finals := make([]float64, 0, len(results))
	var sum Summary
	var totalFinal, totalSpins float64

	sum.Trials = len(results)
	sum.MinFinal = results[0].FinalBankroll
	sum.MaxFinal = results[0].FinalBankroll

	for _, r := range results {
		finals = append(finals, r.FinalBankroll)
		totalFinal += r.FinalBankroll
		totalSpins += float64(r.Spins)
		sum.TotalWagered += r.TotalWagered

		if r.Ruined {
			sum.Ruined++
		}
		if r.TargetReached {
			sum.TargetReached++
		}
		if r.FinalBankroll < sum.MinFinal {
			sum.MinFinal = r.FinalBankroll
		}
		if r.FinalBankroll > sum.MaxFinal {
			sum.MaxFinal = r.FinalBankroll
		}
	}

	sort.Float64s(finals)
	sum.MeanFinal = totalFinal / float64(len(results))
	sum.MeanSpins = totalSpins / float64(len(results))
	sum.MedianFinal = median(finals)
	return sum
}

// median expects its input sorted ascending.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
