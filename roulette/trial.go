package roulette

import (
	"context"
	"fmt"
)

// Settings configure one simulated table session.
type Settings struct {
	// Bankroll is the starting stake.
	Bankroll float64

	// LossThreshold is the number of consecutive losses before the bet
	// color switches.
	LossThreshold int

	// MaxSpins bounds the session length so a lucky run cannot spin
	// forever.
	MaxSpins int

	// Target ends the session early once the bankroll reaches it.
	// Zero disables the target.
	Target float64

	// Seed drives the wheel; the same settings replay the same session.
	Seed int64
}

// Validate checks the settings for a runnable session.
func (s Settings) Validate() error {
	if s.Bankroll <= 0 {
		return fmt.Errorf("bankroll must be positive, got %.2f", s.Bankroll)
	}
	if s.LossThreshold < 1 {
		return fmt.Errorf("loss threshold must be at least 1, got %d", s.LossThreshold)
	}
	if s.MaxSpins < 1 {
		return fmt.Errorf("max spins must be at least 1, got %d", s.MaxSpins)
	}
	if s.Target < 0 {
		return fmt.Errorf("target must not be negative, got %.2f", s.Target)
	}
	return nil
}

// TrialResult is the plain-data outcome of one session.
type TrialResult struct {
	FinalBankroll float64
	Peak          float64
	Spins         int
	Wins          int
	Losses        int
	ColorSwitches int
	TotalWagered  float64
	Ruined        bool
	TargetReached bool
	History       []string
}

// RunTrial plays one full session: spin, settle the color bet, advance
// the progression, and repeat until the bankroll is gone, the target is
// reached, or the spin limit runs out. It is pure and sequential; every
// trial owns its wheel and betting state, so many trials can run
// concurrently.
//
// The context is advisory. It is checked only between spins, and a
// cancelled trial returns its partial result together with the context
// error.
func RunTrial(ctx context.Context, s Settings) (TrialResult, error) {
	if err := s.Validate(); err != nil {
		return TrialResult{}, err
	}

	wheel := NewWheel(s.Seed)
	prog := NewProgression(s.LossThreshold)
	stats := NewTracker()

	bankroll := s.Bankroll
	peak := bankroll
	switches := 0

	snapshot := func(ruined, target bool) TrialResult {
		return TrialResult{
			FinalBankroll: bankroll,
			Peak:          peak,
			Spins:         stats.Spins(),
			Wins:          stats.Wins(),
			Losses:        stats.Losses(),
			ColorSwitches: switches,
			TotalWagered:  stats.TotalWagered(),
			Ruined:        ruined,
			TargetReached: target,
			History:       stats.History(),
		}
	}

	for i := 0; i < s.MaxSpins; i++ {
		if err := ctx.Err(); err != nil {
			return snapshot(false, false), err
		}

		bet := prog.Bet()
		outcome := wheel.Spin()
		stats.RecordOutcome(outcome)

		if outcome.Color == prog.BetColor() {
			// Even-money payout.
			bankroll += bet
			stats.RecordWin(bet)
			prog.Win()
		} else {
			bankroll -= bet
			stats.RecordLoss(bet)
			if prog.Lose() {
				switches++
			}
		}

		if bankroll > peak {
			peak = bankroll
		}
		if bankroll <= 0 {
			return snapshot(true, false), nil
		}
		if s.Target > 0 && bankroll >= s.Target {
			return snapshot(false, true), nil
		}
	}

	return snapshot(false, false), nil
}
