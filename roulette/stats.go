package roulette

import "fmt"

// historySize caps the rolling history, matching what the table view
// shows.
const historySize = 10

// Tracker accumulates per-session betting statistics and a rolling
// history of the most recent events.
type Tracker struct {
	wins         int
	losses       int
	spins        int
	totalWagered float64
	history      []string
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// RecordWin counts a winning spin and its wager.
func (t *Tracker) RecordWin(bet float64) {
	t.wins++
	t.spins++
	t.totalWagered += bet
	t.push(fmt.Sprintf("Win: bet $%.2f", bet))
}

// RecordLoss counts a losing spin and its wager.
func (t *Tracker) RecordLoss(bet float64) {
	t.losses++
	t.spins++
	t.totalWagered += bet
	t.push(fmt.Sprintf("Loss: bet $%.2f", bet))
}

// RecordOutcome appends the raw spin outcome to the history.
func (t *Tracker) RecordOutcome(o Outcome) {
	t.push(fmt.Sprintf("Spin: %s (%s, %s)", o.Label(), o.Color, o.Parity))
}

func (t *Tracker) push(entry string) {
	if len(t.history) >= historySize {
		t.history = t.history[1:]
	}
	t.history = append(t.history, entry)
}

// Wins returns the number of winning spins.
func (t *Tracker) Wins() int { return t.wins }

// Losses returns the number of losing spins.
func (t *Tracker) Losses() int { return t.losses }

// Spins returns the number of settled spins.
func (t *Tracker) Spins() int { return t.spins }

// TotalWagered returns the sum of all bets placed.
func (t *Tracker) TotalWagered() float64 { return t.totalWagered }

// History returns a copy of the most recent events, oldest first.
func (t *Tracker) History() []string {
	out := make([]string, len(t.history))
	copy(out, t.history)
	return out
}
