package roulette

const (
	// BaseBet is the table minimum every session starts from and resets
	// to after a win or a color switch.
	BaseBet = 1.0

	// MaxBet is the table limit; the progression is capped here and the
	// cap is remembered until the next reset.
	MaxBet = 200.0

	// tripleLossLimit: the first three consecutive losses triple the
	// bet, later ones only double it.
	tripleLossLimit = 3
)

// Progression is the bet-sizing state machine for an even-money color
// bet: start at BaseBet on black, escalate on losses, reset on a win,
// and switch color after too many consecutive losses.
type Progression struct {
	bet           float64
	color         Color
	lossStreak    int
	lossThreshold int
	maxBetReached bool
}

// NewProgression returns a fresh progression betting BaseBet on black.
// lossThreshold is the number of consecutive losses after which the bet
// color switches and the bet resets.
func NewProgression(lossThreshold int) *Progression {
	return &Progression{
		bet:           BaseBet,
		color:         Black,
		lossThreshold: lossThreshold,
	}
}

// Bet returns the amount wagered on the next spin.
func (p *Progression) Bet() float64 { return p.bet }

// BetColor returns the color the next wager is placed on.
func (p *Progression) BetColor() Color { return p.color }

// LossStreak returns the current run of consecutive losses.
func (p *Progression) LossStreak() int { return p.lossStreak }

// MaxBetReached reports whether the progression has been capped at the
// table limit since the last reset.
func (p *Progression) MaxBetReached() bool { return p.maxBetReached }

// Win resets the progression after an even-money payout.
func (p *Progression) Win() {
	p.bet = BaseBet
	p.lossStreak = 0
	p.maxBetReached = false
}

// Lose advances the progression after a losing spin. It reports whether
// the loss threshold was hit, which switches the bet color and resets
// the bet to the table minimum.
func (p *Progression) Lose() bool {
	p.lossStreak++

	if p.lossStreak >= p.lossThreshold {
		if p.color == Black {
			p.color = Red
		} else {
			p.color = Black
		}
		p.bet = BaseBet
		p.lossStreak = 0
		p.maxBetReached = false
		return true
	}

	next := p.bet * 2
	if p.lossStreak <= tripleLossLimit {
		next = p.bet * 3
	}
	if next > MaxBet {
		next = MaxBet
		p.maxBetReached = true
	}
	p.bet = next
	return false
}
