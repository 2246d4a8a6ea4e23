package roulette

import (
	"math/rand"
	"strconv"
)

// Color of a wheel pocket. Bets are placed on Red or Black; the house
// pockets 0 and 00 are Green.
type Color int

const (
	Red Color = iota
	Black
	Green
)

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Black:
		return "Black"
	case Green:
		return "Green"
	default:
		return "Unknown"
	}
}

// Parity of a pocket number. The house pockets have no parity.
type Parity int

const (
	Odd Parity = iota
	Even
	None
)

func (p Parity) String() string {
	switch p {
	case Odd:
		return "Odd"
	case Even:
		return "Even"
	case None:
		return "None"
	default:
		return "Unknown"
	}
}

// DoubleZero is the encoded pocket number for "00". An American wheel
// has 38 pockets: 0, 00, and 1-36.
const DoubleZero = 37

// redNumbers is the standard American roulette layout.
var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// Outcome is the result of a single spin.
type Outcome struct {
	Number int // 0-36, or DoubleZero for "00"
	Color  Color
	Parity Parity
}

// Label renders the pocket number, mapping the encoded double zero back
// to "00".
func (o Outcome) Label() string {
	if o.Number == DoubleZero {
		return "00"
	}
	return strconv.Itoa(o.Number)
}

// Wheel is an American roulette wheel. A Wheel owns its own random
// source and is not safe for concurrent use; give each trial its own.
type Wheel struct {
	rng *rand.Rand
}

// NewWheel returns a wheel with a deterministic source, so a trial can
// be replayed from its seed.
func NewWheel(seed int64) *Wheel {
	return &Wheel{rng: rand.New(rand.NewSource(seed))}
}

// Spin draws one of the 38 pockets uniformly at random.
func (w *Wheel) Spin() Outcome {
	return Classify(w.rng.Intn(38))
}

// Classify maps a pocket number to its full outcome: green with no
// parity for the house pockets, red/black and odd/even otherwise.
func Classify(number int) Outcome {
	o := Outcome{Number: number}

	if number == 0 || number == DoubleZero {
		o.Color = Green
		o.Parity = None
		return o
	}

	if redNumbers[number] {
		o.Color = Red
	} else {
		o.Color = Black
	}

	if number%2 == 0 {
		o.Parity = Even
	} else {
		o.Parity = Odd
	}
	return o
}
