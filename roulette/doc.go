// Package roulette implements an American roulette table session: the
// wheel, a color-betting progression, per-session statistics, and the
// pure RunTrial function that plays one full session from a fixed
// starting bankroll.
//
// Everything in this package is sequential, single-threaded logic. Each
// trial owns its wheel, its betting state, and its stats tracker, so
// any number of trials can safely run in parallel — which is exactly
// what cmd/roulette does by submitting them to a worker pool.
package roulette
