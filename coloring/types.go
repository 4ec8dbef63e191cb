// Package coloring - core types, options and sentinel errors.
//
// Options:
//
//	– Strategy: branching/pruning strategy (ClassicDSATUR, SewellDSATUR, FuriniDSATUR).
//	– Deadline: wall-clock budget; must be positive. "Effectively unlimited"
//	  is expressed by a large value (DefaultDeadline is a day).
//	– Progress: optional observational callback; fired on the first search
//	  node and every 500th thereafter. Must not mutate engine state.
//
// Errors (sentinel):
//
//	– ErrNonPositiveDeadline if Deadline ≤ 0.
//	– ErrUnknownStrategy     if Strategy is not one of the three tags.
//	– ErrTooManyColors       if the DSATUR seed needs more than 63 colors.
//	– graph.* sentinels      forwarded from CSR validation.
package coloring

import (
	"errors"
	"time"
)

// Sentinel errors returned by Solve and the exported heuristics.
var (
	// ErrNonPositiveDeadline indicates Options.Deadline ≤ 0. A zero deadline
	// does not mean "no limit"; callers wanting that pass a large sentinel
	// (DefaultOptions does).
	ErrNonPositiveDeadline = errors.New("coloring: deadline must be positive")

	// ErrUnknownStrategy indicates an unrecognized Strategy tag.
	ErrUnknownStrategy = errors.New("coloring: unknown strategy")

	// ErrTooManyColors indicates the initial DSATUR bound exceeded the
	// 63-color engine ceiling; such instances are outside the supported
	// regime and no coloring is produced.
	ErrTooManyColors = errors.New("coloring: instance needs more than 63 colors")
)

// Strategy selects the branching/pruning variant of the exact search.
// All strategies return the same chromatic number; node counts, cut counts
// and the concrete optimal coloring may differ.
type Strategy int

const (
	// ClassicDSATUR branches on the max-saturation vertex, ties broken by
	// max degree, then lowest index.
	ClassicDSATUR Strategy = iota

	// SewellDSATUR adds a third tie-break level: maximize the summed overlap
	// between the candidate's remaining color options and those of its
	// uncolored neighbors. Degrades to ClassicDSATUR selection when UB ≥ 63.
	SewellDSATUR

	// FuriniDSATUR keeps classic selection but recomputes a reduced-graph
	// lower bound at every node and prunes against it.
	FuriniDSATUR
)

// String returns the strategy name for logs and test output.
func (s Strategy) String() string {
	switch s {
	case ClassicDSATUR:
		return "ClassicDSATUR"
	case SewellDSATUR:
		return "SewellDSATUR"
	case FuriniDSATUR:
		return "FuriniDSATUR"
	default:
		return "Strategy(?)"
	}
}

// ProgressFunc observes the running search. It is invoked inline on the
// first visited node and every 500th thereafter, with the node count, the
// current upper and lower bounds, elapsed wall-clock time and the number of
// branches cut. Implementations must be fast, must not panic, and must not
// mutate the engine or the graph.
type ProgressFunc func(nodes int64, ub, lb int, elapsed time.Duration, cuts int64)

// progressInterval is the callback cadence (first node, then every 500th).
const progressInterval = 500

// DefaultDeadline is the "no practical limit" wall-clock budget used by
// DefaultOptions: long enough for any benchmark-regime instance worth
// waiting for, finite so a runaway solve still terminates.
const DefaultDeadline = 24 * time.Hour

// Options configures one exact solve.
type Options struct {
	Strategy Strategy      // branching/pruning variant
	Deadline time.Duration // wall-clock budget, > 0
	Progress ProgressFunc  // optional observer; nil disables
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithStrategy selects the search strategy.
// Passing an unknown tag panics early (programmer error); Solve re-validates
// for callers that build Options directly.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		switch s {
		case ClassicDSATUR, SewellDSATUR, FuriniDSATUR:
			o.Strategy = s
		default:
			panic(ErrUnknownStrategy.Error())
		}
	}
}

// WithDeadline sets the wall-clock budget. Must be positive.
func WithDeadline(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic(ErrNonPositiveDeadline.Error())
		}
		o.Deadline = d
	}
}

// WithProgress installs the observational callback.
func WithProgress(fn ProgressFunc) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// DefaultOptions returns the canonical starting configuration:
//
//   - Strategy: ClassicDSATUR
//   - Deadline: DefaultDeadline (24h — effectively unlimited)
//   - Progress: nil
func DefaultOptions() Options {
	return Options{
		Strategy: ClassicDSATUR,
		Deadline: DefaultDeadline,
		Progress: nil,
	}
}

// Result is the outcome of one exact solve.
type Result struct {
	// K is the number of colors in the returned coloring (the final upper
	// bound). If Optimal is true, K == χ(G).
	K int

	// Colors is a proper coloring of length N with values in [0, K).
	// On timeout it is the best coloring found so far (at worst the DSATUR
	// seed) and may be non-optimal.
	Colors []int

	// LB is the initial greedy-clique lower bound; LB ≤ K always.
	LB int

	// InitialUB is the DSATUR seed bound; K ≤ InitialUB always.
	InitialUB int

	// Optimal reports whether K is proven equal to χ(G): either the bounds
	// met, or the search tree was exhausted, with no timeout.
	Optimal bool

	// Nodes is the number of branch-and-bound nodes visited.
	Nodes int64

	// Cuts is the number of branches pruned by the bounds.
	Cuts int64

	// Elapsed is the wall-clock duration of the solve.
	Elapsed time.Duration

	// TimedOut reports whether the deadline expired before the search
	// finished.
	TimedOut bool
}
