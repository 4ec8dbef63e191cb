// Package coloring_test validates the exact solver end-to-end.
// Focus:
//  1. Strict sentinels on malformed inputs (nil/invalid graph, bad options).
//  2. Boundary instances (empty, single vertex, edgeless, complete,
//     bipartite, odd cycle, star).
//  3. Named scenarios: triangle, P4, Petersen, queen5_5.
//  4. Policy equivalence: all strategies agree on K.
//  5. Determinism under identical options.
//  6. Deadline behavior: best-so-far coloring, Optimal=false, no panics.
package coloring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/coloring"
	"github.com/katalvlaran/chromatic/graph"
)

// requireResultInvariants asserts every universal postcondition of Solve.
func requireResultInvariants(t *testing.T, g *graph.CSR, res coloring.Result) {
	t.Helper()
	requireProper(t, g, res.Colors, res.K)
	require.LessOrEqual(t, res.LB, res.K, "LB must not exceed K")
	require.LessOrEqual(t, res.K, res.InitialUB, "K must not exceed the seed bound")
	require.GreaterOrEqual(t, res.Nodes, int64(0))
	require.GreaterOrEqual(t, res.Cuts, int64(0))
	require.GreaterOrEqual(t, res.Elapsed, time.Duration(0))
}

func strategies() []coloring.Strategy {
	return []coloring.Strategy{
		coloring.ClassicDSATUR,
		coloring.SewellDSATUR,
		coloring.FuriniDSATUR,
	}
}

// ---------------------------
// 1) Strict sentinels.
// ---------------------------

func TestSolve_Sentinels(t *testing.T) {
	_, err := coloring.Solve(nil)
	require.ErrorIs(t, err, graph.ErrNilGraph)

	// Invalid CSR: unsorted neighbor list, wrapped graph sentinel.
	bad := &graph.CSR{
		N:     3,
		Adj:   []int{2, 1, 0, 0},
		Start: []int{0, 2, 3},
		Deg:   []int{2, 1, 1},
	}
	_, err = coloring.Solve(bad)
	require.ErrorIs(t, err, graph.ErrUnsortedAdjacency)

	g, err := builder.Cycle(3)
	require.NoError(t, err)

	// Zero deadline is not "unlimited"; it is rejected.
	_, err = coloring.SolveWithOptions(g, coloring.Options{Deadline: 0})
	require.ErrorIs(t, err, coloring.ErrNonPositiveDeadline)

	// Unknown strategy tag.
	o := coloring.DefaultOptions()
	o.Strategy = coloring.Strategy(99)
	_, err = coloring.SolveWithOptions(g, o)
	require.ErrorIs(t, err, coloring.ErrUnknownStrategy)

	// Option constructors panic on nonsense (programmer error).
	require.Panics(t, func() { coloring.WithDeadline(-time.Second)(&o) })
	require.Panics(t, func() { coloring.WithStrategy(coloring.Strategy(42))(&o) })
}

// TestSolve_TooManyColors: a 64-clique seeds UB=64, beyond the engine cap.
func TestSolve_TooManyColors(t *testing.T) {
	g, err := builder.Complete(64)
	require.NoError(t, err)
	_, err = coloring.Solve(g)
	require.ErrorIs(t, err, coloring.ErrTooManyColors)
}

// ---------------------------
// 2) Boundary instances.
// ---------------------------

func TestSolve_EmptyGraph(t *testing.T) {
	g, err := builder.Edgeless(0)
	require.NoError(t, err)

	res, err := coloring.Solve(g)
	require.NoError(t, err)
	require.Zero(t, res.K)
	require.Empty(t, res.Colors)
	require.True(t, res.Optimal)
	require.False(t, res.TimedOut)
}

func TestSolve_Boundaries(t *testing.T) {
	cases := []struct {
		name string
		mk   func() (*graph.CSR, error)
		chi  int
	}{
		{"single vertex", func() (*graph.CSR, error) { return builder.Edgeless(1) }, 1},
		{"edgeless n=7", func() (*graph.CSR, error) { return builder.Edgeless(7) }, 1},
		{"K2", func() (*graph.CSR, error) { return builder.Complete(2) }, 2},
		{"K8", func() (*graph.CSR, error) { return builder.Complete(8) }, 8},
		{"K3_4 bipartite", func() (*graph.CSR, error) { return builder.CompleteBipartite(3, 4) }, 2},
		{"path P4", func() (*graph.CSR, error) { return builder.Path(4) }, 2},
		{"star", func() (*graph.CSR, error) { return builder.Star(9) }, 2},
		{"even cycle C8", func() (*graph.CSR, error) { return builder.Cycle(8) }, 2},
		{"odd cycle C9", func() (*graph.CSR, error) { return builder.Cycle(9) }, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.mk()
			require.NoError(t, err)

			for _, st := range strategies() {
				res, err := coloring.Solve(g, coloring.WithStrategy(st))
				require.NoError(t, err, st)
				requireResultInvariants(t, g, res)
				require.Equal(t, tc.chi, res.K, st)
				require.True(t, res.Optimal, st)
				require.False(t, res.TimedOut, st)
			}
		})
	}
}

// ---------------------------
// 3) Named scenarios (suite).
// ---------------------------

type ScenarioSuite struct {
	suite.Suite
}

// TestTriangle: K3 — both bounds meet immediately.
func (s *ScenarioSuite) TestTriangle() {
	g, err := graph.NewCSR(3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	require.NoError(s.T(), err)

	res, err := coloring.Solve(g)
	require.NoError(s.T(), err)
	requireResultInvariants(s.T(), g, res)
	require.Equal(s.T(), 3, res.K)
	require.Equal(s.T(), 3, res.LB)
	require.True(s.T(), res.Optimal)
}

// TestPetersen: χ=3 while the clique bound is only 2, so the tree must be
// exhausted to prove optimality.
func (s *ScenarioSuite) TestPetersen() {
	g, err := builder.Petersen()
	require.NoError(s.T(), err)

	for _, st := range strategies() {
		res, err := coloring.Solve(g, coloring.WithStrategy(st))
		require.NoError(s.T(), err, st)
		requireResultInvariants(s.T(), g, res)
		require.Equal(s.T(), 3, res.K, st)
		require.Equal(s.T(), 2, res.LB, st)
		require.True(s.T(), res.Optimal, st)
	}
}

// TestQueen5_5: the classic DIMACS 25-vertex instance, χ=5.
func (s *ScenarioSuite) TestQueen5_5() {
	g, err := builder.Queen(5, 5)
	require.NoError(s.T(), err)

	for _, st := range strategies() {
		res, err := coloring.Solve(g, coloring.WithStrategy(st))
		require.NoError(s.T(), err, st)
		requireResultInvariants(s.T(), g, res)
		require.Equal(s.T(), 5, res.K, st)
		require.True(s.T(), res.Optimal, st)
	}
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

// ---------------------------
// 4) Policy equivalence.
// ---------------------------

// TestSolve_StrategiesAgreeOnK: all strategies must return the same
// chromatic number; node counts and concrete colorings may differ.
func TestSolve_StrategiesAgreeOnK(t *testing.T) {
	instances := []func() (*graph.CSR, error){
		builder.Petersen,
		func() (*graph.CSR, error) { return builder.Cycle(7) },
		func() (*graph.CSR, error) { return builder.Queen(5, 5) },
		func() (*graph.CSR, error) { return builder.RandomSparse(40, 0.25, 7) },
	}

	for i, mk := range instances {
		g, err := mk()
		require.NoError(t, err)

		ks := make([]int, 0, 3)
		for _, st := range strategies() {
			res, err := coloring.Solve(g, coloring.WithStrategy(st))
			require.NoError(t, err)
			requireResultInvariants(t, g, res)
			require.True(t, res.Optimal, "instance %d, %s", i, st)
			ks = append(ks, res.K)
		}
		require.Equal(t, ks[0], ks[1], "instance %d", i)
		require.Equal(t, ks[0], ks[2], "instance %d", i)
	}
}

// TestSolve_FuriniPrunesNoWorseThanClassic: with identical selection, the
// Furini tree is the classic tree minus the extra bound cuts.
func TestSolve_FuriniPrunesNoWorseThanClassic(t *testing.T) {
	g, err := builder.RandomSparse(40, 0.2, 42)
	require.NoError(t, err)

	classic, err := coloring.Solve(g, coloring.WithStrategy(coloring.ClassicDSATUR))
	require.NoError(t, err)
	furini, err := coloring.Solve(g, coloring.WithStrategy(coloring.FuriniDSATUR))
	require.NoError(t, err)

	require.True(t, classic.Optimal)
	require.True(t, furini.Optimal)
	require.Equal(t, classic.K, furini.K)
	require.LessOrEqual(t, furini.Nodes, classic.Nodes)
}

// ---------------------------
// 5) Determinism.
// ---------------------------

func TestSolve_Deterministic(t *testing.T) {
	g, err := builder.RandomSparse(32, 0.3, 5)
	require.NoError(t, err)

	for _, st := range strategies() {
		a, err := coloring.Solve(g, coloring.WithStrategy(st))
		require.NoError(t, err)
		b, err := coloring.Solve(g, coloring.WithStrategy(st))
		require.NoError(t, err)

		require.Equal(t, a.K, b.K, st)
		require.Equal(t, a.Nodes, b.Nodes, st)
		require.Equal(t, a.Cuts, b.Cuts, st)
		require.Equal(t, a.Colors, b.Colors, st)
	}
}

// ---------------------------
// 6) Deadline and progress.
// ---------------------------

// TestSolve_Timeout: a vanishing deadline stops the search at the first
// node; the DSATUR seed is returned, proper but unproven.
func TestSolve_Timeout(t *testing.T) {
	g, err := builder.Petersen()
	require.NoError(t, err)

	res, err := coloring.Solve(g, coloring.WithDeadline(time.Nanosecond))
	require.NoError(t, err)
	require.True(t, res.TimedOut)
	require.False(t, res.Optimal)
	require.Equal(t, res.InitialUB, res.K, "seed coloring survives the timeout")
	requireResultInvariants(t, g, res)
}

// TestSolve_ProgressCallback: fired on node 1, observational only.
func TestSolve_ProgressCallback(t *testing.T) {
	g, err := builder.Petersen()
	require.NoError(t, err)

	type tick struct {
		nodes  int64
		ub, lb int
		cuts   int64
	}

	var ticks []tick
	res, err := coloring.Solve(g, coloring.WithProgress(
		func(nodes int64, ub, lb int, elapsed time.Duration, cuts int64) {
			require.GreaterOrEqual(t, elapsed, time.Duration(0))
			ticks = append(ticks, tick{nodes: nodes, ub: ub, lb: lb, cuts: cuts})
		}))
	require.NoError(t, err)
	require.True(t, res.Optimal)

	require.NotEmpty(t, ticks, "search ran, so node 1 must have fired")
	require.Equal(t, int64(1), ticks[0].nodes)
	for _, tk := range ticks {
		require.LessOrEqual(t, tk.lb, tk.ub)
		require.GreaterOrEqual(t, tk.cuts, int64(0))
	}
}

// TestSolve_NoSearchNoCallback: when the seed already meets the clique
// bound there is nothing to explore and the callback stays silent.
func TestSolve_NoSearchNoCallback(t *testing.T) {
	g, err := builder.Complete(6)
	require.NoError(t, err)

	fired := false
	res, err := coloring.Solve(g, coloring.WithProgress(
		func(int64, int, int, time.Duration, int64) { fired = true }))
	require.NoError(t, err)
	require.True(t, res.Optimal)
	require.Zero(t, res.Nodes)
	require.False(t, fired)
}

// TestSolve_SparseBenchmarkRegime is a DSJC-style stress run; it only
// asserts universal invariants so it stays robust across machines. The
// Furini strategy gets a generous budget and is skipped in -short mode.
func TestSolve_SparseBenchmarkRegime(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping slow benchmark-regime instance")
	}

	g, err := builder.RandomSparse(125, 0.1, 1)
	require.NoError(t, err)

	res, err := coloring.Solve(g,
		coloring.WithStrategy(coloring.FuriniDSATUR),
		coloring.WithDeadline(30*time.Second))
	require.NoError(t, err)
	requireResultInvariants(t, g, res)
	require.True(t, res.Optimal || res.TimedOut)
}
