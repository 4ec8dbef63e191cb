package coloring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/graph"
)

// TestSelectClassic_Ordering: saturation dominates, then degree, then index.
func TestSelectClassic_Ordering(t *testing.T) {
	// Path 0-1-2-3: color vertex 1, leaving 0 and 2 with dsat 1 but
	// deg(0)=1 < deg(2)=2 — degree breaks the tie.
	g, err := builder.Path(4)
	require.NoError(t, err)
	s := newTestState(t, g)

	s.assign(1, 0)
	require.Equal(t, 2, s.selectClassic())

	// With nothing colored, everything ties on dsat; max degree wins and
	// the lowest index among max-degree vertices is chosen.
	s.unassign(1, 0)
	require.Equal(t, 1, s.selectClassic())
}

func TestSelectClassic_Exhausted(t *testing.T) {
	g, err := builder.Path(2)
	require.NoError(t, err)
	s := newTestState(t, g)
	s.assign(0, 0)
	s.assign(1, 1)
	require.Equal(t, -1, s.selectClassic())
}

// sewellFixture builds a state where classic and Sewell selection disagree:
// candidates 0, 1 and 2 tie on saturation (1) and degree (2), but vertex 1's
// uncolored neighbor has more shared options than vertex 0's or 2's.
//
//	4(color 0) ── 0 ── 2 ── 6(color 1)
//	4(color 0) ── 1 ── 3
//	5 isolated
func sewellFixture(t *testing.T) *bbState {
	t.Helper()
	g, err := graph.NewCSR(7, [][2]int{{4, 0}, {4, 1}, {0, 2}, {1, 3}, {2, 6}})
	require.NoError(t, err)
	s := newTestState(t, g)
	s.assign(4, 0)
	s.assign(6, 1)
	s.ub = 3 // pretend the DSATUR seed used three colors

	return s
}

func TestSelectSewell_TieBreak(t *testing.T) {
	s := sewellFixture(t)

	// Classic stops at the lexicographic first survivor.
	require.Equal(t, 0, s.selectClassic())

	// Sewell scores: opts(v) = {0,1,2} \ forbidden[v].
	//   v=0: opts {1,2}; neighbor 2 opts {0,2}  → overlap 1
	//   v=1: opts {1,2}; neighbor 3 opts {0,1,2}→ overlap 2
	//   v=2: opts {0,2}; neighbor 0 opts {1,2}  → overlap 1
	require.Equal(t, 1, s.selectSewell())
}

// TestSelectSewell_DegradesAtCeiling: with UB ≥ 63 the option mask no
// longer fits, so Sewell must return the classic survivor.
func TestSelectSewell_DegradesAtCeiling(t *testing.T) {
	s := sewellFixture(t)
	s.ub = 63
	require.Equal(t, 0, s.selectSewell())
}

// TestSelectSewell_SingleCandidate short-circuits without scoring.
func TestSelectSewell_SingleCandidate(t *testing.T) {
	g, err := builder.Star(5)
	require.NoError(t, err)
	s := newTestState(t, g)

	// The center has the unique maximum degree; no scoring pass needed.
	require.Equal(t, 0, s.selectSewell())
	require.Equal(t, s.selectClassic(), s.selectSewell())
}

func TestSelectSewell_Exhausted(t *testing.T) {
	g, err := builder.Path(2)
	require.NoError(t, err)
	s := newTestState(t, g)
	s.assign(0, 0)
	s.assign(1, 1)
	require.Equal(t, -1, s.selectSewell())
}
