// Package selector_test verifies priority scoring, the start-node pin,
// sequential SelectNode exhaustion, and LastSearchIndex.
package selector_test

import (
	"testing"

	"github.com/katalvlaran/parahaplo/hlink"
	"github.com/katalvlaran/parahaplo/hnode"
	"github.com/katalvlaran/parahaplo/selector"
	"github.com/stretchr/testify/require"
)

func buildNodes(t *testing.T, weights ...int64) *hnode.Set {
	t.Helper()
	s := hnode.NewSet()
	s.Resize(len(weights))
	for i, w := range weights {
		require.NoError(t, s.SetWeight(i, w))
	}
	return s
}

func TestNewRejectsEmptySet(t *testing.T) {
	s := hnode.NewSet()
	links := hlink.NewSet()

	_, err := selector.New(s, links, 0)
	require.ErrorIs(t, err, selector.ErrNoNodes)
}

func TestStartIsPinnedFirstRegardlessOfScore(t *testing.T) {
	// Position 2 has the highest weight, but start=0 must still come first.
	nodes := buildNodes(t, 1, 1, 100)
	links := hlink.NewSet()

	sel, err := selector.New(nodes, links, 0)
	require.NoError(t, err)

	first, err := sel.SelectNode()
	require.NoError(t, err)
	require.Equal(t, 0, first)
}

func TestSelectOrderDescendingByScoreWithIndexTiebreak(t *testing.T) {
	nodes := buildNodes(t, 5, 5, 10)
	links := hlink.NewSet()

	sel, err := selector.New(nodes, links, 2)
	require.NoError(t, err)

	var order []int
	for i := 0; i < 3; i++ {
		idx, err := sel.SelectNode()
		require.NoError(t, err)
		order = append(order, idx)
	}
	// start=2 first, then the tie between 0 and 1 broken by ascending index.
	require.Equal(t, []int{2, 0, 1}, order)
}

func TestSelectNodeExhaustionRepeatsLast(t *testing.T) {
	nodes := buildNodes(t, 1, 2)
	links := hlink.NewSet()

	sel, err := selector.New(nodes, links, 0)
	require.NoError(t, err)

	last := sel.LastSearchIndex()

	for i := 0; i < 2; i++ {
		_, err := sel.SelectNode()
		require.NoError(t, err)
	}
	// Past exhaustion, every further call returns the terminal index.
	for i := 0; i < 3; i++ {
		idx, err := sel.SelectNode()
		require.NoError(t, err)
		require.Equal(t, last, idx)
	}
}

func TestScoreIncludesIncidentLinkMax(t *testing.T) {
	nodes := buildNodes(t, 0, 0, 0)
	links := hlink.NewSet()
	l, err := links.Insert(0, 1)
	require.NoError(t, err)
	l.HomoWeight.Store(50)
	l.HetroWeight.Store(1)

	// Position 0's score is boosted to 50 by its incident Link; 1 and 2
	// both start at 0 (1 picks up the same Link's contribution too).
	sel, err := selector.New(nodes, links, 2)
	require.NoError(t, err)

	first, err := sel.SelectNode()
	require.NoError(t, err)
	require.Equal(t, 2, first) // start pinned regardless of score

	second, err := sel.SelectNode()
	require.NoError(t, err)
	require.Equal(t, 0, second) // highest remaining score
}
