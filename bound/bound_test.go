// Package bound_test verifies Calculate's deferred-until-second-endpoint
// charging model: an undecided neighbor contributes nothing, and a
// decided neighbor's exact realized cost is charged identically to
// both Lower and Upper, preserving lower_bound <= upper_bound under
// every realized weight combination.
package bound_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/parahaplo/bound"
	"github.com/katalvlaran/parahaplo/hlink"
	"github.com/katalvlaran/parahaplo/hnode"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*hnode.Set, *hlink.Set) {
	t.Helper()
	nodes := hnode.NewSet()
	nodes.Resize(2)
	links := hlink.NewSet()
	return nodes, links
}

func TestCalculateNoIncidentLinksIsZero(t *testing.T) {
	nodes, links := setup(t)
	b := bound.New(nodes, links)

	d, err := b.Calculate(context.Background(), 0, 0, nil, 1)
	require.NoError(t, err)
	require.Equal(t, bound.Delta{}, d)
}

func TestCalculateDefersUndecidedNeighbor(t *testing.T) {
	nodes, links := setup(t)
	l, err := links.Insert(0, 1)
	require.NoError(t, err)
	l.HomoWeight.Store(1)
	l.HetroWeight.Store(5)

	b := bound.New(nodes, links)

	// Position 1 is undecided; evaluating position 0 with an empty
	// decided map must defer this Link's cost entirely.
	d, err := b.Calculate(context.Background(), 0, 0, map[int]int32{}, 1)
	require.NoError(t, err)
	require.Equal(t, bound.Delta{}, d)
}

func TestCalculateChargesExactRealizedCostOnMatch(t *testing.T) {
	nodes, links := setup(t)
	l, err := links.Insert(0, 1)
	require.NoError(t, err)
	l.HomoWeight.Store(1)
	l.HetroWeight.Store(5)

	b := bound.New(nodes, links)

	// Position 0 already decided to value 0; position 1 also chooses 0
	// (a match) and so realizes HetroWeight per the inverted mapping
	// (see DESIGN.md decision 2).
	d, err := b.Calculate(context.Background(), 1, 0, map[int]int32{0: 0}, 1)
	require.NoError(t, err)
	require.Equal(t, bound.Delta{Lower: 5, Upper: 5}, d)
}

func TestCalculateChargesExactRealizedCostOnMismatch(t *testing.T) {
	nodes, links := setup(t)
	l, err := links.Insert(0, 1)
	require.NoError(t, err)
	l.HomoWeight.Store(1)
	l.HetroWeight.Store(5)

	b := bound.New(nodes, links)

	d, err := b.Calculate(context.Background(), 1, 1, map[int]int32{0: 0}, 1)
	require.NoError(t, err)
	require.Equal(t, bound.Delta{Lower: 1, Upper: 1}, d)
}

// TestCalculateNeverInvertsTheBoundWindow sweeps every combination of
// weights and match/mismatch this package can produce and checks the
// invariant spec.md §8 requires: Lower <= Upper after every Delta is
// applied to a window that started with Lower <= Upper.
func TestCalculateNeverInvertsTheBoundWindow(t *testing.T) {
	weightPairs := [][2]int64{{1, 5}, {5, 1}, {0, 0}, {100, 1}, {1, 100}}

	for _, wp := range weightPairs {
		nodes, links := setup(t)
		l, err := links.Insert(0, 1)
		require.NoError(t, err)
		l.HomoWeight.Store(wp[0])
		l.HetroWeight.Store(wp[1])

		b := bound.New(nodes, links)

		for _, value := range []int32{0, 1} {
			d, err := b.Calculate(context.Background(), 1, value, map[int]int32{0: 0}, 1)
			require.NoError(t, err)

			parentLower, parentUpper := int64(0), int64(7)
			newLower := parentLower + d.Lower
			newUpper := parentUpper - d.Upper
			require.LessOrEqual(t, newLower, newUpper,
				"weights=%v value=%d produced an inverted window", wp, value)
		}
	}
}

func TestCalculateSumsMultipleIncidentLinks(t *testing.T) {
	nodes := hnode.NewSet()
	nodes.Resize(3)
	links := hlink.NewSet()

	l01, err := links.Insert(0, 1)
	require.NoError(t, err)
	l01.HomoWeight.Store(4)
	l01.HetroWeight.Store(1)

	l12, err := links.Insert(1, 2)
	require.NoError(t, err)
	l12.HomoWeight.Store(1)
	l12.HetroWeight.Store(4)

	b := bound.New(nodes, links)

	// Position 1 decided to value 1; both neighbors (0 and 2) already
	// fixed to value 1, so both Links realize their match (Hetro) cost.
	decided := map[int]int32{0: 1, 2: 1}
	d, err := b.Calculate(context.Background(), 1, 1, decided, 2)
	require.NoError(t, err)
	require.Equal(t, bound.Delta{Lower: 1 + 4, Upper: 1 + 4}, d)
}
