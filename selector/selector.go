package selector

import (
	"errors"
	"sort"
	"sync"

	"github.com/katalvlaran/parahaplo/hlink"
	"github.com/katalvlaran/parahaplo/hnode"
)

// ErrNoNodes indicates New was constructed over an empty Node set.
var ErrNoNodes = errors.New("selector: no nodes to select from")

// Selector hands out haplotype positions for the driver to branch on,
// one per call, in a fixed priority order computed once at
// construction.
//
// mu guards pos, the only mutable field; order and last are immutable
// after New returns.
type Selector struct {
	mu    sync.Mutex
	order []int // Node indices, highest priority first
	pos   int   // index into order of the next pick
	last  int   // order[len(order)-1], the terminal Node index
}

// scored pairs a Node index with its static priority, used only while
// sorting inside New.
type scored struct {
	idx   int
	score int64
}

// New builds a Selector over nodes and links, with start pinned to the
// front of the priority order (§4.6 always branches the configured
// start_node first).
func New(nodes *hnode.Set, links *hlink.Set, start int) (*Selector, error) {
	n := nodes.NumNodes()
	if n == 0 {
		return nil, ErrNoNodes
	}

	items := make([]scored, n)
	for i := 0; i < n; i++ {
		w, err := nodes.Weight(i)
		if err != nil {
			return nil, err
		}

		var linkSum int64
		for _, k := range links.Incident(i) {
			linkSum += links.LinkMax(k.Lower, k.Upper)
		}

		items[i] = scored{idx: i, score: w + linkSum}
	}

	sort.Slice(items, func(a, b int) bool {
		if items[a].score != items[b].score {
			return items[a].score > items[b].score // higher influence first
		}

		return items[a].idx < items[b].idx // ties: lower Node index first
	})

	order := make([]int, n)
	for i, it := range items {
		order[i] = it.idx
	}

	// Pin start to the front without disturbing the rest of the order.
	for i, idx := range order {
		if idx == start {
			copy(order[1:i+1], order[:i])
			order[0] = start

			break
		}
	}

	return &Selector{order: order, last: order[n-1]}, nil
}

// SelectNode returns the index of the next haplo-position to branch
// on. Calls are sequential from the driver, one per recursion level.
func (s *Selector) SelectNode() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.order) {
		return s.last, nil
	}
	idx := s.order[s.pos]
	s.pos++

	return idx, nil
}

// LastSearchIndex returns the Node index at which the frontier
// exhausts all positions — the driver's terminal recursion condition.
func (s *Selector) LastSearchIndex() int {
	return s.last
}
