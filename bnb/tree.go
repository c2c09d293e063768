package bnb

import (
	"sync/atomic"

	"github.com/katalvlaran/parahaplo/hlink"
	"github.com/katalvlaran/parahaplo/hnode"
)

// Tree is the top-level aggregate: it exclusively owns the Node set,
// Link set, and (for the lifetime of one Explore call) the arena,
// selector, and bounder. All accessors return mutable references so a
// loader may populate the model directly before Explore.
type Tree struct {
	nodes *hnode.Set
	links *hlink.Set

	startNode          atomic.Int32
	startNodeWorstCase atomic.Int64
	finalMinUbound     atomic.Int64
}

// NewTree returns a Tree whose Node set is sized to numNodes.
func NewTree(numNodes int) (*Tree, error) {
	if numNodes < 0 {
		return nil, ErrNegativeNumNodes
	}
	t := &Tree{
		nodes: hnode.NewSet(),
		links: hlink.NewSet(),
	}
	t.nodes.Resize(numNodes)

	return t, nil
}

// Nodes returns the Tree's Node set.
func (t *Tree) Nodes() *hnode.Set { return t.nodes }

// Links returns the Tree's Link set.
func (t *Tree) Links() *hlink.Set { return t.links }

// CreateLink inserts (or fetches) the Link for (lower, upper).
func (t *Tree) CreateLink(lower, upper int) (*hlink.Link, error) {
	return t.links.Insert(lower, upper)
}

// NodeWeight returns Node i's significance.
func (t *Tree) NodeWeight(i int) (int64, error) {
	return t.nodes.Weight(i)
}

// NodeHaploPos returns the output haplotype index Node i represents.
func (t *Tree) NodeHaploPos(i int) (int, error) {
	return t.nodes.HaploPos(i)
}

// MaxWorstCase returns the worst-case objective known at the root,
// used as the initial global upper bound.
func (t *Tree) MaxWorstCase() int64 {
	return t.startNodeWorstCase.Load()
}

// SetMaxWorstCase sets the worst-case objective known at the root.
func (t *Tree) SetMaxWorstCase(v int64) {
	t.startNodeWorstCase.Store(v)
}

// StartNode returns the initial haplo-position index to branch on.
func (t *Tree) StartNode() int {
	return int(t.startNode.Load())
}

// SetStartNode sets the initial haplo-position index to branch on.
func (t *Tree) SetStartNode(i int) error {
	if i < 0 || i >= t.nodes.NumNodes() {
		return ErrInvalidStartNode
	}
	t.startNode.Store(int32(i))

	return nil
}

// FinalMinUbound returns the global upper bound Explore converged to.
// Valid only after Explore has returned; per §8's "Parallel
// correctness" law this value is invariant across (BranchCores,
// OpCores) choices even when tie-broken haplo_value assignments are
// not.
func (t *Tree) FinalMinUbound() int64 {
	return t.finalMinUbound.Load()
}
