package bnb

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/parahaplo/arena"
	"github.com/katalvlaran/parahaplo/bound"
	"github.com/katalvlaran/parahaplo/selector"
)

// defaultArenaCapacity sizes the pre-allocated SearchNode arena to a
// generous upper bound proportional to the number of haplo positions
// and the branching factor (§4.3), capped so the default never
// allocates an unreasonable amount of memory. Callers whose instance
// is large and poorly pruned should pass WithArenaCapacity explicitly.
func defaultArenaCapacity(numNodes int) int {
	depth := numNodes
	if depth > 16 {
		depth = 16
	}

	return 3 + 8*(1<<uint(depth))
}

// execCtx threads the shared, per-Explore-call state through the
// recursive searchSubnodes calls: the arena, selector, bounder, the
// global atomic upper bound, the parallelism configuration, and the
// semaphore bounding in-flight goroutines of the inner bound-parallel
// region (the outer region is not acquired against it).
type execCtx struct {
	ctx       context.Context
	tree      *Tree
	mgr       *arena.Manager
	sel       *selector.Selector
	bounder   *bound.Bounder
	minUbound *atomic.Int64
	cfg       Config
	sem       *semaphore.Weighted
}

// Explore runs the parallel branch-and-bound search to completion.
// After it returns with a nil error, every Node in t.Nodes() carries
// its final HaploValue.
func (t *Tree) Explore(ctx context.Context, opts ...Option) error {
	cfg := resolve(opts)

	numNodes := t.nodes.NumNodes()
	if numNodes == 0 {
		return nil // §8 boundary: explore is a no-op.
	}

	capacity := cfg.ArenaCapacity
	if capacity <= 0 {
		capacity = defaultArenaCapacity(numNodes)
	}
	mgr := arena.NewManager(capacity)

	sel, err := selector.New(t.nodes, t.links, t.StartNode())
	if err != nil {
		return err
	}

	sem := semaphore.NewWeighted(int64(cfg.OpCores))
	bounder := bound.New(t.nodes, t.links, bound.WithSemaphore(sem))

	// Seed the root and its two children (§4.6 steps 2-3). Reserved as
	// one atomic block of three since nothing else can race the arena
	// before the first searchSubnodes call.
	first, err := mgr.Reserve(3)
	if err != nil {
		return err
	}
	rootIdx, leftIdx, rightIdx := first, first+1, first+2

	root, err := mgr.Node(rootIdx)
	if err != nil {
		return err
	}
	root.Index = t.StartNode()
	root.Value = 0
	root.LowerBound = 0
	root.UpperBound = t.MaxWorstCase()
	root.Left = leftIdx
	root.Right = rightIdx

	left, err := mgr.Node(leftIdx)
	if err != nil {
		return err
	}
	left.Type = arena.Left
	left.Root = rootIdx
	left.SetBounds(root.Bounds())

	right, err := mgr.Node(rightIdx)
	if err != nil {
		return err
	}
	right.Type = arena.Right
	right.Root = rootIdx
	right.SetBounds(root.Bounds())

	if numNodes == 1 {
		// §8 boundary: the root is the only position, so the search ends
		// right after seeding and the position takes the root's value.
		t.finalMinUbound.Store(t.MaxWorstCase())
		return t.nodes.SetHaploValue(root.Index, int32(root.Value))
	}

	minUbound := &atomic.Int64{}
	minUbound.Store(t.MaxWorstCase()) // start_node_worst_case, the shared initial global upper bound.

	ec := &execCtx{
		ctx:       ctx,
		tree:      t,
		mgr:       mgr,
		sel:       sel,
		bounder:   bounder,
		minUbound: minUbound,
		cfg:       cfg,
		sem:       sem,
	}

	_, err = ec.searchSubnodes(leftIdx, 2)
	if err != nil {
		return err
	}
	t.finalMinUbound.Store(minUbound.Load())

	return nil
}

// ancestorValues walks nodeIdx's Root chain up to (but excluding) the
// seeded placeholder root at arena index 0, collecting the branch
// value committed at each ancestor, keyed by the Node index that
// ancestor represents. The Bounder uses this to tell which of a
// position's incident Links already have both endpoints fixed along
// this path — those are the only ones it charges.
func (ec *execCtx) ancestorValues(nodeIdx int) (map[int]int32, error) {
	values := make(map[int]int32)
	cur := nodeIdx
	for {
		node, err := ec.mgr.Node(cur)
		if err != nil {
			return nil, err
		}
		parent := node.Root
		if parent == 0 {
			return values, nil
		}
		parentNode, err := ec.mgr.Node(parent)
		if err != nil {
			return nil, err
		}
		values[parentNode.Index] = int32(parentNode.Value)
		cur = parent
	}
}

// searchSubnodes is the recursion engine (§4.6). startIndex is the
// first arena index of this level's frontier; numSubnodes is its size.
// It returns the arena index of the best surviving node's Root, per
// §4.6(g), to let a caller continue assignment back up the path.
func (ec *execCtx) searchSubnodes(startIndex, numSubnodes int) (int, error) {
	branchCores := ec.cfg.BranchCores
	if branchCores > numSubnodes {
		branchCores = numSubnodes
	}

	searchIdx, err := ec.sel.SelectNode()
	if err != nil {
		return 0, err
	}

	// Every frontier member at this level represents a decision about
	// the same haplo position; stamp it before evaluating.
	for i := startIndex; i < startIndex+numSubnodes; i++ {
		node, nerr := ec.mgr.Node(i)
		if nerr != nil {
			return 0, nerr
		}
		node.Index = searchIdx
	}

	var numBranches atomic.Int64
	var bestPacked atomic.Int64
	bestPacked.Store(sentinelBestKey)

	boundThreads := ec.cfg.OpCores / ec.cfg.BranchCores
	if boundThreads < 1 {
		boundThreads = 1
	}

	g, gctx := errgroup.WithContext(ec.ctx)
	for tid := 0; tid < branchCores; tid++ {
		tid := tid
		g.Go(func() error {
			// Outer frontier walkers are already capped at branchCores
			// by construction (exactly branchCores goroutines are
			// launched); the shared semaphore is acquired one level
			// down, inside Bounder.Calculate's inner fan-out, so it
			// bounds total in-flight *bound* workers without an outer
			// acquire-then-call-in ordering that could self-deadlock.
			for it := 0; ; it++ {
				nodeIdx := startIndex + it*branchCores + tid
				if nodeIdx >= startIndex+numSubnodes {
					return nil
				}

				node, nerr := ec.mgr.Node(nodeIdx)
				if nerr != nil {
					return nerr
				}
				switch node.Type {
				case arena.Left:
					node.Value = 0
				case arena.Right:
					node.Value = 1
				}

				decided, derr := ec.ancestorValues(nodeIdx)
				if derr != nil {
					return derr
				}

				delta, berr := ec.bounder.Calculate(gctx, searchIdx, int32(node.Value), decided, boundThreads)
				if berr != nil {
					return berr
				}
				node.UpperBound -= delta.Upper
				node.LowerBound += delta.Lower

				if node.LowerBound > ec.minUbound.Load() {
					continue // pruned: provably worse than a known complete solution.
				}

				// This candidate survives bound-pruning: it always
				// contributes to the level's shared bounds and
				// tie-break, whether or not it is also the terminal
				// position (searchIdx == LastSearchIndex). Only
				// terminal status suppresses further expansion.
				atomicMinUpdate(ec.minUbound, node.UpperBound)
				atomicMinUpdate(&bestPacked, packKey(node.LowerBound, nodeIdx))

				if searchIdx == ec.sel.LastSearchIndex() {
					continue // terminal: no further position to branch on.
				}

				childFirst, rerr := ec.mgr.Reserve(2)
				if rerr != nil {
					return rerr
				}
				childLeft, lerr := ec.mgr.Node(childFirst)
				if lerr != nil {
					return lerr
				}
				childRight, rerr2 := ec.mgr.Node(childFirst + 1)
				if rerr2 != nil {
					return rerr2
				}
				lo, up := node.Bounds()
				childLeft.Type, childLeft.Root = arena.Left, nodeIdx
				childLeft.SetBounds(lo, up)
				childRight.Type, childRight.Root = arena.Right, nodeIdx
				childRight.SetBounds(lo, up)
				node.Left, node.Right = childFirst, childFirst+1

				numBranches.Add(2)
			}
		})
	}
	if werr := g.Wait(); werr != nil {
		return 0, werr
	}

	bestIdx := unpackIdx(bestPacked.Load())
	bestNode, err := ec.mgr.Node(bestIdx)
	if err != nil {
		return 0, err
	}
	if err := ec.tree.nodes.SetHaploValue(searchIdx, int32(bestNode.Value)); err != nil {
		return 0, err
	}

	branches := numBranches.Load()
	if branches > 0 && searchIdx != ec.sel.LastSearchIndex() {
		return ec.searchSubnodes(startIndex+numSubnodes, int(branches))
	}

	return bestNode.Root, nil
}
