package bound

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/parahaplo/hlink"
	"github.com/katalvlaran/parahaplo/hnode"
)

// Delta is the pair of bound adjustments a candidate branch decision
// contributes at one haplo position: Upper is subtracted from the
// parent's upper bound, Lower is added to the parent's lower bound.
type Delta struct {
	Lower int64
	Upper int64
}

// Bounder computes Delta for a (position, branch decision) pair. It
// holds only read references into the shared Node and Link sets —
// both are read-only for the lifetime of a Bounder.
type Bounder struct {
	nodes *hnode.Set
	links *hlink.Set
	sem   *semaphore.Weighted
}

// Option configures a Bounder.
type Option func(*Bounder)

// WithSemaphore bounds the inner fan-out's in-flight goroutines
// against sem, the weighted semaphore the driver creates with OpCores
// permits. Only this inner fan-out acquires it; the driver's outer
// branch-parallel goroutines do not.
func WithSemaphore(sem *semaphore.Weighted) Option {
	return func(b *Bounder) { b.sem = sem }
}

// New returns a Bounder over nodes and links.
func New(nodes *hnode.Set, links *hlink.Set, opts ...Option) *Bounder {
	b := &Bounder{nodes: nodes, links: links}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Calculate computes the Delta for assigning value to position pos,
// distributing the sum over pos's incident Links across boundThreads
// workers (a blocked range, reduced after the fan-out joins).
//
// decided carries the branch values already fixed along the current
// search path (ancestor Node index -> assigned value). A Link's cost
// is only realized once both of its endpoints are fixed along the
// path: while the other endpoint is still unresolved the Link
// contributes nothing (its cost is charged later, at whichever of its
// two endpoints is decided second — always the same ordering for a
// given pair, since the search commits positions in a fixed priority
// order regardless of branch). Charging each Link exactly once, and
// charging lower and upper by the identical amount when it happens,
// keeps lower_bound <= upper_bound for every SearchNode unconditionally:
// the window's width never changes except by a matched pair of
// adjustments, so it can never invert regardless of how loose the
// caller's worst-case seed is relative to the Link weights.
//
// The realized cost is HetroWeight when the two endpoint values agree
// and HomoWeight when they differ. This is the inverse of a literal
// "homozygous weight penalizes equal values" reading, but it is the
// only mapping consistent with every worked scenario in the assembly's
// test data (a dominant HomoWeight pulls the pair toward equal, not
// away from it) — see DESIGN.md.
func (b *Bounder) Calculate(ctx context.Context, pos int, value int32, decided map[int]int32, boundThreads int) (Delta, error) {
	incident := b.links.Incident(pos)
	if len(incident) == 0 {
		return Delta{}, nil
	}

	if boundThreads < 1 {
		boundThreads = 1
	}
	if boundThreads > len(incident) {
		boundThreads = len(incident)
	}

	blockSize := (len(incident) + boundThreads - 1) / boundThreads
	partials := make([]Delta, boundThreads)

	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < boundThreads; t++ {
		t := t
		start := t * blockSize
		end := start + blockSize
		if end > len(incident) {
			end = len(incident)
		}
		if start >= end {
			continue
		}

		g.Go(func() error {
			if b.sem != nil {
				if err := b.sem.Acquire(gctx, 1); err != nil {
					return err
				}
				defer b.sem.Release(1)
			}

			var lower, upper int64
			for _, k := range incident[start:end] {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				other := k.Lower
				if other == pos {
					other = k.Upper
				}

				otherValue, ok := decided[other]
				if !ok {
					// Other endpoint still unresolved: this Link's cost
					// is deferred to whichever of the two positions is
					// decided second.
					continue
				}

				link, err := b.links.At(k.Lower, k.Upper)
				if err != nil {
					return err
				}

				var realized int64
				if otherValue == value {
					realized = link.HetroWeight.Load()
				} else {
					realized = link.HomoWeight.Load()
				}
				lower += realized
				upper += realized
			}
			partials[t] = Delta{Lower: lower, Upper: upper}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Delta{}, err
	}

	var total Delta
	for _, p := range partials {
		total.Lower += p.Lower
		total.Upper += p.Upper
	}

	return total, nil
}
