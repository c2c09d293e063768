// Package bound implements the Bounder, which computes the (lower,
// upper) bound deltas a candidate branch decision contributes at a
// search node.
//
// Only Links incident to the haplo position being branched whose other
// endpoint is already decided along the search path are charged: each
// adds its realized weight (HetroWeight when the two values agree,
// HomoWeight when they differ) to both the lower and the upper delta,
// by the same amount. Links whose other endpoint is still undecided
// contribute nothing; the upper delta is not a sum of the larger
// homo/hetro weight of every incident Link. Calculate distributes the incident-link sum
// across boundThreads workers via a blocked range, fanned out with
// golang.org/x/sync/errgroup the way SeleniaProject-Orizon's package
// resolver fans concurrent work out under errgroup.WithContext, then
// reduces sequentially after Wait.
package bound
