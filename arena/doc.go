// Package arena implements the search-node arena: a pre-allocated,
// append-only pool of SearchNode records addressed by dense integer
// index, grown via a single atomic high-water counter.
//
// The search tree is expressed as this arena plus forward-only parent
// links (SearchNode.Root always points to an index allocated earlier)
// rather than as pointer-linked nodes, so concurrent expansion reduces
// to one atomic fetch-and-add per allocation and there is no ownership
// cycle to manage.
package arena
