// Package bnb implements Tree, the top-level aggregate that owns the
// Node set, Link set, search-node arena, NodeSelector, and Bounder,
// and Explore, the parallel branch-and-bound driver over them.
//
// Explore seeds the root SearchNode and its two children, then
// recursively calls searchSubnodes, which at each level selects a
// haplo position (selector.Selector), evaluates the live frontier in
// parallel (bound.Bounder, pruning against a shared atomic upper
// bound), spawns children in the arena for survivors, and recurses on
// the next level. On termination every Node carries its haplo_value.
package bnb
