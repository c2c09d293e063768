// Package parahaplo is a parallel branch-and-bound solver for weighted
// haplotype assembly.
//
// 🚀 What is parahaplo?
//
//	A thread-safe Go module that assigns each haplotype position a 0/1
//	value by searching a binary decision tree under bound-guided pruning:
//
//	  • hnode / hlink — the Node and Link primitives, mutated safely under
//	    per-concern R/W locks
//	  • arena     — an index-addressed SearchNode arena backing the search
//	    tree, avoiding pointer-linked node churn
//	  • selector  — picks the next haplo position to branch on and breaks
//	    ties deterministically
//	  • bound     — computes the Lower/Upper bound Delta a branch value
//	    realizes against a position's incident Links
//	  • bnb       — Tree.Explore, the nested-parallel recursion that walks
//	    the tree, prunes against a shared atomic upper bound, and commits
//	    the winning value at each position
//
// ✨ Why choose parahaplo?
//
//   - Deterministic    — with BranchCores=1, identical input always yields
//     the same assignment; with more branch walkers the tie-broken
//     assignment may differ between runs, the final upper bound does not
//   - Provably bounded — lower_bound <= upper_bound holds for every
//     SearchNode, by construction, regardless of the Link weights in play
//   - Tunable          — BranchCores and OpCores trade outer branch
//     parallelism against inner bound-calculation parallelism under one
//     shared semaphore
//   - Pure Go          — no cgo; golang.org/x/sync supplies errgroup and
//     semaphore, the rest is standard library
//
// Quick example: two linked positions, a dominant homozygous weight
// pulling them toward agreement:
//
//	tree, _ := bnb.NewTree(2)
//	_ = tree.SetStartNode(0)
//	tree.SetMaxWorstCase(7)
//	link, _ := tree.CreateLink(0, 1)
//	link.HomoWeight.Store(3)
//	link.HetroWeight.Store(1)
//	_ = tree.Explore(context.Background())
//
// See SPEC_FULL.md for the full model and DESIGN.md for how each package
// is grounded.
package parahaplo
