// Package hnode defines the Node record and Set, the dense indexed
// container of positions a haplotype assembly search branches over.
//
// A Node carries the significance (Weight) of one output haplotype
// position (HaploPos) plus the single mutable field the search engine
// ever writes: HaploValue, set exactly once when the engine terminates.
//
// Set is sized once via Resize by the engine (a Resize to a different
// size replaces the contents with zero-valued Nodes); Weight and HaploPos
// are read-only after load, HaploValue is written by the engine's
// sequential post-join phase only, so contention is limited to the
// guard around the backing slice itself.
package hnode
