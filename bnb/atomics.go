package bnb

import (
	"math"
	"sync/atomic"
)

// packMultiplier bounds how many distinct arena indices the composite
// (lowerBound, nodeIdx) tiebreak key can distinguish. The default
// arena-capacity heuristic in explore.go stays well under this, so the
// packed key never lets a node index bleed into the lowerBound digits.
const packMultiplier = 1 << 20

// packKey combines a lower bound and an arena index into one int64,
// ordered lexicographically by (lower, idx) under plain integer
// comparison — the deterministic secondary tiebreak §9 asks for,
// folded into the same CAS-min loop that tracks min_lbound.
func packKey(lower int64, idx int) int64 {
	return lower*packMultiplier + int64(idx)
}

func unpackIdx(key int64) int {
	return int(key % packMultiplier)
}

func unpackLower(key int64) int64 {
	return key / packMultiplier
}

// sentinelBestKey is the initial value of a level's bestPacked atomic:
// larger than any key a real SearchNode could produce, so the first
// real update always wins.
var sentinelBestKey = packKey(math.MaxInt64/packMultiplier-1, 0)

// atomicMinUpdate performs the CAS-min idiom: load current, return if
// already ≤ proposed, else CAS(current, proposed) and retry on
// contention. This is the only synchronization primitive the engine
// needs for monotonic shared-bound publishing (§9).
func atomicMinUpdate(addr *atomic.Int64, proposed int64) {
	for {
		cur := addr.Load()
		if cur <= proposed {
			return
		}
		if addr.CompareAndSwap(cur, proposed) {
			return
		}
	}
}
