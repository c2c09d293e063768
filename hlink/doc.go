// Package hlink defines the Link record and Set, the sparse map from an
// ordered pair of Node indices to the pairwise penalty weights the
// haplotype assembly search accumulates bounds from.
//
// A Link's key is the strictly ordered pair (Lower, Upper) with
// Lower < Upper. The Set returns absent as equivalent to both weights
// being zero. Links are created and mutated only during load; the
// search engine only reads them, so Set's lock sees exclusively
// concurrent readers once Explore begins.
package hlink
