// Package editdist computes Levenshtein edit distances between sequences.
//
// It provides a generic Distance over slices of any comparable element type
// and a rune-aware Strings convenience. The implementation is a classic
// dynamic program over a rolling pair of rows: O(m*n) time, O(min(m,n))
// working memory, no allocations proportional to the full matrix.
package editdist
