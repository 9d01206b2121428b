// Package fpcheck classifies floating-point values without calling into
// package math.
//
// The predicates rely on two IEEE-754 identities:
//
//   - NaN is the only value that compares unequal to itself.
//   - v*0 is exactly zero for every finite v, and NaN for NaN or ±Inf.
//
// All predicates are pure, allocation free and constant time.
package fpcheck
