// Package lut provides a precomputed sine lookup table for whole degrees in
// the first two octants (0 to 89 degrees).
//
// The table is generated once from a reference sine implementation and
// verified at startup:
//
//	t, err := lut.Generate(math.Sin)
//	v := t.Sine(45) // 0.707107
//	v = t.Sine(90)  // NaN, outside the table
//
// Out-of-range lookups are reported through a NaN return value, never a
// panic or an error.
package lut
