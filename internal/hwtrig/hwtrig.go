// Package hwtrig evaluates sine with the x87 FSIN instruction.
//
// Angles are given in degrees and converted on the FPU as deg*π/180 before
// FSIN runs, so the conversion and the transcendental share one register
// stack. No range reduction or bounds checking is applied: FSIN only
// reduces arguments with |x| < 2^63, and larger inputs produce whatever the
// hardware produces.
//
// On targets without an x87 unit the same conversion is followed by
// math.Sin; Native reports which path was compiled in.
package hwtrig

import "math"

// TwoRightAngles is the number of degrees in π radians.
const TwoRightAngles = 180.0

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 { return d * (math.Pi / TwoRightAngles) }

// RadToDeg converts radians to degrees.
func RadToDeg(r float64) float64 { return r * (TwoRightAngles / math.Pi) }

// SinDegreesInt loads an integer angle straight onto the FPU stack and
// returns its sine. It is the entry point used where the conversion is
// expanded at the call site.
func SinDegreesInt(deg int64) float64 {
	return fsinDegreesInt(deg)
}

// SinDegrees returns the sine of a floating-point angle in degrees. It is
// kept out of line so callers pay a real call on every evaluation.
//
//go:noinline
func SinDegrees(deg float64) float64 {
	return fsinDegrees(deg)
}

// SinRadians applies only the FSIN stage to a value already in radians.
func SinRadians(x float64) float64 {
	return fsinRadians(x)
}
