//go:build !amd64

package hwtrig

import "math"

// Native is false: there is no x87 unit, math.Sin stands in for FSIN.
const Native = false

func fsinDegreesInt(deg int64) float64 {
	return math.Sin(float64(deg) * math.Pi / TwoRightAngles)
}

func fsinDegrees(deg float64) float64 {
	return math.Sin(deg * math.Pi / TwoRightAngles)
}

func fsinRadians(x float64) float64 {
	return math.Sin(x)
}
