//go:build amd64

package hwtrig

// Native is true when FSIN is executed directly.
const Native = true

//go:noescape
func fsinDegreesInt(deg int64) float64

//go:noescape
func fsinDegrees(deg float64) float64

//go:noescape
func fsinRadians(x float64) float64
