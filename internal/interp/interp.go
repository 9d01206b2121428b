// Package interp provides linear interpolation between two reference values.
package interp

import (
	"fmt"
	"strings"
)

// Precise returns (1-t)*v0 + t*v1. It reproduces v1 exactly at t == 1.
// t outside [0, 1] extrapolates.
func Precise(v0, v1, t float64) float64 {
	return (1-t)*v0 + t*v1
}

// Imprecise returns v0 + t*(v1-v0). One multiply fewer, and a natural
// fit for hardware with fused multiply-add, but v1-v0 may round so the
// result at t == 1 is not guaranteed to be v1.
func Imprecise(v0, v1, t float64) float64 {
	return v0 + t*(v1-v0)
}

// Formula selects a lerp implementation.
type Formula int

const (
	PreciseFormula Formula = iota
	ImpreciseFormula
)

func (f Formula) String() string {
	switch f {
	case ImpreciseFormula:
		return "imprecise"
	default:
		return "precise"
	}
}

// Lerp interpolates with the selected formula.
func (f Formula) Lerp(v0, v1, t float64) float64 {
	if f == ImpreciseFormula {
		return Imprecise(v0, v1, t)
	}
	return Precise(v0, v1, t)
}

// ParseFormula maps a config name to a Formula. The empty string selects
// the precise form.
func ParseFormula(name string) (Formula, error) {
	switch strings.ToLower(name) {
	case "", "precise", "stable":
		return PreciseFormula, nil
	case "imprecise", "fma":
		return ImpreciseFormula, nil
	}
	return PreciseFormula, fmt.Errorf("unknown lerp formula: %s", name)
}
