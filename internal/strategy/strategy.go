// Package strategy puts the sine evaluators behind one interface so the
// benchmark harness can drive them through ordinary dispatch.
package strategy

import (
	"math"

	"github.com/san-kum/sinebench/internal/hwtrig"
	"github.com/san-kum/sinebench/internal/interp"
	"github.com/san-kum/sinebench/internal/lut"
)

// Strategy evaluates the sine of an integer angle.
type Strategy interface {
	// Name is the registry key.
	Name() string
	// Label prefixes the "time elapsed" line in reports.
	Label() string
	Sine(deg int) float64
}

// Table looks the angle up in a precomputed table. Angles outside 0..89
// yield NaN.
type Table struct {
	table *lut.Table
}

func NewTable(t *lut.Table) *Table {
	if t == nil {
		t = lut.Default
	}
	return &Table{table: t}
}

func (s *Table) Name() string         { return "table" }
func (s *Table) Label() string        { return "Sine" }
func (s *Table) Sine(deg int) float64 { return s.table.Sine(deg) }

// InterpolatedTable reads the table through the lerp hook. For whole
// degrees it returns the same entries as Table; it exists to measure the
// cost of the interpolation path.
type InterpolatedTable struct {
	table   *lut.Table
	formula interp.Formula
}

func NewInterpolatedTable(t *lut.Table, f interp.Formula) *InterpolatedTable {
	if t == nil {
		t = lut.Default
	}
	return &InterpolatedTable{table: t, formula: f}
}

func (s *InterpolatedTable) Name() string  { return "table-lerp" }
func (s *InterpolatedTable) Label() string { return "Sine lerp" }

func (s *InterpolatedTable) Sine(deg int) float64 {
	return s.table.Interpolate(float64(deg), s.formula)
}

// HardwareInline hands the integer angle straight to the FPU routine.
type HardwareInline struct{}

func NewHardwareInline() *HardwareInline { return &HardwareInline{} }

func (s *HardwareInline) Name() string         { return "fsin-inline" }
func (s *HardwareInline) Label() string        { return "fsin inline" }
func (s *HardwareInline) Sine(deg int) float64 { return hwtrig.SinDegreesInt(int64(deg)) }

// HardwareCall goes through the out-of-line hwtrig.SinDegrees wrapper.
type HardwareCall struct{}

func NewHardwareCall() *HardwareCall { return &HardwareCall{} }

func (s *HardwareCall) Name() string         { return "fsin-call" }
func (s *HardwareCall) Label() string        { return "SinAsm" }
func (s *HardwareCall) Sine(deg int) float64 { return hwtrig.SinDegrees(float64(deg)) }

// Library calls math.Sin. With InputRadians, the default, the integer
// angle is passed unconverted and therefore read as radians, unlike every
// other strategy. InputDegrees converts first.
type Library struct {
	input InputMode
}

func NewLibrary(input InputMode) *Library {
	return &Library{input: input}
}

func (s *Library) Name() string  { return "libm" }
func (s *Library) Label() string { return "Sin" }

func (s *Library) Input() InputMode { return s.input }

func (s *Library) Sine(deg int) float64 {
	if s.input == InputDegrees {
		return math.Sin(hwtrig.DegToRad(float64(deg)))
	}
	return math.Sin(float64(deg))
}
