package lut

import (
	"fmt"
	"io"
	"math"

	"github.com/san-kum/sinebench/internal/fpcheck"
	"github.com/san-kum/sinebench/internal/interp"
)

const (
	// Size is the number of table entries, one per degree.
	Size = 90

	// MaxDegree is the largest angle the table covers.
	MaxDegree = Size - 1
)

// Table holds sin(d) for d = 0..89 degrees. It is immutable once built.
type Table struct {
	sin [Size]float64
}

// Default is generated from math.Sin when the package is initialised.
var Default = MustGenerate(math.Sin)

// Generate evaluates ref at each whole degree and verifies the result.
func Generate(ref func(rad float64) float64) (*Table, error) {
	t := &Table{}
	for i := 0; i < Size; i++ {
		t.sin[i] = ref(degToRad(float64(i)))
	}
	if err := Verify(t.sin[:]); err != nil {
		return nil, err
	}
	return t, nil
}

// MustGenerate is like Generate but panics on a table that fails
// verification.
func MustGenerate(ref func(rad float64) float64) *Table {
	t, err := Generate(ref)
	if err != nil {
		panic(err)
	}
	return t
}

// Verify checks length, finiteness and strict monotonic increase.
func Verify(values []float64) error {
	if len(values) != Size {
		return &TableError{Index: len(values), Wrapped: ErrLength}
	}
	for i, v := range values {
		if fpcheck.IsNaNOrInfinity(v) {
			return &TableError{Index: i, Value: v, Wrapped: ErrNonFinite}
		}
		if i > 0 && v <= values[i-1] {
			return &TableError{Index: i, Value: v, Wrapped: ErrNotMonotonic}
		}
	}
	return nil
}

// Sine returns the table entry for a, or NaN when a is outside [0, 89].
func (t *Table) Sine(a int) float64 {
	if a >= 0 && a <= MaxDegree {
		return t.sin[a]
	}
	return math.NaN()
}

// Interpolate returns the sine of a fractional angle in [0, 89] degrees by
// interpolating between neighbouring entries with f. Angles outside the
// table, and NaN, yield NaN.
func (t *Table) Interpolate(deg float64, f interp.Formula) float64 {
	if !(deg >= 0 && deg <= MaxDegree) {
		return math.NaN()
	}
	i := int(deg)
	if i == MaxDegree {
		return t.sin[i]
	}
	frac := deg - float64(i)
	return f.Lerp(t.sin[i], t.sin[i+1], frac)
}

// At returns entry i. It panics if i is out of range.
func (t *Table) At(i int) float64 { return t.sin[i] }

// Len returns Size.
func (t *Table) Len() int { return len(t.sin) }

// Values returns a copy of the entries.
func (t *Table) Values() []float64 {
	out := make([]float64, Size)
	copy(out, t.sin[:])
	return out
}

// Reference prints ref at each whole degree, nine values per line, in the
// same layout the table is documented with. With mode On the pass stops at
// the first NaN or infinite value and returns an *fpcheck.ExceptionError.
func Reference(w io.Writer, ref func(rad float64) float64, mode fpcheck.Mode) error {
	for i := 0; i < Size; i++ {
		v := ref(degToRad(float64(i)))
		sep := ""
		if (i+1)%9 == 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%f, %s", v, sep); err != nil {
			return err
		}
		if err := fpcheck.Check(mode, i, v); err != nil {
			return err
		}
	}
	return nil
}

func degToRad(d float64) float64 {
	return d * (math.Pi / 180.)
}
