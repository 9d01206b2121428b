package fpcheck

import (
	"errors"
	"fmt"
	"strings"
)

// Float is the set of types the predicates accept.
type Float interface {
	~float32 | ~float64
}

// IsNaN reports whether v is not equal to itself.
func IsNaN[F Float](v F) bool { return v != v }

// IsNotNaN reports whether v equals itself.
func IsNotNaN[F Float](v F) bool { return v == v }

// IsNaNOrInfinity reports whether v*0 is non-zero, which only happens
// for NaN and ±Inf.
func IsNaNOrInfinity[F Float](v F) bool { return v*0 != 0 }

// IsNotNaNOrInfinity reports whether v is finite.
func IsNotNaNOrInfinity[F Float](v F) bool { return v*0 == 0 }

// ErrFloatingPoint is wrapped by every ExceptionError.
var ErrFloatingPoint = errors.New("fpcheck: floating point exception")

// ExceptionError records the input that produced a non-finite value.
type ExceptionError struct {
	Degree int
	Value  float64
}

func (e *ExceptionError) Error() string {
	return fmt.Sprintf("%v at %d degrees (value %v)", ErrFloatingPoint, e.Degree, e.Value)
}

func (e *ExceptionError) Unwrap() error {
	return ErrFloatingPoint
}

// Mode selects whether non-finite results are reported.
type Mode int

const (
	Off Mode = iota
	On
)

func (m Mode) String() string {
	if m == On {
		return "on"
	}
	return "off"
}

// ParseMode accepts on/off and the usual boolean spellings.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "on", "true", "1", "yes":
		return On, nil
	case "off", "false", "0", "no", "":
		return Off, nil
	}
	return Off, fmt.Errorf("unknown fp check mode: %s", s)
}

// Check returns an *ExceptionError when mode is On and v is NaN or infinite.
func Check(mode Mode, degree int, v float64) error {
	if mode == Off || IsNotNaNOrInfinity(v) {
		return nil
	}
	return &ExceptionError{Degree: degree, Value: v}
}
