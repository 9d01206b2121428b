package strategy

import (
	"fmt"
	"strings"
)

// InputMode decides how the library strategy reads its integer argument.
type InputMode int

const (
	InputRadians InputMode = iota
	InputDegrees
)

func (m InputMode) String() string {
	if m == InputDegrees {
		return "degrees"
	}
	return "radians"
}

func ParseInputMode(s string) (InputMode, error) {
	switch strings.ToLower(s) {
	case "", "radians", "raw":
		return InputRadians, nil
	case "degrees":
		return InputDegrees, nil
	}
	return InputRadians, fmt.Errorf("unknown library input mode: %s", s)
}
