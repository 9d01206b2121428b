// Package cputime samples processor time consumed by the current process.
package cputime

import (
	"fmt"
	"strings"
	"time"
)

// Clock returns a monotonically non-decreasing reading. Only differences
// between two readings are meaningful.
type Clock interface {
	Now() time.Duration
}

type cpuClock struct{}

// CPU returns a clock of user plus system CPU time for this process. On
// platforms without a process CPU clock it falls back to wall time.
func CPU() Clock { return cpuClock{} }

func (cpuClock) Now() time.Duration { return processTime() }

type wallClock struct {
	start time.Time
}

// Wall returns a monotonic wall clock.
func Wall() Clock { return &wallClock{start: time.Now()} }

func (c *wallClock) Now() time.Duration { return time.Since(c.start) }

// Parse maps "cpu" or "wall" to a Clock.
func Parse(name string) (Clock, error) {
	switch strings.ToLower(name) {
	case "", "cpu":
		return CPU(), nil
	case "wall":
		return Wall(), nil
	}
	return nil, fmt.Errorf("unknown clock: %s", name)
}
