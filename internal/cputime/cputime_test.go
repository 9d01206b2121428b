package cputime

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spin() float64 {
	x := 0.0
	for i := 0; i < 2_000_000; i++ {
		x += math.Sqrt(float64(i))
	}
	return x
}

func TestClocksAdvance(t *testing.T) {
	for _, name := range []string{"cpu", "wall"} {
		c, err := Parse(name)
		require.NoError(t, err)

		before := c.Now()
		_ = spin()
		after := c.Now()
		assert.GreaterOrEqual(t, after, before, name)
		assert.GreaterOrEqual(t, before, time.Duration(0), name)
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("sundial")
	assert.Error(t, err)
}
