package fpcheck

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsNaN(t *testing.T) {
	assert.True(t, IsNaN(math.NaN()))
	assert.False(t, IsNaN(0.5))
	assert.False(t, IsNaN(math.Inf(1)))
	assert.True(t, IsNaN(float32(math.NaN())))

	assert.False(t, IsNotNaN(math.NaN()))
	assert.True(t, IsNotNaN(0.5))
}

func TestIsNaNOrInfinity(t *testing.T) {
	tests := []struct {
		v    float64
		want bool
	}{
		{math.Inf(1), true},
		{math.Inf(-1), true},
		{math.NaN(), true},
		{42.0, false},
		{0, false},
		{-math.MaxFloat64, false},
		{math.SmallestNonzeroFloat64, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsNaNOrInfinity(tt.v), "IsNaNOrInfinity(%v)", tt.v)
		assert.Equal(t, !tt.want, IsNotNaNOrInfinity(tt.v), "IsNotNaNOrInfinity(%v)", tt.v)
	}

	assert.True(t, IsNaNOrInfinity(float32(math.Inf(1))))
	assert.False(t, IsNaNOrInfinity(float32(1.5)))
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(On, 3, 0.5))
	assert.NoError(t, Check(Off, 3, math.NaN()))

	err := Check(On, 7, math.Inf(1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFloatingPoint))

	var exc *ExceptionError
	require.True(t, errors.As(err, &exc))
	assert.Equal(t, 7, exc.Degree)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("on")
	require.NoError(t, err)
	assert.Equal(t, On, m)

	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Off, m)

	_, err = ParseMode("sometimes")
	assert.Error(t, err)
}
