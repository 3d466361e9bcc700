package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 5, Abs(-5))
	assert.Equal(t, 5, Abs(5))
	assert.Equal(t, 0, Abs(0))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, -5, Min(-5, -3))
	assert.Equal(t, -3, Max(-5, -3))
}

func TestNps(t *testing.T) {
	// the extra nanosecond in the divisor truncates 999.999999 down to 999
	assert.Equal(t, uint64(999), Nps(1000, time.Second))
	// a zero duration must not panic or divide by zero
	assert.NotPanics(t, func() { Nps(42, 0) })
}
