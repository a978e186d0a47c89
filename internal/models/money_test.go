package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatAdd(t *testing.T) {
	assert.EqualValues(t, 2500, SatAdd(2000, 500))
	assert.EqualValues(t, int64(math.MaxInt64), SatAdd(math.MaxInt64, 1))
	assert.EqualValues(t, int64(math.MinInt64), SatAdd(math.MinInt64, -1))
	assert.EqualValues(t, -1, SatAdd(math.MaxInt64, math.MinInt64))
}

func TestSatMul(t *testing.T) {
	assert.EqualValues(t, 2000, SatMul(1000, 2))
	assert.Zero(t, SatMul(math.MaxInt64, 0))
	assert.EqualValues(t, int64(math.MaxInt64), SatMul(math.MaxInt64, 2))
	assert.EqualValues(t, int64(math.MinInt64), SatMul(math.MaxInt64, -2))
}
