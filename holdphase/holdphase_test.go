package holdphase

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePeakIsCarryoverAbovePull(t *testing.T) {
	result := Calculate(195, 0, 0, true)
	assert.Equal(t, 202.0, result.CarryoverPeakF)
}

func TestCalculateNoWaitWhenAlreadyAtServingTemp(t *testing.T) {
	result := Calculate(160, 0, 165, true) // peak 167 > 165, still above
	assert.Greater(t, result.TimeToServingTempMinutes, 0.0)

	result = Calculate(100, 0, 165, true) // peak 107, below serving temp
	assert.Equal(t, 0.0, result.TimeToServingTempMinutes)
}

func TestCalculateUnwrappedCoolsFaster(t *testing.T) {
	wrapped := Calculate(195, 0, 0, true)
	unwrapped := Calculate(195, 0, 0, false)

	assert.Less(t, unwrapped.TimeToServingTempMinutes, wrapped.TimeToServingTempMinutes)
}

func TestCalculateRestIsClampedToRange(t *testing.T) {
	result := Calculate(195, 0, 0, true)
	assert.GreaterOrEqual(t, result.RecommendedRestMinutes, minRestMinutes)
	assert.LessOrEqual(t, result.RecommendedRestMinutes, maxRestMinutes)
}

func TestCalculateInfiniteWhenServingAtOrBelowAmbient(t *testing.T) {
	result := Calculate(195, 150, 140, true)
	assert.True(t, math.IsInf(result.TimeToServingTempMinutes, 1))
}
