package pitmaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStallProbabilityOutsideZone(t *testing.T) {
	assert.Equal(t, 0.0, StallProbability(139.9))
	assert.Equal(t, 0.0, StallProbability(185.1))
}

func TestStallProbabilityInZone(t *testing.T) {
	for _, temp := range []float64{140, 150, 160, 170, 185} {
		p := StallProbability(temp)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}

	assert.Greater(t, StallProbability(170), StallProbability(150),
		"probability should rise with temperature inside the stall zone")
}

func TestDetectOverrideRequiresFullWindow(t *testing.T) {
	flat := make([]float64, 9)
	assert.False(t, DetectOverride(flat, 160), "fewer than 10 slopes never overrides")

	flat = make([]float64, 10)
	assert.True(t, DetectOverride(flat, 160))
}

func TestDetectOverrideOutsideZone(t *testing.T) {
	flat := make([]float64, 10)
	assert.False(t, DetectOverride(flat, 100))
	assert.False(t, DetectOverride(flat, 200))
}

func TestDetectOverrideRejectsSteepSlope(t *testing.T) {
	slopes := make([]float64, 10)
	slopes[5] = 0.5
	assert.False(t, DetectOverride(slopes, 160))
}

func TestSlope(t *testing.T) {
	assert.Equal(t, 2.0, Slope(150, 152, 1))
	assert.Equal(t, 0.0, Slope(150, 152, 0))
}

func TestSlopeHistoryWindow(t *testing.T) {
	temps := []float64{100, 101, 103, 106, 110}
	slopes := SlopeHistory(temps, 2, 1)
	assert.Equal(t, []float64{3, 4}, slopes)
}

func TestAppendSlopeBounded(t *testing.T) {
	var history []float64
	for i := 0; i < maxSlopeHistory+5; i++ {
		history = appendSlope(history, float64(i))
	}

	assert.Len(t, history, maxSlopeHistory)
	assert.Equal(t, float64(maxSlopeHistory+4), history[len(history)-1])
}
