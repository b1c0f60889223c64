package pitmaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sessionWithReadings(temps ...float64) *Session {
	s := &Session{SmokerSetpointF: 250.0}
	for i, temp := range temps {
		s.Readings = append(s.Readings, ProbeReading{ElapsedMinutes: float64(i), ProbeTempF: temp})
	}

	return s
}

func TestEvaluatePassesThroughRawTierWhenNormal(t *testing.T) {
	e := NewEvaluator()
	s := sessionWithReadings(100, 102, 104)

	tier := e.Evaluate(s, Result{Confidence: TierHigh})
	assert.Equal(t, TierHigh, tier)
	assert.False(t, e.Frozen)
}

func TestEvaluateFreezesOnTempDrop(t *testing.T) {
	e := NewEvaluator()
	s := sessionWithReadings(150, 140) // -10F, past anomalyDropDeltaF

	tier := e.Evaluate(s, Result{Confidence: TierHigh})
	assert.Equal(t, TierVeryLow, tier)
	assert.True(t, e.Frozen)
	assert.Equal(t, 1, e.AnomalyCount)
}

func TestEvaluateFreezesOnImplausibleJump(t *testing.T) {
	e := NewEvaluator()
	s := sessionWithReadings(150, 175) // +25F, past anomalyJumpDeltaF

	tier := e.Evaluate(s, Result{Confidence: TierHigh})
	assert.Equal(t, TierVeryLow, tier)
	assert.True(t, e.Frozen)
}

func TestEvaluateFreezesOnSmokerTempDeviation(t *testing.T) {
	e := NewEvaluator()
	s := sessionWithReadings(150, 151)
	hot := 350.0
	s.Readings[len(s.Readings)-1].SmokerTempF = &hot

	tier := e.Evaluate(s, Result{Confidence: TierHigh})
	assert.Equal(t, TierVeryLow, tier)
}

func TestEvaluateReleasesAfterThreeConsecutiveNormalReadings(t *testing.T) {
	e := NewEvaluator()
	s := sessionWithReadings(150, 140) // trigger freeze

	e.Evaluate(s, Result{Confidence: TierHigh})
	assert.True(t, e.Frozen)

	for i := 0; i < 2; i++ {
		s.Readings = append(s.Readings, ProbeReading{ElapsedMinutes: float64(len(s.Readings)), ProbeTempF: 141})
		tier := e.Evaluate(s, Result{Confidence: TierHigh})
		assert.Equal(t, TierVeryLow, tier, "still frozen before the third consecutive normal reading")
	}

	s.Readings = append(s.Readings, ProbeReading{ElapsedMinutes: float64(len(s.Readings)), ProbeTempF: 142})
	tier := e.Evaluate(s, Result{Confidence: TierModerate})
	assert.Equal(t, TierModerate, tier)
	assert.False(t, e.Frozen)
}

func TestResetClearsCounters(t *testing.T) {
	e := NewEvaluator()
	s := sessionWithReadings(150, 140)
	e.Evaluate(s, Result{Confidence: TierHigh})

	e.Reset()
	assert.False(t, e.Frozen)
	assert.Zero(t, e.AnomalyCount)
	assert.Zero(t, e.ConsecutiveNormal)
}

func TestRawConfidenceTiers(t *testing.T) {
	assert.Equal(t, TierHigh, rawConfidence(30, 12))
	assert.Equal(t, TierModerate, rawConfidence(90, 6))
	assert.Equal(t, TierLow, rawConfidence(200, 3))
	assert.Equal(t, TierVeryLow, rawConfidence(500, 1))
}
