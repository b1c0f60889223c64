package pitmaster

// Anomaly thresholds for consecutive probe readings.
const (
	anomalyDropDeltaF     = -5.0
	anomalyJumpDeltaF     = 20.0
	anomalySmokerDeltaF   = 50.0
	freezeReleaseReadings = 3
)

// Evaluator is a per-session trust/confidence post-processor. It holds
// counters across calls and must not be shared between sessions.
type Evaluator struct {
	AnomalyCount      int
	ConsecutiveNormal int
	Frozen            bool
}

// NewEvaluator returns a zeroed Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate combines the raw Monte Carlo confidence (raw.Confidence) with
// anomaly detection against session's reading stream, returning the tier to
// report and mutating the evaluator's counters.
//
// The caller must append the latest reading to session.Readings before
// calling Evaluate, so the anomaly check sees it as the last entry.
func (e *Evaluator) Evaluate(session *Session, raw Result) Tier {
	if e.anomalous(session) {
		e.AnomalyCount++
		e.ConsecutiveNormal = 0
		e.Frozen = true

		return TierVeryLow
	}

	e.ConsecutiveNormal++
	if e.Frozen && e.ConsecutiveNormal >= freezeReleaseReadings {
		e.Frozen = false
	}

	if e.Frozen {
		return TierVeryLow
	}

	return raw.Confidence
}

// anomalous reports whether the most recent reading looks anomalous: a
// sudden drop, an implausible jump, or a smoker temperature far from
// setpoint.
func (e *Evaluator) anomalous(session *Session) bool {
	readings := session.Readings
	if len(readings) < 2 {
		return false
	}

	last := readings[len(readings)-1]
	prev := readings[len(readings)-2]
	delta := last.ProbeTempF - prev.ProbeTempF

	if delta < anomalyDropDeltaF {
		return true
	}

	if delta > anomalyJumpDeltaF {
		return true
	}

	if last.SmokerTempF != nil {
		smokerDelta := *last.SmokerTempF - session.SmokerSetpointF
		if smokerDelta < 0 {
			smokerDelta = -smokerDelta
		}

		if smokerDelta > anomalySmokerDeltaF {
			return true
		}
	}

	return false
}

// Reset zeroes the evaluator's counters.
func (e *Evaluator) Reset() {
	e.AnomalyCount = 0
	e.ConsecutiveNormal = 0
	e.Frozen = false
}

// rawConfidence computes the MC-spread-and-count confidence tier, before
// any trust-evaluator anomaly freeze is applied.
func rawConfidence(spread float64, n int) Tier {
	switch {
	case n >= 10 && spread < 60:
		return TierHigh
	case n >= 5 && spread < 120:
		return TierModerate
	case n >= 2 && spread < 240:
		return TierLow
	default:
		return TierVeryLow
	}
}
