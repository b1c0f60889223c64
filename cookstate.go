package pitmaster

// Temperature thresholds that gate state transitions.
const (
	preheatEarlyCookTempF   = 100.0
	earlyCookPreStallTempF  = 130.0
	stallEntryTempF         = 140.0
	stallExitTempF          = 175.0
	approachingTargetDeltaF = 10.0
)

// Advance evaluates a new probe reading against session's current state and
// transition table, mutating session.State and session.Stall as needed, and
// appends one slope to the slope history. A reading drives at most one
// transition; attempted transitions outside the table leave the state
// unchanged.
//
// The caller must append reading to session.Readings before calling
// Advance — the slope history is derived from the last two entries there,
// mirroring how a new row lands in the readings table before the state
// machine reacts to it.
func Advance(session *Session, reading ProbeReading) State {
	current := session.State
	temp := reading.ProbeTempF
	target := session.TargetF

	newState := current

	switch current {
	case StateSetup:
		newState = StatePreheat

	case StatePreheat:
		if temp >= preheatEarlyCookTempF {
			newState = StateEarlyCook
		}

	case StateEarlyCook:
		if temp >= earlyCookPreStallTempF {
			newState = StatePreStall
		}

	case StatePreStall:
		if temp >= stallEntryTempF {
			if DetectOverride(session.Stall.Slopes, temp) {
				newState = StateStall
				session.Stall.InStall = true
				session.Stall.StallStartTempF = temp
				session.Stall.StallStartMinutes = reading.ElapsedMinutes
			} else if temp >= stallExitTempF {
				newState = StatePostStall
			}
		}

	case StateStall:
		session.Stall.StallDurationMinutes = reading.ElapsedMinutes - session.Stall.StallStartMinutes

		if temp >= stallExitTempF {
			newState = StatePostStall
			session.Stall.InStall = false
		}

	case StatePostStall:
		if temp >= target-approachingTargetDeltaF {
			newState = StateApproachingTarget
		}

	case StateApproachingTarget:
		if temp >= target {
			newState = StateDone
		}

	case StateRest:
		// REST -> DONE is driven by Finish, not by readings.

	case StateDone:
		// terminal
	}

	if newState != current {
		if transitions[current][newState] {
			session.State = newState
		} else {
			newState = current
		}
	}

	if n := len(session.Readings); n >= 2 {
		slope := Slope(session.Readings[n-2].ProbeTempF, session.Readings[n-1].ProbeTempF, elapsedDelta(session.Readings[n-2], session.Readings[n-1]))
		session.Stall.Slopes = appendSlope(session.Stall.Slopes, slope)
	}

	return session.State
}

// elapsedDelta returns the elapsed-minute gap between two readings, falling
// back to 1 minute if the host didn't advance ElapsedMinutes (the spec
// assumes ~1-minute reading cadence).
func elapsedDelta(prev, cur ProbeReading) float64 {
	d := cur.ElapsedMinutes - prev.ElapsedMinutes
	if d <= 0 {
		return 1
	}

	return d
}

// Finish forces the session into StateDone from any state, for manual
// "pulled and resting" / "serve now" completions.
func Finish(session *Session) State {
	session.State = StateDone

	return session.State
}

// EnterRest forces the session into StateRest, from which only Finish can
// move it to StateDone; Advance leaves a resting session's state unchanged.
func EnterRest(session *Session) State {
	session.State = StateRest

	return session.State
}
