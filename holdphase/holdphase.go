// Package holdphase models what happens after the meat comes off the
// smoker: a short carryover rise, then Newton's Law of Cooling decay toward
// the rest environment's ambient temperature.
package holdphase

import "math"

// Constants tuned for a wrapped brisket resting in an insulated cooler.
const (
	carryoverRiseF  = 7.0
	coolingConstant = 0.005 // 1/min
	restAmbientF    = 150.0
	minRestMinutes  = 30.0
	maxRestMinutes  = 120.0
	servingTempF    = 165.0
)

// Result summarizes the rest phase following pull.
type Result struct {
	CarryoverPeakF           float64
	TimeToServingTempMinutes float64
	RecommendedRestMinutes   float64
}

// Calculate estimates carryover peak and time-to-serving-temperature for
// meat pulled at pullTempF into a rest environment at ambientTempF.
// Unwrapped meat loses heat twice as fast as wrapped.
func Calculate(pullTempF, ambientTempF, servingTarget float64, isWrapped bool) Result {
	if ambientTempF == 0 {
		ambientTempF = restAmbientF
	}

	if servingTarget == 0 {
		servingTarget = servingTempF
	}

	peak := pullTempF + carryoverRiseF

	k := coolingConstant
	if !isWrapped {
		k *= 2.0
	}

	var timeToServing float64

	switch {
	case peak <= servingTarget:
		timeToServing = 0.0
	case servingTarget <= ambientTempF:
		timeToServing = math.Inf(1)
	default:
		ratio := (servingTarget - ambientTempF) / (peak - ambientTempF)
		if ratio <= 0 || ratio >= 1 {
			timeToServing = 0.0
		} else {
			timeToServing = -math.Log(ratio) / k
		}
	}

	recommended := math.Max(minRestMinutes, math.Min(timeToServing, maxRestMinutes))

	return Result{
		CarryoverPeakF:           round1(peak),
		TimeToServingTempMinutes: round1(timeToServing),
		RecommendedRestMinutes:   round1(recommended),
	}
}

func round1(v float64) float64 {
	if math.IsInf(v, 1) {
		return v
	}

	return float64(int(v*10+0.5)) / 10
}
