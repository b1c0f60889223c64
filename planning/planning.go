// Package planning works backward from a target dinner time to the fire
// start and meat-on times, using a prediction's conservative P90 estimate.
package planning

import (
	"time"

	"endobit.io/pitmaster"
)

// Default timing assumptions used when a host doesn't override them.
const (
	DefaultPreheatMinutes = 30.0
	DefaultRestMinutes    = 30.0
)

// Plan is the backward-planned timeline: fire_start -> preheat -> meat_on ->
// cook (P90) -> rest -> dinner.
type Plan struct {
	DinnerTime              time.Time
	EstimatedCookMinutesP90 float64
	RestMinutes             float64
	FireStartTime           time.Time
	MeatOnTime              time.Time
	PreheatMinutes          float64
}

// Compute derives a Plan from a dinner time and a prediction, working
// backward through rest and preheat to a fire-start time.
func Compute(dinnerTime time.Time, prediction pitmaster.Result, preheatMinutes, restMinutes float64) Plan {
	totalBeforeDinner := prediction.P90Minutes + restMinutes
	meatOnTime := dinnerTime.Add(-time.Duration(totalBeforeDinner * float64(time.Minute)))
	fireStartTime := meatOnTime.Add(-time.Duration(preheatMinutes * float64(time.Minute)))

	return Plan{
		DinnerTime:              dinnerTime,
		EstimatedCookMinutesP90: round1(prediction.P90Minutes),
		RestMinutes:             restMinutes,
		FireStartTime:           fireStartTime,
		MeatOnTime:              meatOnTime,
		PreheatMinutes:          preheatMinutes,
	}
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
