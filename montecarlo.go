package pitmaster

import (
	"context"
	"math"

	xrand "golang.org/x/exp/rand"
)

// DefaultIterations is the iteration count used for the first prediction of
// a cook, before enough readings have accumulated to justify the full
// count.
const DefaultIterations = 1000

// FullIterations is the iteration count used for steady-state predictions.
const FullIterations = 5000

// defaultHorizonMinutes bounds how far into the future a single kernel run
// is simulated.
const defaultHorizonMinutes = 1800

// minRemainingMinutes floors how small the simulated horizon can shrink to
// as a cook approaches the 1800-minute ceiling.
const minRemainingMinutes = 60

// convergenceFraction is the minimum fraction of iterations that must
// finish within the horizon for a normal (non-very_low) confidence tier to
// be considered.
const convergenceFraction = 0.5

// Predict runs the Monte Carlo driver for session using nIterations kernel
// invocations. It is pure: session is read, never mutated. If seed is nil,
// a fresh entropy-derived seed is used; the same session and seed always
// produce the same percentiles.
//
// If ctx is cancelled before completion, Predict returns a Result with
// Cancelled set to true and all other fields zeroed; the host should treat
// this as a distinct outcome, not a successful prediction.
func Predict(ctx context.Context, session *Session, nIterations int, seed *uint64) Result {
	if nIterations <= 0 {
		nIterations = FullIterations
	}

	s := entropySeed()
	if seed != nil {
		s = *seed
	}

	src := xrand.NewSource(s)

	currentTemp := 40.0
	elapsed := 0.0

	if last, ok := session.LastReading(); ok {
		currentTemp = last.ProbeTempF
		elapsed = last.ElapsedMinutes
	}

	maxRemaining := defaultHorizonMinutes - int(math.Floor(elapsed))
	if maxRemaining < minRemainingMinutes {
		maxRemaining = minRemainingMinutes
	}

	diffusivities := sampleDiffusivities(session.Cut, nIterations, src)
	noise := sampleSmokerNoise(nIterations, maxRemaining, equipmentVarianceF(session), src)

	windFactors := make([]float64, nIterations)
	humidityFactors := make([]float64, nIterations)

	for i := range windFactors {
		windFactors[i] = 1.0
		humidityFactors[i] = 1.0
	}

	if session.Weather != nil {
		windMean := math.Max(0.5, 1+0.02*(session.Weather.WindSpeedMPH-5))
		windFactors = sampleClampedFactors(nIterations, windMean, 0.1, 0.3, 2.0, src)

		humidityMean := math.Max(0.5, 1+0.005*(session.Weather.HumidityPct-50))
		humidityFactors = sampleClampedFactors(nIterations, humidityMean, 0.05, 0.3, 2.0, src)
	}

	kernel := NewKernel()
	finishTimes := make([]float64, 0, nIterations)

	for i := 0; i < nIterations; i++ {
		if ctx != nil && i%64 == 0 {
			select {
			case <-ctx.Done():
				return Result{Cancelled: true}
			default:
			}
		}

		out := kernel.Solve(KernelInput{
			ThicknessInches: session.ThicknessInches,
			SmokerSetpointF: session.SmokerSetpointF,
			InitialTempF:    currentTemp,
			TargetF:         session.TargetF,
			DiffusivityMM2S: diffusivities[i],
			WrapType:        session.WrapType,
			WrapEvent:       session.WrapEvent,
			AltitudeFt:      session.AltitudeFt,
			Noise:           noise[i],
			WindFactor:      windFactors[i],
			HumidityFactor:  humidityFactors[i],
			DtMinutesBound:  1.0,
			MaxMinutes:      maxRemaining,
		})

		if !math.IsInf(out.FinishMinutes, 1) {
			finishTimes = append(finishTimes, out.FinishMinutes+elapsed)
		}
	}

	result := aggregate(finishTimes, nIterations, maxRemaining, elapsed, len(session.Readings))
	result.StallProbability = round3(StallProbability(currentTemp))
	result.CurrentState = session.State

	return result
}

// aggregate turns the finite finish times from a Monte Carlo run into a
// Result, following the convergence-failure rule in spec §4.4/§7.
func aggregate(finishTimes []float64, nIterations, maxRemaining int, elapsed float64, readingsCount int) Result {
	horizon := float64(maxRemaining) + elapsed

	if float64(len(finishTimes)) >= convergenceFraction*float64(nIterations) {
		p10, p50, p90 := percentiles(append([]float64(nil), finishTimes...))
		spread := p90 - p10

		return Result{
			P10Minutes:    round1(p10),
			P50Minutes:    round1(p50),
			P90Minutes:    round1(p90),
			Confidence:    rawConfidence(spread, readingsCount),
			ReadingsCount: readingsCount,
		}
	}

	if len(finishTimes) > 0 {
		p10, p50, _ := percentiles(append([]float64(nil), finishTimes...))

		return Result{
			P10Minutes:    round1(p10),
			P50Minutes:    round1(p50),
			P90Minutes:    round1(horizon),
			Confidence:    TierVeryLow,
			ReadingsCount: readingsCount,
		}
	}

	return Result{
		P10Minutes:    round1(horizon),
		P50Minutes:    round1(horizon),
		P90Minutes:    round1(horizon),
		Confidence:    TierVeryLow,
		ReadingsCount: readingsCount,
	}
}
