package pitmaster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baselineInput() KernelInput {
	return KernelInput{
		ThicknessInches: 5.0,
		SmokerSetpointF: 250.0,
		InitialTempF:    40.0,
		TargetF:         203.0,
		DiffusivityMM2S: 0.130,
		WrapType:        WrapNone,
		DtMinutesBound:  1.0,
		MaxMinutes:      1200,
	}
}

func TestKernelSolveReachesTarget(t *testing.T) {
	k := NewKernel()
	out := k.Solve(baselineInput())

	require.False(t, math.IsInf(out.FinishMinutes, 1), "a 250F smoker should eventually reach 203F")
	assert.Greater(t, out.FinishMinutes, 0.0)
	assert.NotEmpty(t, out.CenterHistory)
}

func TestKernelSolveInvalidInputNeverFinishes(t *testing.T) {
	k := NewKernel()

	in := baselineInput()
	in.DiffusivityMM2S = 0

	out := k.Solve(in)
	assert.True(t, math.IsInf(out.FinishMinutes, 1))

	in = baselineInput()
	in.ThicknessInches = 0
	out = k.Solve(in)
	assert.True(t, math.IsInf(out.FinishMinutes, 1))
}

func TestKernelSolveNeverExceedsBoilingPoint(t *testing.T) {
	k := NewKernel()

	in := baselineInput()
	in.MaxMinutes = 2000
	in.TargetF = 10000 // force a long run so the slab saturates near setpoint/boiling

	out := k.Solve(in)

	bp := BoilingPointF(in.AltitudeFt)
	for _, temp := range out.CenterHistory {
		assert.LessOrEqual(t, temp, bp+1e-9)
	}
}

func TestKernelSolveThickerSlabTakesLonger(t *testing.T) {
	thin := NewKernel().Solve(baselineInput())

	thick := baselineInput()
	thick.ThicknessInches = 8.0
	thickOut := NewKernel().Solve(thick)

	assert.Greater(t, thickOut.FinishMinutes, thin.FinishMinutes)
}

func TestKernelSolveFoilWrapSpeedsUpStall(t *testing.T) {
	noWrap := baselineInput()
	noWrap.MaxMinutes = 1400
	noWrapOut := NewKernel().Solve(noWrap)

	foil := noWrap
	foil.WrapType = WrapFoil
	foilOut := NewKernel().Solve(foil)

	require.False(t, math.IsInf(noWrapOut.FinishMinutes, 1))
	require.False(t, math.IsInf(foilOut.FinishMinutes, 1))
	assert.LessOrEqual(t, foilOut.FinishMinutes, noWrapOut.FinishMinutes)
}

func TestKernelBufferReuseIsStable(t *testing.T) {
	k := NewKernel()

	first := k.Solve(baselineInput())
	second := k.Solve(baselineInput())

	assert.InDelta(t, first.FinishMinutes, second.FinishMinutes, 1e-6,
		"reusing scratch buffers across calls must not leak state between runs")
}
