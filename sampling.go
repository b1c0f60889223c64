package pitmaster

import (
	"math"
	"math/rand/v2"
	"sort"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// diffusivityCV is the coefficient of variation for biological variability
// in thermal diffusivity between individual cuts of the same type.
const diffusivityCV = 0.08

// sampleDiffusivities draws n log-normal diffusivity samples (mm²/s) for
// cut, moment-matched so the distribution's mean is BaseDiffusivity(cut)
// and its coefficient of variation is diffusivityCV.
func sampleDiffusivities(cut Cut, n int, src xrand.Source) []float64 {
	mean := BaseDiffusivity(cut)
	sigma := mean * diffusivityCV

	muLn := math.Log(mean * mean / math.Sqrt(sigma*sigma+mean*mean))
	sigmaLn := math.Sqrt(math.Log(1 + (sigma/mean)*(sigma/mean)))

	dist := distuv.LogNormal{Mu: muLn, Sigma: sigmaLn, Src: src}

	out := make([]float64, n)
	for i := range out {
		out[i] = dist.Rand()
	}

	return out
}

// sampleSmokerNoise draws an nIterations x nSteps matrix of i.i.d.
// zero-mean Gaussian smoker-temperature noise (°F) with the given standard
// deviation.
func sampleSmokerNoise(nIterations, nSteps int, stddev float64, src xrand.Source) [][]float64 {
	dist := distuv.Normal{Mu: 0, Sigma: stddev, Src: src}

	out := make([][]float64, nIterations)
	for i := range out {
		row := make([]float64, nSteps)
		for j := range row {
			row[j] = dist.Rand()
		}

		out[i] = row
	}

	return out
}

// sampleClampedFactors draws n Normal(mean, sigma) samples clamped to
// [lo, hi] — used for both the wind and humidity multiplicative factors.
func sampleClampedFactors(n int, mean, sigma, lo, hi float64, src xrand.Source) []float64 {
	dist := distuv.Normal{Mu: mean, Sigma: sigma, Src: src}

	out := make([]float64, n)
	for i := range out {
		out[i] = clamp(dist.Rand(), lo, hi)
	}

	return out
}

// percentiles returns the p10/p50/p90 of values using gonum's empirical
// quantile estimator. values is sorted in place.
func percentiles(values []float64) (p10, p50, p90 float64) {
	sort.Float64s(values)

	p10 = stat.Quantile(0.10, stat.Empirical, values, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, values, nil)

	return p10, p50, p90
}

// entropySeed returns a fresh, process-entropy-derived seed for use when
// the caller doesn't supply one.
func entropySeed() uint64 {
	return rand.Uint64()
}

func round1(v float64) float64 {
	if math.IsInf(v, 0) {
		return v
	}

	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
