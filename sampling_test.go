package pitmaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	xrand "golang.org/x/exp/rand"
)

func TestSampleDiffusivitiesMeanNearBase(t *testing.T) {
	src := xrand.NewSource(1)
	samples := sampleDiffusivities(CutBrisket, 5000, src)

	var sum float64
	for _, v := range samples {
		assert.Greater(t, v, 0.0, "log-normal diffusivity samples are always positive")
		sum += v
	}

	mean := sum / float64(len(samples))
	assert.InDelta(t, BaseDiffusivity(CutBrisket), mean, 0.01)
}

func TestSampleSmokerNoiseShape(t *testing.T) {
	src := xrand.NewSource(2)
	noise := sampleSmokerNoise(10, 30, 5.0, src)

	assert.Len(t, noise, 10)
	for _, row := range noise {
		assert.Len(t, row, 30)
	}
}

func TestSampleClampedFactorsStayInBounds(t *testing.T) {
	src := xrand.NewSource(3)
	factors := sampleClampedFactors(500, 1.0, 0.5, 0.3, 2.0, src)

	for _, f := range factors {
		assert.GreaterOrEqual(t, f, 0.3)
		assert.LessOrEqual(t, f, 2.0)
	}
}

func TestPercentilesOrdered(t *testing.T) {
	values := []float64{50, 10, 90, 30, 70, 20, 80, 40, 60}
	p10, p50, p90 := percentiles(values)

	assert.LessOrEqual(t, p10, p50)
	assert.LessOrEqual(t, p50, p90)
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 1.2, round1(1.24))
	assert.Equal(t, 1.3, round1(1.25))
}
