package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"endobit.io/pitmaster"
)

func TestComputeWorksBackwardFromDinner(t *testing.T) {
	dinner, err := time.Parse(time.RFC3339, "2024-12-25T17:00:00-06:00")
	require.NoError(t, err)

	prediction := pitmaster.Result{P90Minutes: 600}

	plan := Compute(dinner, prediction, DefaultPreheatMinutes, DefaultRestMinutes)

	assert.Equal(t, dinner.Add(-630*time.Minute), plan.MeatOnTime)
	assert.Equal(t, dinner.Add(-660*time.Minute), plan.FireStartTime)
	assert.Equal(t, 600.0, plan.EstimatedCookMinutesP90)
}

func TestComputeHonorsCustomPreheatAndRest(t *testing.T) {
	dinner, err := time.Parse(time.RFC3339, "2024-12-25T17:00:00-06:00")
	require.NoError(t, err)

	prediction := pitmaster.Result{P90Minutes: 500}
	plan := Compute(dinner, prediction, 45, 20)

	assert.Equal(t, dinner.Add(-520*time.Minute), plan.MeatOnTime)
	assert.Equal(t, dinner.Add(-565*time.Minute), plan.FireStartTime)
}
