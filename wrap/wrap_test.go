package wrap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"endobit.io/pitmaster"
)

func TestGetTradeoffKnownWrap(t *testing.T) {
	tr := GetTradeoff(pitmaster.WrapFoil)
	assert.Equal(t, "Aluminum Foil (Texas Crutch)", tr.Title)
}

func TestGetTradeoffUnknownFallsBackToNoWrap(t *testing.T) {
	tr := GetTradeoff(pitmaster.Wrap(99))
	assert.Equal(t, "No Wrap", tr.Title)
}

func TestShouldSuggestInStallZoneAfter30Minutes(t *testing.T) {
	assert.True(t, ShouldSuggest(160, 35, false))
}

func TestShouldSuggestFalseWhenAlreadyWrapped(t *testing.T) {
	assert.False(t, ShouldSuggest(160, 35, true))
}

func TestShouldSuggestFalseOutsideStallZone(t *testing.T) {
	assert.False(t, ShouldSuggest(120, 35, false))
	assert.False(t, ShouldSuggest(190, 35, false))
}

func TestShouldSuggestFalseBeforeThirtyMinutes(t *testing.T) {
	assert.False(t, ShouldSuggest(160, 10, false))
}
