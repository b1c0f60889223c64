package pitmaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoilingPointAtSeaLevel(t *testing.T) {
	assert.Equal(t, 212.0, BoilingPointF(0))
}

func TestBoilingPointMonotonic(t *testing.T) {
	assert.Greater(t, BoilingPointF(0), BoilingPointF(5000))
	assert.Equal(t, 212.0-7.5, BoilingPointF(5000))
}
