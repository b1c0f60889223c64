package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"endobit.io/pitmaster"
)

func TestGetKnownPreset(t *testing.T) {
	p := Get(pitmaster.EquipmentPellet)
	assert.Equal(t, "Pellet Grill", p.Name)
	assert.Equal(t, 5.0, p.TempVarianceF)
}

func TestGetUnknownFallsBackToCustom(t *testing.T) {
	p := Get(pitmaster.Equipment(99))
	assert.Equal(t, "Custom / Other", p.Name)
}

func TestAllReturnsOnePerEquipmentType(t *testing.T) {
	all := All()
	assert.Len(t, all, len(pitmaster.EquipmentValues()))
}

func TestKamadoHasHighestInsulation(t *testing.T) {
	kamado := Get(pitmaster.EquipmentKamado)
	for _, p := range All() {
		assert.LessOrEqual(t, p.InsulationFactor, kamado.InsulationFactor)
	}
}
