// Package equipment holds the preset profiles for each smoker type: not
// just the temperature-variance figure the core engine consumes, but the
// fuller profile a host UI would show when a cook picks their rig.
package equipment

import "endobit.io/pitmaster"

// Profile describes one smoker type's thermal behavior.
type Profile struct {
	Type               pitmaster.Equipment
	Name               string
	TempVarianceF      float64
	RecoveryTimeMin    float64
	TempDropOnLidOpenF float64
	InsulationFactor   float64
}

var presets = map[pitmaster.Equipment]Profile{
	pitmaster.EquipmentOffset: {
		Type:               pitmaster.EquipmentOffset,
		Name:               "Offset Smoker",
		TempVarianceF:      15.0,
		RecoveryTimeMin:    8.0,
		TempDropOnLidOpenF: 25.0,
		InsulationFactor:   0.8,
	},
	pitmaster.EquipmentPellet: {
		Type:               pitmaster.EquipmentPellet,
		Name:               "Pellet Grill",
		TempVarianceF:      5.0,
		RecoveryTimeMin:    3.0,
		TempDropOnLidOpenF: 15.0,
		InsulationFactor:   1.0,
	},
	pitmaster.EquipmentKamado: {
		Type:               pitmaster.EquipmentKamado,
		Name:               "Kamado (Big Green Egg / Kamado Joe)",
		TempVarianceF:      8.0,
		RecoveryTimeMin:    5.0,
		TempDropOnLidOpenF: 20.0,
		InsulationFactor:   1.3,
	},
	pitmaster.EquipmentWSM: {
		Type:               pitmaster.EquipmentWSM,
		Name:               "Weber Smokey Mountain",
		TempVarianceF:      10.0,
		RecoveryTimeMin:    6.0,
		TempDropOnLidOpenF: 20.0,
		InsulationFactor:   1.0,
	},
	pitmaster.EquipmentCustom: {
		Type:               pitmaster.EquipmentCustom,
		Name:               "Custom / Other",
		TempVarianceF:      12.0,
		RecoveryTimeMin:    5.0,
		TempDropOnLidOpenF: 20.0,
		InsulationFactor:   1.0,
	},
}

// All returns every preset profile, in catalog order.
func All() []Profile {
	order := pitmaster.EquipmentValues()
	out := make([]Profile, 0, len(order))

	for _, e := range order {
		out = append(out, presets[e])
	}

	return out
}

// Get returns the preset for e, falling back to the custom profile for an
// unrecognized value.
func Get(e pitmaster.Equipment) Profile {
	if p, ok := presets[e]; ok {
		return p
	}

	return presets[pitmaster.EquipmentCustom]
}
