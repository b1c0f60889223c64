package pitmaster

// baseDiffusivity is the calibrated thermal diffusivity (mm²/s) per cut.
// Values are tuned so a 5-inch brisket at 250°F finishes in ~10-14 hours.
var baseDiffusivity = map[Cut]float64{
	CutBrisket:      0.130,
	CutPorkButt:     0.125,
	CutPorkRibs:     0.140,
	CutBeefRibs:     0.135,
	CutChickenWhole: 0.145,
	CutTurkeyBreast: 0.140,
	CutLegOfLamb:    0.132,
}

// defaultCutDiffusivity is used when a cut isn't found in the table.
const defaultCutDiffusivity = 0.130

// BaseDiffusivity returns the calibrated thermal diffusivity (mm²/s) for cut.
func BaseDiffusivity(cut Cut) float64 {
	if v, ok := baseDiffusivity[cut]; ok {
		return v
	}

	return defaultCutDiffusivity
}

// wrapEvapReduction is the fraction by which each wrap type reduces surface
// evaporative cooling.
var wrapEvapReduction = map[Wrap]float64{
	WrapNone:         0.00,
	WrapFoil:         0.95,
	WrapButcherPaper: 0.60,
	WrapFoilBoat:     0.45,
}

// EvapReduction returns the evaporative-cooling reduction factor for w.
func EvapReduction(w Wrap) float64 {
	if v, ok := wrapEvapReduction[w]; ok {
		return v
	}

	return 0.0
}

// defaultEquipmentVariance is the standard deviation (°F) of smoker
// temperature noise per equipment type. This is the core's built-in
// default for the "equipment catalog" collaborator described in spec §6;
// a host may override per-session via Session.EquipmentVarianceF, or
// provide a richer catalog (see the sibling equipment package).
var defaultEquipmentVariance = map[Equipment]float64{
	EquipmentOffset: 15.0,
	EquipmentPellet: 5.0,
	EquipmentKamado: 8.0,
	EquipmentWSM:    10.0,
	EquipmentCustom: 12.0,
}

// unknownEquipmentVariance is returned for an equipment value outside the
// known table, per spec §6 ("defaults to 12.0 for unknown").
const unknownEquipmentVariance = 12.0

// DefaultEquipmentVariance returns the default smoker-temperature noise
// standard deviation (°F) for e.
func DefaultEquipmentVariance(e Equipment) float64 {
	if v, ok := defaultEquipmentVariance[e]; ok {
		return v
	}

	return unknownEquipmentVariance
}

// equipmentVarianceF resolves the variance to use for a session: an
// explicit per-session override if set, else the default table.
func equipmentVarianceF(s *Session) float64 {
	if s.EquipmentVarianceF > 0 {
		return s.EquipmentVarianceF
	}

	return DefaultEquipmentVariance(s.Equipment)
}
