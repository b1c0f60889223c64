package pitmaster

// BoilingPointF returns the boiling point of water, in Fahrenheit, at the
// given altitude in feet. It is monotonically non-increasing in altitude
// and used as an upper clamp on every simulated slab node.
func BoilingPointF(altitudeFt float64) float64 {
	return 212.0 - 1.5*altitudeFt/1000.0
}
