// Package wrap describes the tradeoffs of the meat-wrap intervention: foil,
// butcher paper, or a foil boat, each trading bark for a faster trip through
// the stall.
package wrap

import "endobit.io/pitmaster"

// Tradeoff is a user-facing description of a wrap choice.
type Tradeoff struct {
	Wrap   pitmaster.Wrap
	Title  string
	Pros   string
	Cons   string
	Effect string
}

var tradeoffs = map[pitmaster.Wrap]Tradeoff{
	pitmaster.WrapNone: {
		Wrap:   pitmaster.WrapNone,
		Title:  "No Wrap",
		Pros:   "Maximum bark development, most traditional flavor",
		Cons:   "Longest stall duration, most variable cook time",
		Effect: "No change to cook time estimate",
	},
	pitmaster.WrapFoil: {
		Wrap:   pitmaster.WrapFoil,
		Title:  "Aluminum Foil (Texas Crutch)",
		Pros:   "Fastest through stall, most moisture retention",
		Cons:   "Softer bark, can get mushy texture",
		Effect: "Reduces remaining cook time by ~30-40%",
	},
	pitmaster.WrapButcherPaper: {
		Wrap:   pitmaster.WrapButcherPaper,
		Title:  "Butcher Paper",
		Pros:   "Good bark retention, breathable, balanced moisture",
		Cons:   "Slower than foil, paper can tear",
		Effect: "Reduces remaining cook time by ~15-25%",
	},
	pitmaster.WrapFoilBoat: {
		Wrap:   pitmaster.WrapFoilBoat,
		Title:  "Foil Boat",
		Pros:   "Protects bottom, collects juices, decent bark on top",
		Cons:   "Less stall protection than full wrap",
		Effect: "Reduces remaining cook time by ~10-15%",
	},
}

// stallEntryF and stallExitF bound the zone in which wrapping is worth
// suggesting; outside it the meat isn't stalling yet or already broke through.
const (
	stallEntryF         = 150.0
	stallExitF          = 175.0
	suggestAfterMinutes = 30.0
)

// GetTradeoff returns the user-facing tradeoff description for w, falling
// back to the no-wrap description for an unrecognized value.
func GetTradeoff(w pitmaster.Wrap) Tradeoff {
	if t, ok := tradeoffs[w]; ok {
		return t
	}

	return tradeoffs[pitmaster.WrapNone]
}

// ShouldSuggest reports whether the host should prompt the cook to wrap,
// given the current probe temperature and how long the stall has run.
func ShouldSuggest(currentTempF, stallDurationMinutes float64, isWrapped bool) bool {
	if isWrapped {
		return false
	}

	if currentTempF < stallEntryF || currentTempF > stallExitF {
		return false
	}

	return stallDurationMinutes >= suggestAfterMinutes
}
