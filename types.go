// Package pitmaster implements the coupled numerical core of a barbecue
// cook-time predictor: a 1-D thermal diffusion kernel, a stochastic stall
// model, a Monte Carlo driver, a cook state machine, and a prediction trust
// evaluator. The package does no I/O; callers own sessions, persistence,
// weather acquisition, and transport.
package pitmaster

import "time"

//go:generate go tool enumer -type Cut -linecomment

// Cut identifies the meat cut being cooked. Each cut has a calibrated base
// thermal diffusivity used by the physics kernel.
type Cut int

const (
	CutBrisket       Cut = iota // brisket
	CutPorkButt                 // pork_butt
	CutPorkRibs                 // pork_ribs
	CutBeefRibs                 // beef_ribs
	CutChickenWhole             // chicken_whole
	CutTurkeyBreast             // turkey_breast
	CutLegOfLamb                // leg_of_lamb
)

//go:generate go tool enumer -type Wrap -linecomment

// Wrap identifies a wrap intervention applied mid-cook. Wrapping reduces
// surface evaporative cooling, which shortens the stall.
type Wrap int

const (
	WrapNone         Wrap = iota // none
	WrapFoil                     // foil
	WrapButcherPaper             // butcher_paper
	WrapFoilBoat                 // foil_boat
)

//go:generate go tool enumer -type Equipment -linecomment

// Equipment identifies the smoker hardware. It determines the standard
// deviation of smoker-temperature noise sampled by the Monte Carlo driver.
type Equipment int

const (
	EquipmentOffset Equipment = iota // offset
	EquipmentPellet                  // pellet
	EquipmentKamado                  // kamado
	EquipmentWSM                     // wsm
	EquipmentCustom                  // custom
)

//go:generate go tool enumer -type Tier -linecomment

// Tier is the confidence tier attached to a prediction, ordered from most to
// least trustworthy.
type Tier int

const (
	TierHigh     Tier = iota // high
	TierModerate             // moderate
	TierLow                  // low
	TierVeryLow              // very_low
)

//go:generate go tool enumer -type State -linecomment

// State is a cook's position in the nine-state cook lifecycle.
type State int

const (
	StateSetup              State = iota // setup
	StatePreheat                         // preheat
	StateEarlyCook                       // early_cook
	StatePreStall                        // pre_stall
	StateStall                           // stall
	StatePostStall                       // post_stall
	StateApproachingTarget               // approaching_target
	StateRest                            // rest
	StateDone                            // done
)

// transitions enumerates the only state changes Advance is permitted to
// make. Any other attempted transition is rejected and the state is left
// unchanged.
var transitions = map[State]map[State]bool{
	StateSetup:             {StatePreheat: true},
	StatePreheat:           {StateEarlyCook: true},
	StateEarlyCook:         {StatePreStall: true},
	StatePreStall:          {StateStall: true, StatePostStall: true},
	StateStall:             {StatePostStall: true},
	StatePostStall:         {StateApproachingTarget: true},
	StateApproachingTarget: {StateRest: true, StateDone: true},
	StateRest:              {StateDone: true},
	StateDone:              {},
}

// ProbeReading is one sample from the meat probe. ElapsedMinutes must be
// non-decreasing within a session; ProbeTempF must be in [32, 212].
type ProbeReading struct {
	Timestamp      time.Time
	ElapsedMinutes float64
	ProbeTempF     float64
	SmokerTempF    *float64 // optional
}

// StallState tracks whether the cook is currently believed to be in the
// stall plateau, along with a bounded history of recent temperature slopes
// (°F/min), newest last.
type StallState struct {
	InStall              bool
	StallStartTempF      float64
	StallStartMinutes    float64
	StallDurationMinutes float64
	Slopes               []float64
}

// maxSlopeHistory bounds the slope queue so long cooks don't grow it
// unbounded; DetectOverride only ever looks at the most recent 10.
const maxSlopeHistory = 60

// WeatherSnapshot is ambient weather at the smoker's location. All fields
// must be finite; the core never receives NaN.
type WeatherSnapshot struct {
	AmbientTempF float64
	WindSpeedMPH float64
	HumidityPct  float64
}

// WrapEvent records that a wrap intervention occurred, and at what probe
// temperature, if known.
type WrapEvent struct {
	WrapTempF *float64
}

// Result is the outcome of a Monte Carlo prediction run. Invariant:
// P10Minutes <= P50Minutes <= P90Minutes.
type Result struct {
	P10Minutes       float64
	P50Minutes       float64
	P90Minutes       float64
	Confidence       Tier
	CurrentState     State
	StallProbability float64
	ReadingsCount    int
	Cancelled        bool
}

// Session is the view of a cook the core consumes. It is constructed and
// owned by an external layer (persistence, HTTP handlers, the CLI); the
// core mutates only State, Stall, and the readings' derived slope history.
type Session struct {
	Cut             Cut
	ThicknessInches float64
	Equipment       Equipment
	SmokerSetpointF float64
	TargetF         float64
	AltitudeFt      float64
	WrapType        Wrap
	WrapEvent       *WrapEvent
	Weather         *WeatherSnapshot
	Readings        []ProbeReading
	State           State
	Stall           StallState

	// EquipmentVarianceF overrides the default equipment noise standard
	// deviation (°F) for this session. Zero means "use the default table".
	EquipmentVarianceF float64
}

// LastReading returns the most recent probe reading and true, or the zero
// value and false if no readings have been recorded.
func (s *Session) LastReading() (ProbeReading, bool) {
	if len(s.Readings) == 0 {
		return ProbeReading{}, false
	}

	return s.Readings[len(s.Readings)-1], true
}
