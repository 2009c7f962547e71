package sail

import "math"

// Named constants exposed at the package boundary (spec.md §6). Units are
// explicit in each comment; the whole package works in AU / day / radian.
const (
	// MuSun is the Sun's gravitational parameter in AU^3/day^2.
	MuSun = 2.9591220828559093e-4

	// J2000 is the Julian date of the J2000.0 epoch.
	J2000 = 2451545.0

	// AUInKm is the number of kilometers in one astronomical unit.
	AUInKm = 149597870.7

	// SolarPressureAt1AU is the solar radiation pressure at 1 AU, in N/m^2.
	SolarPressureAt1AU = 4.56e-6

	// ExtremeEccentricityThreshold marks orbits whose elements are no
	// longer numerically meaningful for propagation (§4.F).
	ExtremeEccentricityThreshold = 50.0

	// TrajectoryCacheTTLMillis is the trajectory cache's time-to-live.
	TrajectoryCacheTTLMillis = 500

	// MaxHeliocentricRadius truncates trajectories that escape too far (AU).
	MaxHeliocentricRadius = 10.0

	// MinHeliocentricRadius truncates trajectories that approach the Sun
	// too closely (AU); also used as the radial clamp floor for P(r).
	MinHeliocentricRadius = 0.01

	// maxIntersections bounds the encounter-marker list (§3, Intersection).
	maxIntersections = 20

	// eccentricityNudgeLow/High bracket the parabolic singularity; any `e`
	// inside this band is nudged to the hyperbolic side (§4.A, §4.B).
	eccentricityNudgeLow  = 0.9999
	eccentricityNudgeHigh = 1.0001

	// circularEccentricityThreshold below which an orbit is classified
	// circular for the purposes of anomaly shortcuts (§4.A).
	circularEccentricityThreshold = 1e-6

	// lowInclinationThreshold (~0.5 degrees) below which the crossing
	// detector uses the radial-shell method directly (§4.G).
	lowInclinationThreshold = 0.0087

	// minSemiLatusRectum floors `p` to avoid the velocity singularity near
	// parabolic orbits (§4.A).
	minSemiLatusRectum = 1e-12

	// soiExitHysteresis is the multiplier applied to the SOI radius on
	// exit, to prevent boundary oscillation (§4.E).
	soiExitHysteresis = 1.01

	// soiExitTruncationFactor is the looser bound the predictor uses when
	// tagging a SOI_EXIT sample (§4.F): d > soiRadius*1.1.
	soiExitTruncationFactor = 1.1

	// sunApproachFactor multiplies MinHeliocentricRadius to get the
	// predictor's SUN_APPROACH stopping distance (§4.F): 2*0.01 AU.
	sunApproachFactor = 2.0

	// minSemiMajorAxisInsideSOI and minSemiMajorAxisOutsideSOI enforce a
	// floor on |a| during state->elements inversion (§4.B).
	minSemiMajorAxisInsideSOI  = 1e-6
	minSemiMajorAxisOutsideSOI = 1e-4

	// planningOffsetMaxDays bounds the planning-mode sandbox offset (§4.H).
	planningOffsetMaxDays = 730.0

	// yawPitchLimit bounds sail yaw/pitch input (§6).
	yawPitchLimit = math.Pi / 2

	// deploymentMin/Max bound sail deployment percentage input (§6).
	deploymentMin = 0.0
	deploymentMax = 100.0

	// sailCountMin/Max bound the sail-count input (§6).
	sailCountMin = 1
	sailCountMax = 20

	// deg2rad and rad2deg mirror smd's math.go angle conversions.
	deg2rad = math.Pi / 180
	rad2deg = 1 / deg2rad
)

// SpeedPreset names a clock speed (days advanced per simulation tick).
type SpeedPreset string

// Speed presets available to the host's input surface (§6).
const (
	SpeedPaused    SpeedPreset = "paused"
	SpeedRealtime  SpeedPreset = "realtime"
	SpeedHour      SpeedPreset = "hour"
	SpeedDay       SpeedPreset = "day"
	SpeedWeek      SpeedPreset = "week"
	SpeedMonth     SpeedPreset = "month"
)

// defaultSpeedPresets maps a preset name to days advanced per tick. The
// table is fixed; config (component K) only chooses which preset the clock
// starts with.
var defaultSpeedPresets = map[SpeedPreset]float64{
	SpeedPaused:   0,
	SpeedRealtime: 1.0 / 86400.0,
	SpeedHour:     1.0 / 24.0,
	SpeedDay:      1.0,
	SpeedWeek:     7.0,
	SpeedMonth:    30.0,
}
