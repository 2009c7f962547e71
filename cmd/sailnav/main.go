// Command sailnav runs a headless tick loop over the navigation core: each
// tick advances the clock, resolves the ship's ephemeris-backed position,
// applies sail thrust, checks SOI transitions, refreshes the predicted
// trajectory, and reports any predicted body crossings. It exists to
// exercise the package end to end the way smd's cmd/mission does for a
// full propagation, without a graphical host attached.
package main

import (
	"flag"
	"fmt"
	"time"

	sail "github.com/MattCam2007/sailship-sub002"
	"github.com/MattCam2007/sailship-sub002/ephemeris"
	"github.com/MattCam2007/sailship-sub002/persistence"
)

var (
	ticks      int
	speed      string
	massKg     float64
	sailAreaM2 float64
)

func init() {
	flag.IntVar(&ticks, "ticks", 50, "number of simulation ticks to run")
	flag.StringVar(&speed, "speed", "", "clock speed preset (defaults to the config's clock.default_speed)")
	flag.Float64Var(&massKg, "mass", 14.0, "ship mass in kilograms")
	flag.Float64Var(&sailAreaM2, "sail-area", 850.0, "deployed sail area in square meters")
}

func main() {
	flag.Parse()

	diag := sail.NewDiagnostics("sailnav")
	cfg := sail.LoadConfig(diag)

	var oracle sail.EphemerisOracle = sail.NoEphemeris
	if cfg.EphemerisMode == "meeus" {
		oracle = ephemeris.New()
	}

	filter, err := persistence.LoadBodyFilter(cfg.BodyFilterPath)
	if err != nil {
		diag.Warn("msg", "could not load body filter, tracking all bodies", "err", err)
	}
	bodies := filterBodies(sail.DefaultBodies, filter)

	ship := &sail.Ship{
		Elements: sail.NewElements(1.01, 0.02, 0.05, 0.0, 0.0, 0.0, sail.J2000, sail.MuSun),
		MassKg:   massKg,
		Sail: sail.SailState{
			AreaM2:        sailAreaM2,
			Reflectivity:  0.88,
			DeploymentPct: 100.0,
			ConditionPct:  100.0,
			SailCount:     4,
		},
	}
	ship.Sail.ClampInputs()

	clock := sail.NewClock(sail.J2000)
	clock.MaxSandboxOffsetDays = cfg.PlanningOffsetMaxDays

	effectiveSpeed := cfg.DefaultSpeed
	if speed != "" {
		effectiveSpeed = sail.SpeedPreset(speed)
	}
	if !clock.SetSpeed(effectiveSpeed) {
		diag.Warn("msg", "unknown speed preset, keeping realtime", "value", effectiveSpeed)
	}

	predictor := sail.NewPredictor(sail.NewDiagnostics("sailnav.predictor"))

	for i := 0; i < ticks; i++ {
		jd := clock.EffectiveJD()

		state := ship.CartesianState()
		accel := sail.ThrustAcceleration(state.R, state.V, ship.MassKg, ship.Sail)
		ship.Elements = sail.ApplyThrust(ship.Elements, accel, clock.TimeScale, jd, diag)

		if !ship.SOI.IsInSOI {
			if entry, ok := sail.CheckSOIEntry(sail.Position(ship.Elements, jd), bodies, jd, oracle, diag); ok {
				sail.TransitionToSOI(ship, entry.Body, jd, oracle, diag)
				diag.Info("msg", "entered SOI", "body", entry.Body.Name, "jd", jd)
			}
		} else if parent, ok := sail.CelestialObjectFromName(ship.SOI.ParentBody); ok {
			if sail.CheckSOIExit(sail.Position(ship.Elements, jd), parent) {
				sail.TransitionFromSOI(ship, parent, jd, oracle, diag)
				diag.Info("msg", "exited SOI", "body", parent.Name, "jd", jd)
			}
		}

		traj := predictor.Predict(sail.PredictInput{
			Elements:     ship.Elements,
			Sail:         ship.Sail,
			MassKg:       ship.MassKg,
			StartTime:    jd,
			DurationDays: 365,
			Steps:        cfg.TrajectorySteps,
			SOI:          ship.SOI,
			ExtremeFlyby: ship.ExtremeFlyby,
			Bodies:       bodies,
			Oracle:       oracle,
		}, time.Now())

		hits := sail.DetectIntersections(traj, bodies, jd, ship.SOI.ParentBody, sail.PrecisionForZoom(1), oracle, diag)
		for _, hit := range hits {
			fmt.Printf("tick %d: predicted crossing of %s at JD %.4f\n", i, hit.BodyName, hit.Time)
		}

		clock.Advance()
	}
}

func filterBodies(all []sail.CelestialObject, filter persistence.BodyFilter) []sail.CelestialObject {
	if len(filter.Bodies) == 0 {
		return all
	}
	kept := make([]sail.CelestialObject, 0, len(all))
	for _, b := range all {
		if filter.Contains(b.Name) {
			kept = append(kept, b)
		}
	}
	return kept
}
