package sail

// Clock drives the Julian-date simulation clock and planning-mode
// snapshot/restore of §4.H. There is no goroutine or channel here by
// design (Design Notes §9 rejects smd's mission.go streaming-via-channels
// pattern in favor of a plain struct a single-threaded host ticks
// directly): Clock is the "avoid patchwork of scattered globals" snapshot
// value type called for in Design Notes §9, not a background worker.
type Clock struct {
	JD                   float64
	Speed                SpeedPreset
	TimeScale            float64 // days advanced per Advance() call
	Planning             bool
	SandboxOffset        float64
	MaxSandboxOffsetDays float64 // host-tunable via Config.PlanningOffsetMaxDays

	snapshot *planningSnapshot
}

// planningSnapshot is the deep copy taken on entering planning mode: every
// piece of mutable state planning can rewind (§4.H lists ship elements,
// sail state, clock, camera target; autopilot state is out of scope for
// this package and left to the host).
type planningSnapshot struct {
	JD           float64
	Speed        SpeedPreset
	TimeScale    float64
	Ship         Ship
	CameraTarget string
}

// NewClock returns a running clock starting at startJD with the realtime
// speed preset and the built-in sandbox-offset bound. Set
// MaxSandboxOffsetDays afterward (e.g. from Config.PlanningOffsetMaxDays)
// to apply a host-tuned bound instead.
func NewClock(startJD float64) *Clock {
	return &Clock{
		JD:                   startJD,
		Speed:                SpeedRealtime,
		TimeScale:            defaultSpeedPresets[SpeedRealtime],
		MaxSandboxOffsetDays: planningOffsetMaxDays,
	}
}

// SetSpeed changes the active speed preset. Changing speed is blocked
// while planning mode is active (§4.H), and reports false for an unknown
// preset instead of silently leaving TimeScale unchanged.
func (c *Clock) SetSpeed(preset SpeedPreset) bool {
	if c.Planning {
		return false
	}
	ts, ok := defaultSpeedPresets[preset]
	if !ok {
		return false
	}
	c.Speed = preset
	c.TimeScale = ts
	return true
}

// Advance steps the clock forward by TimeScale. A no-op while planning
// mode is active: the wall clock is frozen at snapshot.JD, and apparent
// time there only moves via SandboxOffset (§4.H).
func (c *Clock) Advance() {
	if c.Planning {
		return
	}
	c.JD += c.TimeScale
}

// EffectiveJD is the Julian date every other component in this package
// must use for "now": snapshot.JD + SandboxOffset while planning is
// active, otherwise the live clock (§4.H, "all consumers of current time
// must use this effective date").
func (c *Clock) EffectiveJD() float64 {
	if c.Planning && c.snapshot != nil {
		return c.snapshot.JD + c.SandboxOffset
	}
	return c.JD
}

// EnterPlanning snapshots the clock and ship, forces TimeScale to 0, and
// activates planning mode. Idempotent: a second call while already
// active is a no-op, so the original snapshot is never overwritten by a
// mid-session mutation (§4.H, "repeated entry/exit must be idempotent").
func (c *Clock) EnterPlanning(ship *Ship, cameraTarget string) {
	if c.Planning {
		return
	}
	c.snapshot = &planningSnapshot{
		JD:           c.JD,
		Speed:        c.Speed,
		TimeScale:    c.TimeScale,
		Ship:         *ship,
		CameraTarget: cameraTarget,
	}
	c.Planning = true
	c.SandboxOffset = 0
	c.TimeScale = 0
}

// ExitPlanning restores the clock and ship from the entry snapshot, resets
// SandboxOffset to 0, and deactivates planning mode, returning the saved
// camera target for the host to restore. Idempotent: a call while not
// active is a no-op and returns "".
func (c *Clock) ExitPlanning(ship *Ship) string {
	if !c.Planning || c.snapshot == nil {
		return ""
	}
	snap := c.snapshot
	c.JD = snap.JD
	c.Speed = snap.Speed
	c.TimeScale = snap.TimeScale
	*ship = snap.Ship
	c.Planning = false
	c.SandboxOffset = 0
	c.snapshot = nil
	return snap.CameraTarget
}

// SetSandboxOffset clamps and applies the planning-mode time offset, in
// days, per the [0, MaxSandboxOffsetDays] bound of §4.H/§6 (defaults to
// the built-in 730-day bound, overridable via Config.PlanningOffsetMaxDays).
func (c *Clock) SetSandboxOffset(days float64) {
	c.SandboxOffset = clampFloat(days, 0, c.MaxSandboxOffsetDays)
}
