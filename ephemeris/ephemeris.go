// Package ephemeris adapts github.com/soniakeys/meeus's mean planetary
// orbital elements (Meeus, Astronomical Algorithms ch. 31, as implemented
// in meeus's planetelements package) into the sail package's
// EphemerisOracle interface, the same role smd's celestial.go HelioOrbit
// gives meeus in the teacher repo — except this adapter feeds the mean
// elements through sail's own Keplerian propagator (Position/Velocity)
// instead of smd's inline re-derivation of Earth's position, so one
// Kepler solver serves both real bodies and the ship.
package ephemeris

import (
	"strconv"
	"sync"
	"time"

	sail "github.com/MattCam2007/sailship-sub002"
	"github.com/soniakeys/meeus/v3/planetelements"
)

// cacheTTL and maxEntries bound the adapter's memoization of mean-element
// lookups, matching the ~100ms/~100-entry figures SPEC_FULL.md assigns to
// this component; meeus's Horner-series evaluation is cheap, but a host
// driving several ticks per second and many bodies still benefits from
// not recomputing what hasn't changed within a tick.
const (
	cacheTTL   = 100 * time.Millisecond
	maxEntries = 100
)

// planetIndex maps the body names this package's celestial body table
// uses to meeus's planetelements table indices. Mercury and Neptune are
// absent from the sail body table (Non-goals) so are omitted here too;
// Pluto has no entry in meeus's table at all (it stopped being one of
// Meeus's eight planets after the 2006 reclassification), so Pluto always
// misses this adapter and the caller falls back to CelestialObject's own
// hard-coded Keplerian elements.
var planetIndex = map[string]int{
	"Venus":   planetelements.Venus,
	"Earth":   planetelements.Earth,
	"Mars":    planetelements.Mars,
	"Jupiter": planetelements.Jupiter,
	"Saturn":  planetelements.Saturn,
	"Uranus":  planetelements.Uranus,
}

type cacheEntry struct {
	r, v     sail.Vec3
	computed time.Time
}

// Adapter is a meeus-backed EphemerisOracle. The zero value is not usable;
// construct with New.
type Adapter struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
}

// New returns a ready Adapter.
func New() *Adapter {
	return &Adapter{cache: make(map[string]cacheEntry)}
}

// HeliocentricState implements sail.EphemerisOracle. It reports ok=false
// for any body name not in meeus's planetary table (Sun, Pluto, and
// anything unrecognized), letting the caller's own fallback take over.
func (a *Adapter) HeliocentricState(bodyName string, jd float64) (sail.Vec3, sail.Vec3, bool) {
	idx, known := planetIndex[bodyName]
	if !known {
		return sail.Vec3{}, sail.Vec3{}, false
	}

	key := cacheKeyFor(bodyName, jd)
	a.mu.Lock()
	if e, found := a.cache[key]; found && time.Since(e.computed) < cacheTTL {
		a.mu.Unlock()
		return e.r, e.v, true
	}
	a.mu.Unlock()

	r, v := meanElementState(idx, jd)

	a.mu.Lock()
	if len(a.cache) >= maxEntries {
		a.evictOldestLocked()
	}
	a.cache[key] = cacheEntry{r: r, v: v, computed: time.Now()}
	a.mu.Unlock()

	return r, v, true
}

func cacheKeyFor(name string, jd float64) string {
	// Truncate to a tenth of a second of ephemeris time: well under
	// the precision mean elements carry, so rounding never changes the
	// returned state, only the cache hit rate.
	tenthsOfSecond := int64(jd * 864000)
	return name + ":" + strconv.FormatInt(tenthsOfSecond, 10)
}

func (a *Adapter) evictOldestLocked() {
	var oldestKey string
	var oldestTime time.Time
	first := true
	for k, e := range a.cache {
		if first || e.computed.Before(oldestTime) {
			oldestKey = k
			oldestTime = e.computed
			first = false
		}
	}
	delete(a.cache, oldestKey)
}

// meanElementState converts meeus's mean orbital elements (referenced to
// the mean equinox of date, i.e. already valid exactly at jde) into a
// heliocentric Cartesian state via sail's own Kepler propagator: since the
// mean anomaly meeus returns is defined at jde itself, Position/Velocity
// are evaluated with epoch == jd, so no additional propagation occurs.
func meanElementState(planet int, jd float64) (sail.Vec3, sail.Vec3) {
	var me planetelements.Elements
	planetelements.Mean(planet, jd, &me)

	raan := me.Node.Rad()
	peri := me.Peri.Rad()
	argPeriapsis := peri - raan
	meanAnomaly := me.Lon.Rad() - peri

	el := sail.NewElements(me.Axis, me.Ecc, me.Inc.Rad(), raan, argPeriapsis, meanAnomaly, jd, sail.MuSun)
	return sail.Position(el, jd), sail.Velocity(el, jd)
}
