package sail

import (
	"os"

	"github.com/spf13/viper"
)

// Config holds the host-tunable settings read at startup (§4.K). Unlike
// smd's config.go, a missing or unreadable config file is not fatal: every
// field falls back to a built-in default, consistent with this package's
// "no exception escapes the core" error policy (Design Notes §9) — smd's
// smdConfig() panics on a missing SMD_CONFIG env var, which this package
// deliberately does not repeat.
type Config struct {
	EphemerisMode         string      // "meeus" or "keplerian"
	DefaultSpeed          SpeedPreset
	TrajectorySteps       int
	BodyFilterPath        string
	PlanningOffsetMaxDays float64
}

// DefaultConfig returns the configuration used when no config file is
// found or readable.
func DefaultConfig() Config {
	return Config{
		EphemerisMode:         "meeus",
		DefaultSpeed:          SpeedDay,
		TrajectorySteps:       200,
		BodyFilterPath:        "bodyfilter.json",
		PlanningOffsetMaxDays: planningOffsetMaxDays,
	}
}

// LoadConfig reads a TOML config file from the directory named by the
// SAILSHIP_CONFIG environment variable, the same viper-based pattern
// smd's config.go uses (SetConfigName/AddConfigPath/ReadInConfig), but
// every failure path logs and returns defaults rather than panicking.
func LoadConfig(diag Diagnostics) Config {
	cfg := DefaultConfig()

	confDir := os.Getenv("SAILSHIP_CONFIG")
	if confDir == "" {
		diag.Info("msg", "SAILSHIP_CONFIG not set, using default configuration")
		return cfg
	}

	v := viper.New()
	v.SetConfigName("sailship")
	v.SetConfigType("toml")
	v.AddConfigPath(confDir)
	if err := v.ReadInConfig(); err != nil {
		diag.Warn("msg", "could not read config file, using defaults", "dir", confDir, "err", err)
		return cfg
	}

	if s := v.GetString("ephemeris.mode"); s != "" {
		cfg.EphemerisMode = s
	}
	if s := v.GetString("clock.default_speed"); s != "" {
		if _, ok := defaultSpeedPresets[SpeedPreset(s)]; ok {
			cfg.DefaultSpeed = SpeedPreset(s)
		} else {
			diag.Warn("msg", "unknown default speed preset in config, keeping default", "value", s)
		}
	}
	if n := v.GetInt("predictor.steps"); n > 0 {
		cfg.TrajectorySteps = n
	}
	if s := v.GetString("persistence.body_filter_path"); s != "" {
		cfg.BodyFilterPath = s
	}
	if d := v.GetFloat64("planning.offset_max_days"); d > 0 {
		cfg.PlanningOffsetMaxDays = d
	}

	diag.Info("msg", "configuration loaded", "dir", confDir)
	return cfg
}
