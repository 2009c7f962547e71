// Package sail implements the astrodynamics core of a solar-sail navigation
// simulator: Keplerian propagation, continuous low-thrust application,
// sphere-of-influence patched conics, trajectory prediction with caching,
// and orbit-crossing ("ghost planet") detection.
//
// The orbital mechanics are pure functions: nothing here renders or reads
// user input directly. Hosts drive a tick loop (clock advance, ephemeris
// refresh, physics, prediction, crossing detection) and consume the
// resulting state; LoadConfig is the one I/O seam, reading host-tunable
// settings from an optional TOML file.
package sail
