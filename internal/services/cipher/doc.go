// Package cipher applies dial key schedules to text.
//
// It assembles the schedule from the active dials, runs the cyclic
// substitution and fingerprints the schedule so callers can display it.
package cipher
