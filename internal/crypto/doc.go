// Package crypto exposes the hashing primitive used by shiftdial.
//
// Contents
//
//   - Short key-schedule fingerprints for display/logging (Fingerprint)
//
// # Notes
//
// A fingerprint lets two people confirm they set identical dials without
// reading the shifts aloud. It is not a secret: with at most 26^N schedules
// it is trivially brute-forced, like the cipher it describes.
package crypto
