// Package units holds the physical constants and GHz-boundary conversions
// shared by the rflib formula packages. Frequencies cross the public API in
// GHz and are converted to SI base units here, in one place.
package units

import (
	"math"

	"github.com/pipebots/t6-rflib/rferr"
)

// SI values of the physical constants used throughout the library.
const (
	// SpeedOfLight is the speed of light in vacuum, m/s.
	SpeedOfLight = 299792458.0

	// Epsilon0 is the vacuum permittivity, F/m.
	Epsilon0 = 8.8541878128e-12

	// Mu0 is the vacuum permeability, H/m.
	Mu0 = 1.25663706212e-6
)

// GHzToHz converts a frequency given in GHz to Hz.
func GHzToHz(freqGHz float64) float64 {
	return freqGHz * 1e9
}

// Wavelength returns the free-space wavelength in metres for a frequency in
// GHz. Frequencies at or below zero have no wavelength and raise a domain
// error rather than dividing through.
func Wavelength(freqGHz float64) (float64, error) {
	if freqGHz <= 0 {
		return 0, rferr.Domainf("frequency must be > 0, got %g GHz", freqGHz)
	}
	return SpeedOfLight / GHzToHz(freqGHz), nil
}

// AngularFreq returns the angular frequency ω = 2πf in rad/s for a frequency
// in GHz, raising a domain error for frequencies at or below zero.
func AngularFreq(freqGHz float64) (float64, error) {
	if freqGHz <= 0 {
		return 0, rferr.Domainf("frequency must be > 0, got %g GHz", freqGHz)
	}
	return 2 * math.Pi * GHzToHz(freqGHz), nil
}
