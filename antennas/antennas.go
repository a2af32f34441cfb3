// Package antennas provides closed-form antenna geometry and power helpers:
// Hertzian dipole feed current, first-Fresnel-zone sizing, and far-field
// boundary estimates. Frequencies are taken in GHz at the boundary and
// converted to SI base units internally; lengths and distances are metres.
package antennas

import (
	"context"
	"math"
	"strings"

	"github.com/pipebots/t6-rflib/internal/logging"
	"github.com/pipebots/t6-rflib/internal/observability"
	"github.com/pipebots/t6-rflib/internal/units"
	"github.com/pipebots/t6-rflib/rferr"
)

// logger carries the non-fatal advisories this package emits. Configured
// from LOG_LEVEL / LOG_FORMAT like the rest of the library.
var logger = logging.NewFromEnv()

type powerUnit int

const (
	powerDBm powerUnit = iota
	powerWatts
)

func parsePowerUnit(s string) (powerUnit, error) {
	switch strings.ToLower(s) {
	case "dbm":
		return powerDBm, nil
	case "w":
		return powerWatts, nil
	default:
		return 0, rferr.InvalidArgumentf("unsupported power units %q", s)
	}
}

type separationMode int

const (
	modeNormal separationMode = iota
	modeCheeky
)

// cheekyClearance relaxes the Fresnel clearance target to 60% of the first
// zone radius.
const cheekyClearance = 0.6

func parseSeparationMode(s string) (separationMode, error) {
	switch strings.ToLower(s) {
	case "normal":
		return modeNormal, nil
	case "cheeky":
		return modeCheeky, nil
	default:
		return 0, rferr.InvalidArgumentf("unsupported separation mode %q", s)
	}
}

// HertzianDipoleCurrent converts a desired radiated power into the feed
// current, in A, required through a Hertzian dipole of the given length.
// The power is taken in dBm or W according to unit ("dbm" or "w",
// case-insensitive); dBm values are converted to W internally. Strictly
// valid for a time-harmonic excitation only.
//
// A dipole longer than a tenth of the wavelength is not electrically small;
// the formula loses accuracy there, so a warning is logged, but the current
// is still computed and returned.
func HertzianDipoleCurrent(freqGHz, power, length float64, unit string) (float64, error) {
	pu, err := parsePowerUnit(unit)
	if err != nil {
		return 0, err
	}

	switch pu {
	case powerDBm:
		power = math.Pow(10, power/10) / 1e3
	case powerWatts:
		if power == 0 {
			return 0, rferr.Domainf("power in absolute units must be > 0")
		}
	}

	wavelength, err := units.Wavelength(freqGHz)
	if err != nil {
		return 0, err
	}

	if length > wavelength/10 {
		logger.Warn(context.Background(), "dipole is not electrically small",
			logging.Float64("length_m", length),
			logging.Float64("wavelength_m", wavelength))
		observability.CountAdvisory()
	}

	geometry := 40 * math.Pi * math.Pi * (length / wavelength) * (length / wavelength)
	if geometry == 0 {
		return 0, rferr.Domainf("dipole length must be > 0")
	}

	current := math.Sqrt(power / geometry)
	if math.IsNaN(current) {
		return 0, rferr.Computationf("dipole current came out negative for power %g W", power)
	}

	return current, nil
}

// MaxSeparationFull returns the maximum transmitter-receiver separation, in
// metres, that keeps the first Fresnel zone radius at or below the target
// radius. It uses the exact quadratic relation rather than the large-
// separation approximation. Mode "cheeky" relaxes the clearance target to
// 60% of the zone; "normal" keeps it at 100%.
//
// Some input combinations give a mathematically correct but negative
// separation. That value is returned as-is; it has no physical meaning and
// callers must interpret it.
func MaxSeparationFull(freqGHz, radius float64, mode string) (float64, error) {
	m, err := parseSeparationMode(mode)
	if err != nil {
		return 0, err
	}

	wavelength, err := units.Wavelength(freqGHz)
	if err != nil {
		return 0, err
	}

	if m == modeCheeky {
		radius /= cheekyClearance
	}

	separation := 16*radius*radius - wavelength*wavelength
	separation /= 4 * wavelength

	return separation, nil
}

// MaxSeparationApprox is MaxSeparationFull using the far-field approximation
// of the Fresnel zone radius, which assumes the separation is much larger
// than the wavelength. It converges with the full formula as radius grows
// against the wavelength.
func MaxSeparationApprox(freqGHz, radius float64, mode string) (float64, error) {
	m, err := parseSeparationMode(mode)
	if err != nil {
		return 0, err
	}

	wavelength, err := units.Wavelength(freqGHz)
	if err != nil {
		return 0, err
	}

	if m == modeCheeky {
		radius /= cheekyClearance
	}

	return 4 * radius * radius / wavelength, nil
}

// FresnelZoneRadius returns the radius, in metres, of the first Fresnel zone
// at a point d1 metres from one antenna and d2 metres from the other. The
// point can sit anywhere along the link; both distances are assumed much
// larger than the wavelength.
func FresnelZoneRadius(freqGHz, d1, d2 float64) (float64, error) {
	wavelength, err := units.Wavelength(freqGHz)
	if err != nil {
		return 0, err
	}

	if d1+d2 == 0 {
		return 0, rferr.Domainf("distances must be > 0")
	}

	radius := math.Sqrt(wavelength * d1 * d2 / (d1 + d2))
	if math.IsNaN(radius) {
		return 0, rferr.Computationf("negative area under the root for distances %g m and %g m", d1, d2)
	}

	return radius, nil
}

// FarFieldDistance returns the far-field boundary, in metres, for an antenna
// at the given frequency. The effective aperture depends on antennaType
// (case-insensitive): "monopole" is a quarter-wave resonator and "dipole" a
// half-wave one, both ignoring dimension; "array" treats dimension as the
// element count of a half-wavelength-spaced array; any other type uses
// dimension directly as the largest physical size in metres.
func FarFieldDistance(freqGHz, dimension float64, antennaType string) (float64, error) {
	wavelength, err := units.Wavelength(freqGHz)
	if err != nil {
		return 0, err
	}

	var size float64
	switch strings.ToLower(antennaType) {
	case "monopole":
		size = wavelength / 4
	case "dipole":
		size = wavelength / 2
	case "array":
		size = dimension * wavelength / 2
	default:
		size = dimension
	}

	return 2 * size * size / wavelength, nil
}
