// Package conversions provides the dB, neper, and magnitude conversions used
// throughout rflib.
package conversions

import (
	"math"
	"strings"

	"github.com/pipebots/t6-rflib/rferr"
)

// Scale factors between decibels and nepers: 20/log(10) dB per neper, and
// its reciprocal.
const (
	nepersPerDB = 0.115129255
	dbPerNeper  = 8.685889638
)

// NepersToDB converts an attenuation in nepers to decibels.
func NepersToDB(nepers float64) float64 {
	return nepers * dbPerNeper
}

// DBToNepers converts an attenuation in decibels to nepers.
func DBToNepers(db float64) float64 {
	return db * nepersPerDB
}

type magMode int

const (
	modePower magMode = iota
	modeAmplitude
)

func parseMagMode(s string) (magMode, error) {
	switch strings.ToLower(s) {
	case "power":
		return modePower, nil
	case "amplitude":
		return modeAmplitude, nil
	default:
		return 0, rferr.InvalidArgumentf("mode must be power or amplitude, got %q", s)
	}
}

// DBToMag converts a dB value to linear magnitude. Mode "power" uses
// 10^(v/10) and "amplitude" uses 10^(v/20); both are matched
// case-insensitively.
func DBToMag(value float64, mode string) (float64, error) {
	m, err := parseMagMode(mode)
	if err != nil {
		return 0, err
	}

	switch m {
	case modeAmplitude:
		return math.Pow(10, value/20), nil
	default:
		return math.Pow(10, value/10), nil
	}
}

// MagToDB converts a linear magnitude to dB, the inverse of DBToMag. The
// magnitude must be strictly positive for the logarithm to exist.
func MagToDB(value float64, mode string) (float64, error) {
	m, err := parseMagMode(mode)
	if err != nil {
		return 0, err
	}

	if value <= 0 {
		return 0, rferr.Domainf("magnitude must be > 0, got %g", value)
	}

	scale := 10.0
	if m == modeAmplitude {
		scale = 20.0
	}

	return scale * math.Log10(value), nil
}
