// Package dielectrics converts between the different representations of
// dielectric loss (conductivity, loss tangent, imaginary permittivity),
// computes multilayer equivalent permittivity, and implements the Cole-Cole
// and Debye relaxation models. Frequencies are GHz at the boundary,
// conductivities S/m, permittivities unitless relative values.
package dielectrics

import (
	"math"

	"github.com/pipebots/t6-rflib/rferr"
)

// Empirical constants tying conductivity in S/m to loss at a frequency in
// GHz: 1/(2π·ε₀·1e9) and its reciprocal.
const (
	condToLoss = 17.97591
	lossToCond = 0.05563
)

// ConductivityToTanDelta converts a conductivity at the given frequency into
// a loss tangent for a material with the given real relative permittivity.
func ConductivityToTanDelta(freqGHz, conductivity, realPermittivity float64) (float64, error) {
	if realPermittivity < 0 || conductivity < 0 {
		return 0, rferr.Domainf("permittivity and conductivity must be positive")
	}
	if freqGHz <= 0 {
		return 0, rferr.Domainf("frequency must be > 0, got %g GHz", freqGHz)
	}
	if realPermittivity == 0 {
		return 0, rferr.Domainf("real permittivity must be > 0")
	}

	return condToLoss * conductivity / (realPermittivity * freqGHz), nil
}

// TanDeltaToConductivity converts a loss tangent at the given frequency into
// a conductivity in S/m.
func TanDeltaToConductivity(freqGHz, realPermittivity, tanDelta float64) (float64, error) {
	if realPermittivity < 0 {
		return 0, rferr.Domainf("real permittivity must be positive")
	}
	if freqGHz <= 0 {
		return 0, rferr.Domainf("frequency must be > 0, got %g GHz", freqGHz)
	}

	return lossToCond * realPermittivity * tanDelta * freqGHz, nil
}

// ComplexPermittivityToTanDelta computes tan δ = |ε''| / |ε'| from the two
// parts of a complex relative permittivity.
func ComplexPermittivityToTanDelta(realPermittivity, imagPermittivity float64) (float64, error) {
	if realPermittivity == 0 {
		return 0, rferr.Domainf("real permittivity must not be 0")
	}

	return math.Abs(imagPermittivity) / math.Abs(realPermittivity), nil
}

// ImaginaryPermittivityToConductivity converts the imaginary part of a
// complex relative permittivity into a conductivity in S/m at the given
// frequency. The imaginary part carries the loss magnitude, so its sign is
// ignored.
func ImaginaryPermittivityToConductivity(freqGHz, imagPermittivity float64) (float64, error) {
	if freqGHz <= 0 {
		return 0, rferr.Domainf("frequency must be > 0, got %g GHz", freqGHz)
	}

	return lossToCond * freqGHz * math.Abs(imagPermittivity), nil
}

// ConductivityToImaginaryPermittivity converts a conductivity in S/m into
// the imaginary part of the complex relative permittivity at the given
// frequency.
func ConductivityToImaginaryPermittivity(freqGHz, conductivity float64) (float64, error) {
	if conductivity < 0 {
		return 0, rferr.Domainf("conductivity must be positive")
	}
	if freqGHz <= 0 {
		return 0, rferr.Domainf("frequency must be > 0, got %g GHz", freqGHz)
	}

	return condToLoss * conductivity / freqGHz, nil
}

// EquivalentRelativePermittivity computes the low-frequency equivalent real
// relative permittivity of a layered stack, one permittivity and one
// thickness per layer, iterated pairwise in order. Thickness units do not
// matter as long as they are consistent. The approximation holds up to
// about 100 GHz.
func EquivalentRelativePermittivity(epsilonReal, thicknesses []float64) (float64, error) {
	if len(epsilonReal) != len(thicknesses) {
		return 0, rferr.Structuralf("need one thickness per layer, got %d permittivities and %d thicknesses",
			len(epsilonReal), len(thicknesses))
	}

	var totalThickness float64
	for _, t := range thicknesses {
		totalThickness += t
	}
	if totalThickness == 0 {
		return 0, rferr.Domainf("total thickness must be > 0")
	}

	var reciprocal float64
	for i, er := range epsilonReal {
		if er == 0 {
			return 0, rferr.Domainf("layer %d permittivity must not be 0", i)
		}
		reciprocal += thicknesses[i] / (er * totalThickness)
	}
	if reciprocal == 0 {
		return 0, rferr.Domainf("reciprocal sum evaluates to 0")
	}

	return 1 / reciprocal, nil
}
