// Package propagation covers wave propagation in conductors and
// dielectrics: metal skin depth, frequency-dependent metal resistance, and
// the complex propagation constant of a plane wave in homogeneous media.
// Frequencies are GHz at the boundary; results are in SI base units.
package propagation

import (
	"math"

	"github.com/pipebots/t6-rflib/internal/units"
	"github.com/pipebots/t6-rflib/rferr"
)

// SkinDepth returns the skin depth δ = 1/√(πfσμ₀μᵣ) in metres for a metal
// with the given conductivity in S/m and relative permeability at the given
// frequency in GHz.
func SkinDepth(freqGHz, conductivity, realPermeability float64) (float64, error) {
	freqHz := units.GHzToHz(freqGHz)

	delta := math.Sqrt(math.Pi * freqHz * conductivity * units.Mu0 * realPermeability)
	if math.IsNaN(delta) {
		return 0, rferr.Computationf("all of frequency, conductivity and permeability must be > 0")
	}
	if delta == 0 {
		return 0, rferr.Domainf("frequency, conductivity and permeability must all be > 0")
	}

	return 1 / delta, nil
}

// MetalResistance returns the frequency-dependent resistance of a metal in
// Ohms, following the Waveguide Handbook formulation: R = π·√(μ₀/ε₀)·(δ/λ).
// Skin-depth failures propagate unchanged.
func MetalResistance(freqGHz, conductivity, realPermeability float64) (float64, error) {
	metalSkinDepth, err := SkinDepth(freqGHz, conductivity, realPermeability)
	if err != nil {
		return 0, err
	}

	wavelength, err := units.Wavelength(freqGHz)
	if err != nil {
		return 0, err
	}

	return math.Pi * math.Sqrt(units.Mu0/units.Epsilon0) * metalSkinDepth / wavelength, nil
}

// PlaneWavePropConst returns the attenuation constant α in Np/m and the
// phase constant β in rad/m of a plane wave in a homogeneous medium with the
// given relative permittivity (real and imaginary parts) and relative
// permeability. The general formula is used rather than the low-loss
// approximation, so it stays valid for lossy media. The imaginary
// permittivity carries the loss magnitude and its sign is ignored.
func PlaneWavePropConst(freqGHz, realPermittivity, imagPermittivity, realPermeability float64) (alpha, beta float64, err error) {
	if realPermittivity == 0 {
		return 0, 0, rferr.Domainf("real relative permittivity must not be 0")
	}

	eps := realPermittivity * units.Epsilon0
	epsLoss := math.Abs(imagPermittivity) * units.Epsilon0
	mu := realPermeability * units.Mu0

	angFreq := 2 * math.Pi * units.GHzToHz(freqGHz)

	ratio := epsLoss / eps
	commonRoot := math.Sqrt(1 + ratio*ratio)
	if math.IsNaN(commonRoot) {
		return 0, 0, rferr.Computationf("loss ratio is not a real number")
	}

	commonMultiplier := mu * eps / 2

	alpha = angFreq * math.Sqrt(commonMultiplier*(commonRoot-1))
	if math.IsNaN(alpha) {
		return 0, 0, rferr.Computationf("attenuation constant is not a real number; check material parameter signs")
	}

	beta = angFreq * math.Sqrt(commonMultiplier*(commonRoot+1))
	if math.IsNaN(beta) {
		return 0, 0, rferr.Computationf("phase constant is not a real number; check material parameter signs")
	}

	return alpha, beta, nil
}
