package dielectrics

import (
	"math/cmplx"

	"github.com/pipebots/t6-rflib/internal/units"
	"github.com/pipebots/t6-rflib/rferr"
)

// ColeColeSingle evaluates the single-pole Cole-Cole relaxation model
//
//	ε(ω) = ε∞ + (εs − ε∞) / (1 + (jωτ)^(1−α)) + σ / (jωε₀)
//
// at the given frequency in GHz. erStatic and erInf are the relative
// permittivities at DC and at infinite frequency, condStatic the static
// conductivity in S/m, relaxTime the relaxation time in seconds, and alpha
// the pole-broadening coefficient. With alpha = 0 the model reduces to a
// single-pole Debye response.
//
// The result follows the ε' − j·ε'' convention: a lossy material has a
// negative imaginary part.
func ColeColeSingle(freqGHz, erStatic, erInf, condStatic, relaxTime, alpha float64) (complex128, error) {
	angFreq, err := units.AngularFreq(freqGHz)
	if err != nil {
		return 0, err
	}

	condTerm := complex(condStatic, 0) / (1i * complex(angFreq*units.Epsilon0, 0))

	poleBase := 1i * complex(angFreq*relaxTime, 0)
	dispTerm := complex(erStatic-erInf, 0) / (1 + cmplx.Pow(poleBase, complex(1-alpha, 0)))

	return complex(erInf, 0) + dispTerm + condTerm, nil
}

// DebyeMultipole evaluates the multipole Debye relaxation model
//
//	ε(ω) = ε∞ + Σᵢ Δεᵢ / (1 + jωτᵢ) + σ / (jωε₀)
//
// at the given frequency in GHz. relaxTimes holds the relaxation time of
// each pole in seconds and erDisps the matching pole amplitudes; the two
// slices are consumed pairwise and must be the same length.
//
// The result follows the ε' − j·ε'' convention.
func DebyeMultipole(freqGHz, erInf, condStatic float64, relaxTimes, erDisps []float64) (complex128, error) {
	if len(relaxTimes) != len(erDisps) {
		return 0, rferr.Structuralf("need same number of relaxation times and pole amplitudes, got %d and %d",
			len(relaxTimes), len(erDisps))
	}

	angFreq, err := units.AngularFreq(freqGHz)
	if err != nil {
		return 0, err
	}

	condTerm := complex(condStatic, 0) / (1i * complex(angFreq*units.Epsilon0, 0))

	var poleSum complex128
	for i, relaxTime := range relaxTimes {
		poleSum += complex(erDisps[i], 0) / (1 + 1i*complex(angFreq*relaxTime, 0))
	}

	return complex(erInf, 0) + poleSum + condTerm, nil
}
