package matmul

import "github.com/helmgren/tessel/mat"

// PolyEval evaluates the matrix polynomial
//
//	aₙ·Aⁿ + aₙ₋₁·Aⁿ⁻¹ + … + a₁·A + a₀·I
//
// with coeffs ordered highest-degree-first [aₙ, …, a₀], using Horner's
// scheme: acc = aₙ·I, then for each remaining coefficient aᵢ in descending
// order acc = acc·A + aᵢ·I.
//
// A zero coefficient skips only the additive step, never the multiply — the
// degree of the polynomial is fixed by the coefficient count, not by which
// coefficients happen to be zero.
//
// Preconditions: at least one coefficient (ErrNoCoefficients) and a square
// matrix (ErrPolySquare). Any Options value is accepted; see
// DefaultPolyOptions for the favored default.
//
// Complexity: len(coeffs)−1 multiplies under opts.Algorithm.
func PolyEval(m *mat.Matrix, coeffs []float64, opts Options) (*mat.Matrix, error) {
	opts = opts.normalize()
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	if !m.IsSquare() {
		return nil, ErrPolySquare
	}

	eye, err := mat.Identity(m.Rows())
	if err != nil {
		return nil, err
	}

	acc := eye.Scale(coeffs[0])
	for _, c := range coeffs[1:] {
		if acc, err = Multiply(acc, m, opts); err != nil {
			return nil, err
		}
		if c == 0 {
			continue
		}
		if acc, err = acc.Add(eye.Scale(c)); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
