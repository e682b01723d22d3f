package radial

import (
	"fmt"
	"math"
)

const (
	// KeplerTol is the default convergence tolerance of the Kepler equation
	// solver, applied to successive Newton corrections.
	KeplerTol = 1e-12
	// KeplerMaxIter is the default cap on Newton iterations.
	KeplerMaxIter uint = 50
)

// Kepler returns the residual of Kepler's equation, E - e·sin(E) - M. A root
// in E for fixed e and M relates the eccentric anomaly to the mean anomaly.
// Exposed for diagnostics, cf. eq. 41 of Murray & Correia (2011).
func Kepler(E, e, M float64) float64 {
	return E - e*math.Sin(E) - M
}

// SolveKepler returns the eccentric anomaly E such that E - e·sin(E) = M for
// an orbit of eccentricity e, using Newton iterations started at E = M. The
// mean anomaly may be any real number and is not reduced modulo 2π. Fails
// with ErrInvalidParameter if the orbit is not elliptical, and with
// ErrNoConvergence if the iteration cap is reached.
func SolveKepler(e, M float64) (float64, error) {
	return solveKepler(e, M, KeplerTol, KeplerMaxIter)
}

// SolveKepler is identical to the package level function of the same name,
// but honors the solver settings of this Synthesizer.
func (s *Synthesizer) SolveKepler(e, M float64) (float64, error) {
	return solveKepler(e, M, s.tol(), s.maxIter())
}

func solveKepler(e, M, tol float64, maxIter uint) (float64, error) {
	if !(e >= 0 && e < 1) {
		return 0, fmt.Errorf("%w: eccentricity %f not in [0,1)", ErrInvalidParameter, e)
	}
	E := M
	for iter := uint(0); iter < maxIter; iter++ {
		// The derivative 1 - e·cos(E) is strictly positive for e < 1.
		ΔE := Kepler(E, e, M) / (1 - e*math.Cos(E))
		E -= ΔE
		if math.Abs(ΔE) < tol {
			return E, nil
		}
	}
	return 0, fmt.Errorf("%w: e=%f M=%f after %d iterations", ErrNoConvergence, e, M, maxIter)
}

// TrueAnomaly converts the eccentric anomaly E into the true anomaly on an
// orbit of eccentricity e, using the half angle relation of Murray & Correia
// (2011) in atan2 form. The result is quadrant correct and continuous
// through E = π, which the naive arctangent form is not.
func TrueAnomaly(E, e float64) float64 {
	sE2, cE2 := math.Sincos(E / 2)
	return 2 * math.Atan2(math.Sqrt(1+e)*sE2, math.Sqrt(1-e)*cE2)
}
