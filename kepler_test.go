package radial

import (
	"errors"
	"math"
	"testing"
)

func TestSolveKeplerRoundTrip(t *testing.T) {
	for _, e := range []float64{0, 1e-6, 0.1, 0.3, 0.5, 0.7, 0.9, 0.95, 0.99} {
		for M := -4 * math.Pi; M <= 4*math.Pi; M += math.Pi / 7 {
			E, err := SolveKepler(e, M)
			if err != nil {
				t.Fatalf("e=%f M=%f: %s", e, M, err)
			}
			if resid := math.Abs(Kepler(E, e, M)); resid > 1e-9 {
				t.Fatalf("e=%f M=%f: residual %e at E=%f", e, M, resid, E)
			}
		}
	}
}

func TestSolveKeplerCircular(t *testing.T) {
	// On a circular orbit the anomalies coincide, and the very first Newton
	// correction is zero, so the identity must be exact.
	for M := -4 * math.Pi; M <= 4*math.Pi; M += 0.5 {
		E, err := SolveKepler(0, M)
		if err != nil {
			t.Fatalf("M=%f: %s", M, err)
		}
		if E != M {
			t.Fatalf("E=%v for M=%v on a circular orbit", E, M)
		}
	}
}

func TestSolveKeplerInvalid(t *testing.T) {
	for _, e := range []float64{1, 1.2, -0.1, 42, math.NaN()} {
		if _, err := SolveKepler(e, 1.0); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("e=%f: expected ErrInvalidParameter, got %v", e, err)
		}
	}
}

func TestSolveKeplerIterationCap(t *testing.T) {
	s := NewSynthesizer()
	s.MaxIter = 1
	if _, err := s.SolveKepler(0.9, 2.5); !errors.Is(err, ErrNoConvergence) {
		t.Fatalf("expected ErrNoConvergence with a single iteration, got %v", err)
	}
	s.MaxIter = KeplerMaxIter
	if _, err := s.SolveKepler(0.9, 2.5); err != nil {
		t.Fatalf("expected convergence with the default cap, got %v", err)
	}
}

func TestTrueAnomaly(t *testing.T) {
	// Circular orbit: f and E coincide.
	for E := -2 * math.Pi; E <= 2*math.Pi; E += 0.25 {
		if ok, err := anglesEqual(E, TrueAnomaly(E, 0)); !ok {
			t.Fatalf("circular orbit at E=%f: %s", E, err)
		}
	}
	// Periastron and apoastron for any eccentricity.
	for _, e := range []float64{0.1, 0.5, 0.9} {
		if f := TrueAnomaly(0, e); f != 0 {
			t.Fatalf("e=%f: f=%v at periastron", e, f)
		}
		if ok, err := anglesEqual(math.Pi, TrueAnomaly(math.Pi, e)); !ok {
			t.Fatalf("e=%f at apoastron: %s", e, err)
		}
	}
	// e=0.5, E=π/2: tan(f/2) = √3, hence f = 2π/3.
	if ok, err := anglesEqual(2*math.Pi/3, TrueAnomaly(math.Pi/2, 0.5)); !ok {
		t.Fatal(err)
	}
}

func TestTrueAnomalyPeriodic(t *testing.T) {
	for _, e := range []float64{0, 0.3, 0.8} {
		for E := 0.0; E < 2*math.Pi; E += 0.7 {
			if ok, err := anglesEqual(TrueAnomaly(E, e), TrueAnomaly(E+2*math.Pi, e)); !ok {
				t.Fatalf("e=%f E=%f: %s", e, E, err)
			}
		}
	}
}

func TestTrueAnomalyHalfOrbitSign(t *testing.T) {
	// E in (0, π) maps to f in (0, π), E in (π, 2π) maps to f in (π, 2π) mod 2π.
	for _, e := range []float64{0.2, 0.6, 0.9} {
		for E := 0.1; E < math.Pi; E += 0.2 {
			if f := TrueAnomaly(E, e); f <= 0 || f >= math.Pi {
				t.Fatalf("e=%f E=%f: f=%f out of the ascending half", e, E, f)
			}
			if f := TrueAnomaly(-E, e); f >= 0 || f <= -math.Pi {
				t.Fatalf("e=%f E=%f: f=%f out of the descending half", e, -E, f)
			}
		}
	}
}
