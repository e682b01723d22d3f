// Package radial synthesizes stellar radial velocity curves from Keplerian
// orbital elements, after Murray & Correia, "Keplerian Orbits and Dynamics of
// Exoplanets" (2011).
package radial

import "math"

// MeanAnomaly returns the mean anomaly in radians at time t, for an orbit of
// the given period whose periastron passage happens at t0, i.e.
// M = 2π (t - t0) / period. The result is not reduced modulo 2π.
func MeanAnomaly(period, t0, t float64) float64 {
	return 2 * math.Pi * (t - t0) / period
}

// RadialVelocity returns the radial velocity at true anomaly f of an orbit of
// eccentricity e, radial velocity semi-amplitude k and argument of periapsis
// ω in degrees, offset by the systemic velocity vz. This is eq. 65 of
// Murray & Correia (2011); the output shares the units of k and vz.
func RadialVelocity(vz, k, ω, f, e float64) float64 {
	ωr := Deg2rad(ω)
	return vz + k*(math.Cos(ωr+f)+e*math.Cos(ωr))
}

// Semiamplitude returns the radial velocity semi-amplitude of the orbit of a
// body of mass m1 with a companion of mass m2, from the mean motion n, the
// semi-major axis a of the relative orbit, the inclination i in degrees and
// the eccentricity e. This is eq. 66 of Murray & Correia (2011); the output
// shares the units of n·a.
func Semiamplitude(m1, m2, n, a, i, e float64) float64 {
	return m2 / (m1 + m2) * n * a * math.Sin(Deg2rad(i)) / math.Sqrt(1-e*e)
}

// PerifocalState returns the position and velocity vectors at true anomaly f
// in the perifocal (PQW) frame of an elliptical orbit of the given period,
// semi-major axis a and eccentricity e. Velocities are in units of length
// per unit time of the period.
func PerifocalState(period, a, e, f float64) (R, V []float64) {
	n := 2 * math.Pi / period
	sf, cf := math.Sincos(f)
	r := a * (1 - e*e) / (1 + e*cf)
	vScale := n * a / math.Sqrt(1-e*e)
	R = []float64{r * cf, r * sf, 0}
	V = []float64{-vScale * sf, vScale * (e + cf), 0}
	return
}

// LineOfSightVelocity returns the velocity of the orbiting body at true
// anomaly f projected onto the observer's line of sight (the +Z axis of the
// sky frame), offset by the systemic velocity vz. The inclination i, argument
// of periapsis ω and longitude of the ascending node Ω are in degrees. It
// agrees with RadialVelocity for k = n·a·sin(i)/√(1-e²) and is independent
// of Ω.
func LineOfSightVelocity(period, a, e, i, ω, Ω, f, vz float64) float64 {
	_, V := PerifocalState(period, a, e, f)
	sky := PQW2Observer(Deg2rad(i), Deg2rad(ω), Deg2rad(Ω), V)
	return vz + sky[2]
}
