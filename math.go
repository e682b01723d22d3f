package radial

import (
	"math"
	"sort"
)

const (
	deg2rad = math.Pi / 180
)

// pmod returns the non negative remainder of x modulo period.
func pmod(x, period float64) float64 {
	m := math.Mod(x, period)
	if m < 0 {
		m += period
	}
	return m
}

// interpPeriodic linearly interpolates the periodic signal sampled at xs with
// values ys onto the query points ts. All abscissae are reduced modulo period
// first, so queries may lie any number of periods away from the sampled
// window, and the seam between the last and first sample wraps around. Non
// finite query times yield NaN.
func interpPeriodic(ts, xs, ys []float64, period float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	rx := make([]float64, n)
	for i, x := range xs {
		idx[i] = i
		rx[i] = pmod(x, period)
	}
	sort.Slice(idx, func(a, b int) bool { return rx[idx[a]] < rx[idx[b]] })
	// Pad both ends with the wrapped neighbor so any query in [0, period)
	// falls strictly inside the abscissa range.
	px := make([]float64, 0, n+2)
	py := make([]float64, 0, n+2)
	px = append(px, rx[idx[n-1]]-period)
	py = append(py, ys[idx[n-1]])
	for _, i := range idx {
		px = append(px, rx[i])
		py = append(py, ys[i])
	}
	px = append(px, rx[idx[0]]+period)
	py = append(py, ys[idx[0]])

	out := make([]float64, len(ts))
	for k, t := range ts {
		q := pmod(t, period)
		if math.IsNaN(q) {
			// Non finite times reduce to NaN, which the ordered search
			// cannot place: propagate.
			out[k] = q
			continue
		}
		j := sort.SearchFloat64s(px, q)
		if j < len(px) && px[j] == q {
			out[k] = py[j]
			continue
		}
		// The padding guarantees px[0] < q < px[len(px)-1], hence
		// 0 < j < len(px) and px[j-1] < q < px[j].
		x0, x1 := px[j-1], px[j]
		out[k] = py[j-1] + (py[j]-py[j-1])*(q-x0)/(x1-x0)
	}
	return out
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
