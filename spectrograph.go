package radial

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gonum/matrix/mat64"
	"github.com/gonum/stat/distmv"
)

// Spectrograph models an instrument measuring stellar radial velocities with
// zero mean Gaussian noise.
type Spectrograph struct {
	Name  string
	σ     float64
	noise *distmv.Normal
}

// NewSpectrograph returns a Spectrograph of the given velocity precision σ
// (one standard deviation, velocity units), seeded from the wall clock.
func NewSpectrograph(name string, σ float64) Spectrograph {
	return NewSeededSpectrograph(name, σ, time.Now().UnixNano())
}

// NewSeededSpectrograph returns a Spectrograph with a reproducible noise
// stream.
func NewSeededSpectrograph(name string, σ float64, seed int64) Spectrograph {
	noise, ok := distmv.NewNormal([]float64{0}, mat64.NewSymDense(1, []float64{σ * σ}), rand.New(rand.NewSource(seed)))
	if !ok {
		panic("NOK in Gaussian")
	}
	return Spectrograph{Name: name, σ: σ, noise: noise}
}

// Sigma returns the standard deviation of the velocity noise.
func (sp Spectrograph) Sigma() float64 {
	return sp.σ
}

// Observe synthesizes the radial velocity curve of the given orbit, cf.
// Synthesize, and perturbs each sample with instrument noise. The returned
// measurements align positionally with ts.
func (sp Spectrograph) Observe(k, period, t0, ω, e, a, vz float64, nt int, ts []float64) ([]Measurement, error) {
	truth, err := Synthesize(k, period, t0, ω, e, a, vz, nt, ts)
	if err != nil {
		return nil, err
	}
	msmts := make([]Measurement, len(ts))
	for i, rv := range truth {
		msmts[i] = Measurement{ts[i], rv + sp.noise.Rand(nil)[0], rv, sp}
	}
	return msmts, nil
}

// Measurement stores a single noisy radial velocity sample along with the
// noise free value it was drawn from.
type Measurement struct {
	JD           float64 // Epoch of the sample, in Julian days.
	RV           float64 // Measured radial velocity.
	TrueRV       float64 // Synthesized radial velocity before noise.
	Spectrograph Spectrograph
}

// CSV returns the measurement as comma separated values: epoch, velocity and
// the one sigma uncertainty.
func (m Measurement) CSV() string {
	return fmt.Sprintf("%f,%f,%f", m.JD, m.RV, m.Spectrograph.σ)
}

// String implements the Stringer interface.
func (m Measurement) String() string {
	return fmt.Sprintf("%s: rv(%f) = %f ± %f", m.Spectrograph.Name, m.JD, m.RV, m.Spectrograph.σ)
}
