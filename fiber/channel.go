// Package fiber models propagation of a dual-polarization optical signal
// through a dispersive, non-linear, lossy fiber span using the symmetric
// Split-Step Fourier Method (SSFM).
//
// A Channel is one physical-layer component in a larger discrete-event
// simulation of an optical quantum-communication link: an upstream source
// hands it a sampled field, Propagate pushes the field through the span, and
// the result is handed to the timeline.Publisher registered at construction.
// The engine propagates classical envelope fields only; quantum semantics
// belong to other components.
package fiber

import (
	"fmt"
	"log"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/opqkdsim/fibersim/fiber/timeline"
	"github.com/opqkdsim/fibersim/fiber/units"
)

// Default channel parameters, describing standard single-mode fiber in the
// 1550 nm window.
var (
	DefaultFiberLength = 50.0   // km
	DefaultAttenuation = 0.2    // dB/km
	DefaultBeta2       = -21.27 // ps²/km
	DefaultBeta3       = 0.12   // ps³/km
	DefaultDGDelay     = 0.1    // ps/km
	DefaultGamma       = 1.3    // W⁻¹·km⁻¹
	DefaultFFTSamples  = 1024
	DefaultStepSize    = 0.1 // km
)

// sampleInterval is the assumed spacing of the simulation time axis.
const sampleInterval = 1e-12 // 1 ps

// A ChannelOpts packages together the arguments necessary to construct a new
// Channel. Physical parameters are given in practical units and normalized
// internally; zero is a legitimate value for any of them, so defaults are
// not inferred from zero fields — use DefaultOpts for the standard bundle.
type ChannelOpts struct {
	// FiberLength is the total transmission distance, in km. Must be
	// positive.
	FiberLength float64

	// Attenuation is the fiber loss, in dB/km.
	Attenuation float64

	// Beta2 and Beta3 are the second- and third-order dispersion
	// coefficients, in ps²/km and ps³/km.
	Beta2, Beta3 float64

	// DGDelay is the differential group delay between the two polarization
	// modes, in ps/km. It is normalized and retained, but only applied to
	// the field when ApplyDGDelay is set.
	DGDelay float64

	// Gamma is the Kerr non-linearity coefficient, in W⁻¹·km⁻¹.
	Gamma float64

	// FFTSamples is the length of the simulation time axis. Must be
	// positive.
	FFTSamples int

	// StepSize is the SSFM spatial step, in km. Must be positive and no
	// larger than FiberLength. The span is covered by floor(L/dz) whole
	// steps; see PropagateRemainder for the leftover length.
	StepSize float64

	// Timeline receives the propagated signal. Must be non-nil.
	Timeline timeline.Publisher

	// PropagateRemainder takes one final partial step over whatever fiber
	// length is left beyond the last whole step. When unset that remainder
	// is dropped, matching the historical floor(L/dz) behavior.
	PropagateRemainder bool

	// ApplyDGDelay retards the y-polarized field against the x-polarized
	// field by DGDelay times the propagated distance. When unset the delay
	// is stored but inert.
	ApplyDGDelay bool

	// Logf receives a one-line progress report per propagated event.
	// Defaults to log.Printf.
	Logf func(format string, args ...interface{})
}

// DefaultOpts returns a ChannelOpts holding the default parameter bundle.
// The caller must still supply a Timeline.
func DefaultOpts() ChannelOpts {
	return ChannelOpts{
		FiberLength: DefaultFiberLength,
		Attenuation: DefaultAttenuation,
		Beta2:       DefaultBeta2,
		Beta3:       DefaultBeta3,
		DGDelay:     DefaultDGDelay,
		Gamma:       DefaultGamma,
		FFTSamples:  DefaultFFTSamples,
		StepSize:    DefaultStepSize,
	}
}

// A Channel is the propagation engine for one fiber span. Its normalized
// parameters and angular-frequency grid are fixed at construction and never
// mutated; each Propagate call owns all of its working state, so distinct
// events may be propagated concurrently on one Channel.
type Channel struct {
	length      float64 // km
	attenuation float64 // linear power multiplier per km
	beta2       float64 // s²/m
	beta3       float64 // s³/m
	dgDelay     float64 // s/m
	gamma       float64 // W⁻¹·km⁻¹
	samples     int
	stepSize    float64 // km

	propagateRemainder bool
	applyDGDelay       bool

	omega    []float64 // angular-frequency grid, rad/s, FFT bin order
	timeline timeline.Publisher
	logf     func(string, ...interface{})
}

// NewChannel returns a new Channel, configured in accordance with opts, or
// an error if the options are nonsensical.
func NewChannel(opts ChannelOpts) (*Channel, error) {
	if opts.FiberLength <= 0 {
		return nil, fmt.Errorf("%w: fiber length %v km", ErrConfig, opts.FiberLength)
	}
	if opts.StepSize <= 0 {
		return nil, fmt.Errorf("%w: step size %v km", ErrConfig, opts.StepSize)
	}
	if opts.StepSize > opts.FiberLength {
		return nil, fmt.Errorf("%w: step size %v km exceeds fiber length %v km",
			ErrConfig, opts.StepSize, opts.FiberLength)
	}
	if opts.FFTSamples <= 0 {
		return nil, fmt.Errorf("%w: FFT sample count %d", ErrConfig, opts.FFTSamples)
	}
	if opts.Timeline == nil {
		return nil, fmt.Errorf("%w: must provide Timeline", ErrConfig)
	}
	logf := opts.Logf
	if logf == nil {
		logf = log.Printf
	}
	return &Channel{
		length:             opts.FiberLength,
		attenuation:        units.DBPerKmToLinear(opts.Attenuation),
		beta2:              units.Beta2ToSI(opts.Beta2),
		beta3:              units.Beta3ToSI(opts.Beta3),
		dgDelay:            units.DelayToSI(opts.DGDelay),
		gamma:              opts.Gamma,
		samples:            opts.FFTSamples,
		stepSize:           opts.StepSize,
		propagateRemainder: opts.PropagateRemainder,
		applyDGDelay:       opts.ApplyDGDelay,
		omega:              angularFrequencies(opts.FFTSamples),
		timeline:           opts.Timeline,
		logf:               logf,
	}, nil
}

// Samples returns the configured length of the simulation time axis.
func (c *Channel) Samples() int { return c.samples }

// angularFrequencies returns the FFT-ordered angular-frequency axis for an
// n-sample time axis spaced at sampleInterval: zero, the positive bins up to
// Nyquist, then the negative bins.
func angularFrequencies(n int) []float64 {
	fft := fourier.NewCmplxFFT(n)
	w := make([]float64, n)
	for i := range w {
		w[i] = 2 * math.Pi * fft.Freq(i) / sampleInterval
	}
	return w
}
