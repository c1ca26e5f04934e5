package fiber

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// remainderTol is the shortest leftover span, in km, worth a partial step.
const remainderTol = 1e-9

// Propagate pushes one signal event through the fiber span and publishes
// the result to the timeline.
//
// eventTime is the timestamp of the event in seconds; t is the time axis and
// power the input optical power (both carried for the publish contract); ex
// and ey are the in-phase and quadrature field components; magnitude is the
// input field magnitude. Every array must have exactly Samples elements.
//
// The input arrays are not modified; the channel retains no reference to
// them or to the published result.
func (c *Channel) Propagate(eventTime float64, t, power, ex, ey, magnitude []float64) error {
	for _, in := range [][]float64{t, power, ex, ey, magnitude} {
		if len(in) != c.samples {
			return fmt.Errorf("%w: %d != %d", ErrShapeMismatch, len(in), c.samples)
		}
	}

	e := make([]complex128, c.samples)
	for i := range e {
		e[i] = complex(ex[i], ey[i])
	}

	fft := fourier.NewCmplxFFT(c.samples)
	steps := int(c.length / c.stepSize)
	dist := float64(steps) * c.stepSize
	for i := 0; i < steps; i++ {
		c.step(fft, e, c.stepSize)
	}
	if rem := c.length - dist; c.propagateRemainder && rem > remainderTol {
		c.step(fft, e, rem)
		dist += rem
	}
	if c.applyDGDelay {
		c.splitPolarizations(fft, e, dist)
	}

	exOut := make([]float64, c.samples)
	eyOut := make([]float64, c.samples)
	pOut := make([]float64, c.samples)
	magOut := make([]float64, c.samples)
	for i, s := range e {
		if cmplx.IsNaN(s) || cmplx.IsInf(s) {
			return fmt.Errorf("%w: sample %d", ErrUnstable, i)
		}
		exOut[i] = real(s)
		eyOut[i] = imag(s)
		pOut[i] = exOut[i]*exOut[i] + eyOut[i]*eyOut[i]
		magOut[i] = math.Sqrt(pOut[i])
	}

	c.logf("[%.3e s] signal propagated: Pout=%.2e W", eventTime, pOut[c.samples-1])
	c.timeline.Publish(c, eventTime, pOut, exOut, eyOut, magOut)
	return nil
}

// step advances the field by one symmetric split step of length dz km: half
// the non-linear rotation, the full linear operator in the frequency domain,
// the second half of the rotation, then attenuation over dz.
func (c *Channel) step(fft *fourier.CmplxFFT, e []complex128, dz float64) {
	c.applyNonlinearity(e, dz/2)

	freq := fft.Coefficients(nil, e)
	for i, d := range c.dispersionOperator(dz) {
		freq[i] *= d
	}
	fft.Sequence(e, freq)
	// Coefficients followed by Sequence scales by the transform length.
	norm := 1 / float64(c.samples)
	for i := range e {
		e[i] *= complex(norm, 0)
	}

	c.applyNonlinearity(e, dz/2)

	loss := complex(math.Pow(c.attenuation, dz), 0)
	for i := range e {
		e[i] *= loss
	}
}

// dispersionOperator returns the frequency-domain transfer function
//
//	D(ω) = exp(-i(β2/2)ω²dz - i(β3/6)ω³dz)
//
// for a linear step of length dz km, evaluated over the channel's frequency
// grid. The operator is pure phase: it redistributes phase across bins
// without altering energy, and composes additively in dz.
func (c *Channel) dispersionOperator(dz float64) []complex128 {
	d := make([]complex128, c.samples)
	for i, w := range c.omega {
		phase := -(c.beta2/2*w*w + c.beta3/6*w*w*w) * dz
		d[i] = cmplx.Exp(complex(0, phase))
	}
	return d
}

// applyNonlinearity rotates each sample in place by the self-phase
// modulation angle γ|E|²dz. Per-sample magnitudes are untouched and samples
// never couple.
func (c *Channel) applyNonlinearity(e []complex128, dz float64) {
	for i, s := range e {
		p := real(s)*real(s) + imag(s)*imag(s)
		e[i] = s * cmplx.Exp(complex(0, c.gamma*p*dz))
	}
}

// splitPolarizations applies the differential group delay accumulated over
// dist km by retarding the y-polarized field against the x-polarized field
// with a frequency-domain phase ramp.
func (c *Channel) splitPolarizations(fft *fourier.CmplxFFT, e []complex128, dist float64) {
	tau := c.dgDelay * dist
	ey := make([]complex128, c.samples)
	for i, s := range e {
		ey[i] = complex(imag(s), 0)
	}
	freq := fft.Coefficients(nil, ey)
	for i, w := range c.omega {
		freq[i] *= cmplx.Exp(complex(0, -w*tau))
	}
	fft.Sequence(ey, freq)
	norm := 1 / float64(c.samples)
	for i := range e {
		e[i] = complex(real(e[i]), real(ey[i])*norm)
	}
}
