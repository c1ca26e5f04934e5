// Package timeline defines the contract between physical-layer components
// and the discrete-event framework that drives them.
package timeline

// A Publisher accepts the output of a physical-layer component after it has
// finished processing a signal event.
type Publisher interface {
	// Publish hands the processed signal to the next stage:
	//  - src identifies the component reporting the result
	//  - eventTime is the timestamp of the originating event, in seconds
	//  - power, ex, ey and magnitude are per-sample arrays over the
	//    simulation time axis: optical power, the two quadrature field
	//    components, and the field magnitude.
	Publish(src interface{}, eventTime float64, power, ex, ey, magnitude []float64)
}

// PublisherFunc adapts a plain function to the Publisher interface.
type PublisherFunc func(src interface{}, eventTime float64, power, ex, ey, magnitude []float64)

// Publish implements the Publisher interface.
func (f PublisherFunc) Publish(src interface{}, eventTime float64, power, ex, ey, magnitude []float64) {
	f(src, eventTime, power, ex, ey, magnitude)
}
