package timeline

// An Event is one published signal, retained verbatim.
type Event struct {
	Src       interface{}
	EventTime float64
	Power     []float64
	Ex        []float64
	Ey        []float64
	Magnitude []float64
}

// A Recorder is a Publisher that retains every published event in memory.
// It stands in for the real event framework when running components
// headlessly, e.g. in tests.
type Recorder struct {
	Events []Event
}

// Publish implements the Publisher interface.
func (r *Recorder) Publish(src interface{}, eventTime float64, power, ex, ey, magnitude []float64) {
	r.Events = append(r.Events, Event{
		Src:       src,
		EventTime: eventTime,
		Power:     power,
		Ex:        ex,
		Ey:        ey,
		Magnitude: magnitude,
	})
}

// Last returns the most recently published event, or false if nothing has
// been published yet.
func (r *Recorder) Last() (Event, bool) {
	if len(r.Events) == 0 {
		return Event{}, false
	}
	return r.Events[len(r.Events)-1], true
}
