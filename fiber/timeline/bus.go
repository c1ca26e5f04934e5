package timeline

// A Bus fans published events out to every subscribed Publisher, in
// subscription order. It lets several downstream components (a detector, a
// monitor) observe the same signal without the source knowing about them.
//
// A Bus is not safe for concurrent subscription and publication; wire it up
// before the simulation starts.
type Bus struct {
	subs []Publisher
}

// Subscribe registers p to receive every subsequently published event.
func (b *Bus) Subscribe(p Publisher) {
	b.subs = append(b.subs, p)
}

// Publish implements the Publisher interface.
func (b *Bus) Publish(src interface{}, eventTime float64, power, ex, ey, magnitude []float64) {
	for _, s := range b.subs {
		s.Publish(src, eventTime, power, ex, ey, magnitude)
	}
}
