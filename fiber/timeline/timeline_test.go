package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRetainsEvents(t *testing.T) {
	r := &Recorder{}
	_, ok := r.Last()
	assert.False(t, ok)

	r.Publish("ch", 1.5e-9, []float64{1, 2}, []float64{1, 0}, []float64{0, 1}, []float64{1, 1})
	r.Publish("ch", 2.5e-9, []float64{3}, nil, nil, nil)

	require.Len(t, r.Events, 2)
	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, 2.5e-9, last.EventTime)
	assert.Equal(t, []float64{3}, last.Power)
	assert.Equal(t, "ch", r.Events[0].Src)
	assert.Equal(t, []float64{1, 2}, r.Events[0].Power)
}

func TestBusFansOut(t *testing.T) {
	var bus Bus
	a, b := &Recorder{}, &Recorder{}
	bus.Subscribe(a)
	bus.Subscribe(b)

	var viaFunc int
	bus.Subscribe(PublisherFunc(func(_ interface{}, _ float64, _, _, _, _ []float64) {
		viaFunc++
	}))

	bus.Publish("src", 0, []float64{42}, nil, nil, nil)

	require.Len(t, a.Events, 1)
	require.Len(t, b.Events, 1)
	assert.Equal(t, a.Events[0].Power, b.Events[0].Power)
	assert.Equal(t, 1, viaFunc)
}
