package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/valuescale"
	"github.com/vdobler/valuescale/data"
)

// recorder is a Target logging every call.
type recorder struct {
	scrolls, zooms []float64
	resets         int
	reject         bool
}

func (r *recorder) ScrollOnPixels(px float64) bool {
	r.scrolls = append(r.scrolls, px)
	return !r.reject
}

func (r *recorder) ZoomOnPixels(px float64) bool {
	r.zooms = append(r.zooms, px)
	return !r.reject
}

func (r *recorder) SetNeedsAutoScale() { r.resets++ }

func TestPanForwardsIncrements(t *testing.T) {
	r := &recorder{}
	p := &Pan{Target: r}

	assert.True(t, p.Update(Started, 2))
	assert.True(t, p.Active())
	assert.True(t, p.Update(Continued, 5))
	assert.False(t, p.Update(Continued, 5), "no movement")
	assert.True(t, p.Update(Continued, 1))
	assert.True(t, p.Update(Finished, 4))
	assert.False(t, p.Active())

	assert.Equal(t, []float64{2, 3, -4, 3}, r.scrolls)
	assert.Empty(t, r.zooms)
}

func TestPanZoomMode(t *testing.T) {
	r := &recorder{}
	p := &Pan{Target: r, Mode: Zoom}
	p.Update(Started, 0)
	p.Update(Continued, -6) // drag up
	p.Update(Finished, 4)   // drag down
	assert.Equal(t, []float64{6, -10}, r.zooms)
}

func TestPanRejectedIncrementsAreDropped(t *testing.T) {
	r := &recorder{reject: true}
	p := &Pan{Target: r}
	assert.False(t, p.Update(Started, 0))
	assert.False(t, p.Update(Continued, 10))
	r.reject = false
	assert.True(t, p.Update(Continued, 12))
	assert.Equal(t, []float64{10, 2}, r.scrolls)
}

func TestPanIgnoresEventsOutsideGesture(t *testing.T) {
	r := &recorder{}
	p := &Pan{Target: r}
	assert.False(t, p.Update(Continued, 10))
	assert.False(t, p.Update(Finished, 10))
	assert.Empty(t, r.scrolls)
}

func TestWheel(t *testing.T) {
	r := &recorder{}
	assert.True(t, Wheel{Target: r}.Scroll(1))
	assert.True(t, Wheel{Target: r, Step: 4}.Scroll(-0.5))
	assert.False(t, Wheel{Target: r}.Scroll(0))
	assert.Equal(t, []float64{DefaultWheelStep, -2}, r.zooms)
}

func TestDoubleClick(t *testing.T) {
	r := &recorder{}
	d := &DoubleClick{Target: r}
	t0 := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, d.Click(t0))
	assert.True(t, d.Click(t0.Add(200*time.Millisecond)))
	assert.Equal(t, 1, r.resets)

	// A third click starts a new pair.
	assert.False(t, d.Click(t0.Add(300*time.Millisecond)))
	assert.False(t, d.Click(t0.Add(time.Second)), "too slow")
	assert.True(t, d.Click(t0.Add(time.Second+100*time.Millisecond)))
	assert.Equal(t, 2, r.resets)
}

func TestDriveValueScale(t *testing.T) {
	panel := valuescale.NewSeriesPanel(100, data.Values{0, 5, 10})
	s := valuescale.NewValueScale(panel)
	s.EnsureResolved()

	p := &Pan{Target: s}
	assert.False(t, p.Update(Started, 0), "no movement yet")
	require.True(t, p.Update(Continued, 10))
	got, ok := s.VisibleRange()
	require.True(t, ok)
	assert.InDelta(t, 1, got.Min, 1e-9)
	assert.InDelta(t, 11, got.Max, 1e-9)

	require.True(t, Wheel{Target: s}.Scroll(1))
	got, _ = s.VisibleRange()
	assert.InDelta(t, 2, got.Min, 1e-9)
	assert.InDelta(t, 10, got.Max, 1e-9)

	d := &DoubleClick{Target: s}
	now := time.Now()
	d.Click(now)
	require.True(t, d.Click(now.Add(time.Millisecond)))
	assert.True(t, s.NeedsAutoScale())
	s.EnsureResolved()
	got, _ = s.VisibleRange()
	assert.Equal(t, valuescale.Interval{Min: 0, Max: 10}, got)
}
