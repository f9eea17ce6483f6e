// Package gesture turns pointer input into value scale interactions:
// dragging scrolls or zooms, the wheel zooms and a double click restores
// the auto-scaled range.
//
// Drivers translate input into pixel distances only. Whether a change is
// acceptable is decided by the Target.
package gesture

import "time"

// Target is the part of a value scale the drivers operate on.
// *valuescale.ValueScale implements it.
type Target interface {
	// ScrollOnPixels moves the visible range; positive distances move
	// it up.
	ScrollOnPixels(pixels float64) bool

	// ZoomOnPixels narrows (positive) or widens (negative) the visible
	// range.
	ZoomOnPixels(pixels float64) bool

	// SetNeedsAutoScale drops the visible range so the next layout pass
	// auto-scales.
	SetNeedsAutoScale()
}

// ----------------------------------------------------------------------------
// Pan

// State is the phase of a drag gesture.
type State int

const (
	Started State = iota
	Continued
	Finished
)

func (s State) String() string {
	switch s {
	case Started:
		return "started"
	case Continued:
		return "continued"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Mode selects what a drag does.
type Mode int

const (
	// Scroll drags the content: dragging down moves the visible range up.
	Scroll Mode = iota

	// Zoom stretches the axis: dragging up zooms in, dragging down zooms
	// out.
	Zoom
)

// Pan drives a Target from a vertical drag. The gesture reports its total
// translation since it started; Pan forwards the increments.
type Pan struct {
	Target Target
	Mode   Mode

	active bool
	last   float64 // translation already forwarded
}

// Update processes one drag event. translation is the vertical distance in
// pixels the pointer moved since the gesture started, positive downwards.
// It reports whether the target changed. Increments the target rejects
// are dropped, not accumulated.
func (p *Pan) Update(state State, translation float64) bool {
	switch state {
	case Started:
		p.active, p.last = true, 0
		return p.forward(translation)
	case Continued:
		if !p.active {
			return false
		}
		return p.forward(translation)
	case Finished:
		if !p.active {
			return false
		}
		changed := p.forward(translation)
		p.active, p.last = false, 0
		return changed
	}
	return false
}

// Active reports whether a drag is in progress.
func (p *Pan) Active() bool { return p.active }

func (p *Pan) forward(translation float64) bool {
	delta := translation - p.last
	p.last = translation
	if delta == 0 {
		return false
	}
	if p.Mode == Zoom {
		return p.Target.ZoomOnPixels(-delta)
	}
	return p.Target.ScrollOnPixels(delta)
}

// ----------------------------------------------------------------------------
// Wheel

// DefaultWheelStep is the zoom distance of one wheel notch in pixels.
const DefaultWheelStep = 10

// Wheel zooms a Target by a fixed pixel distance per wheel notch.
type Wheel struct {
	Target Target
	Step   float64 // pixels per notch; DefaultWheelStep if zero
}

// Scroll processes a wheel event. Positive notches (wheel turned away
// from the user) zoom in. Fractional notches from touch pads are scaled
// proportionally.
func (w Wheel) Scroll(notches float64) bool {
	if notches == 0 {
		return false
	}
	step := w.Step
	if step == 0 {
		step = DefaultWheelStep
	}
	return w.Target.ZoomOnPixels(notches * step)
}

// ----------------------------------------------------------------------------
// DoubleClick

// DefaultDoubleClickWindow is the longest time between the two clicks of
// a double click.
const DefaultDoubleClickWindow = 400 * time.Millisecond

// DoubleClick restores the auto-scaled range of a Target on a double
// click.
type DoubleClick struct {
	Target Target
	Window time.Duration // DefaultDoubleClickWindow if zero

	last time.Time
}

// Click processes a click at time at. It reports whether the click
// completed a double click and the target was reset.
func (d *DoubleClick) Click(at time.Time) bool {
	window := d.Window
	if window == 0 {
		window = DefaultDoubleClickWindow
	}
	if !d.last.IsZero() && at.Sub(d.last) <= window && !at.Before(d.last) {
		d.last = time.Time{}
		d.Target.SetNeedsAutoScale()
		return true
	}
	d.last = at
	return false
}
