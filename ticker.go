package valuescale

import (
	"gonum.org/v1/plot"
)

// Ticker lets a gonum/plot axis use the calibrator, formatter and frame
// of a scale. It implements plot.Ticker.
type Ticker struct {
	Scale *ValueScale
}

var _ plot.Ticker = Ticker{}

// Ticks returns the ticks the scale's calibrator places for the range
// [min, max]. Minor ticks have an empty label. The scale is not modified.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	if !finite(min) || !finite(max) || max-min <= 0 {
		return nil
	}
	a := &rangeAxis{ValueScale: t.Scale, visible: Interval{Min: min, Max: max}}
	a.proj = NewLinearProjection(a)
	return PlotTicks(t.Scale.calibrator.Calibrate(a), a.proj)
}

// PlotTicks converts a calibration to gonum/plot ticks: the major ticks in
// increasing value order followed by the minor ticks, whose values are
// recovered with proj.
func PlotTicks(c Calibration, proj Projection) []plot.Tick {
	ticks := make([]plot.Tick, 0, len(c.Major)+len(c.Minor))
	for i := len(c.Major) - 1; i >= 0; i-- {
		ticks = append(ticks, plot.Tick{Value: c.Major[i].Value, Label: c.Major[i].Text})
	}
	for i := len(c.Minor) - 1; i >= 0; i-- {
		ticks = append(ticks, plot.Tick{Value: proj.ValueByY(c.Minor[i].Y)})
	}
	return ticks
}

// rangeAxis is a scale seen with a different visible range.
type rangeAxis struct {
	*ValueScale
	visible Interval
	proj    Projection
}

func (a *rangeAxis) VisibleRange() (Interval, bool) { return a.visible, true }
func (a *rangeAxis) Projection() Projection         { return a.proj }
