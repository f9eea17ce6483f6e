package valuescale

import (
	"math"

	"github.com/sirupsen/logrus"
)

// MinInterval is the smallest interval an IntervalCalibrator places
// labels at. Smaller intervals fall back to range placement.
const MinInterval = 1e-10

// rowEpsilon absorbs floating point noise when comparing pixel rows.
const rowEpsilon = 1e-6

// IntervalCalibrator places major ticks at multiples of a fixed value
// interval, skipping multiples whose labels would overlap the previous
// label. If that yields less than two ticks it falls back to labelling
// the top and bottom of the frame.
type IntervalCalibrator struct {
	opts IntervalOptions
}

// NewIntervalCalibrator returns a calibrator with options o.
func NewIntervalCalibrator(o IntervalOptions) (*IntervalCalibrator, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &IntervalCalibrator{opts: o}, nil
}

// Options returns the options of c.
func (c *IntervalCalibrator) Options() IntervalOptions { return c.opts }

// State implements Calibrator.
func (c *IntervalCalibrator) State() CalibratorState {
	return CalibratorState{Kind: IntervalCalibration, Interval: c.opts}
}

// Calibrate implements Calibrator.
func (c *IntervalCalibrator) Calibrate(a Axis) Calibration {
	visible, ok := a.VisibleRange()
	frame := a.LabelFrame()
	if !ok || !(frame.Height > 0) {
		return Calibration{}
	}

	major := c.intervalMajorTicks(a, visible, frame)
	if len(major) <= 1 {
		logger.WithFields(logrus.Fields{
			"interval": c.opts.Interval,
			"visible":  visible.String(),
			"ticks":    len(major),
		}).Debug("interval calibration degenerate, using range ticks")
		major = c.rangeMajorTicks(a, frame)
	}
	return Calibration{
		Major: major,
		Minor: minorTicks(major, frame, c.opts.MinorTicksCount),
	}
}

func (c *IntervalCalibrator) labelOffset(a Axis) float64 {
	return a.TextHeight() + c.opts.MinValuesOffset
}

// intervalMajorTicks walks the frame top to bottom and labels multiples
// of the interval. Values strictly decrease, rows strictly increase and
// adjacent texts differ.
func (c *IntervalCalibrator) intervalMajorTicks(a Axis, visible Interval, frame Frame) []MajorTick {
	interval := c.opts.Interval
	if interval < MinInterval || visible.Width() <= interval {
		return nil
	}

	proj := a.Projection()
	labelOffset := c.labelOffset(a)
	advance := math.Max(labelOffset, 1)
	bottom := frame.Bottom()

	var (
		ticks     []MajorTick
		prevValue float64
		started   bool
		lastY     float64
	)
	for y := frame.Top; y <= bottom; {
		value := floorToMultiple(proj.ValueByY(y), interval)
		if started && !(value < prevValue) {
			value = prevValue - interval
		}

		valueY := proj.YByValue(value)
		if valueY > bottom+rowEpsilon || !finite(valueY) {
			break
		}
		if len(ticks) > 0 && (valueY <= lastY || valueY < lastY+labelOffset-rowEpsilon) {
			// Inside the previous label: continue below it.
			y = math.Max(y+1, lastY+labelOffset)
			continue
		}

		text := a.FormatValue(value)
		prevValue, started = value, true
		if len(ticks) > 0 && text == ticks[len(ticks)-1].Text {
			y = math.Max(y, valueY) + 1
			continue
		}

		ticks = append(ticks, MajorTick{Y: valueY, Value: value, Text: text})
		lastY = valueY
		y = math.Max(y, valueY) + advance
	}
	return ticks
}

// rangeMajorTicks labels the top and the bottom of the frame if there is
// room for two labels and the midpoint otherwise.
func (c *IntervalCalibrator) rangeMajorTicks(a Axis, frame Frame) []MajorTick {
	proj := a.Projection()
	top, bottom := frame.Top, frame.Bottom()
	if bottom-top >= c.labelOffset(a) {
		high, low := tickAt(a, proj, top), tickAt(a, proj, bottom)
		if high.Text != low.Text {
			return []MajorTick{high, low}
		}
	}
	return []MajorTick{tickAt(a, proj, top+(bottom-top)/2)}
}

func tickAt(a Axis, proj Projection, y float64) MajorTick {
	v := proj.ValueByY(y)
	return MajorTick{Y: y, Value: v, Text: a.FormatValue(v)}
}

// floorToMultiple rounds v down to a multiple of step. Values a tiny bit
// below a multiple (projection noise) are rounded to that multiple.
func floorToMultiple(v, step float64) float64 {
	return math.Floor(v/step+1e-9) * step
}

// NiceInterval returns the smallest step of the form {1,2,5}·10^k which
// divides width into at most maxTicks steps. It returns 0 if width is not
// a positive finite number or maxTicks < 1.
func NiceInterval(width float64, maxTicks int) float64 {
	if !finite(width) || width <= 0 || maxTicks < 1 {
		return 0
	}
	raw := width / float64(maxTicks)
	mag := math.Pow10(int(math.Floor(math.Log10(raw))))
	for _, m := range []float64{1, 2, 5} {
		if step := m * mag; step >= raw {
			return step
		}
	}
	return 10 * mag
}
