package valuescale

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// ----------------------------------------------------------------------------
// Panel

// NaturalRangeProvider reports the natural value range of a panel: the
// min and max of all values plotted for the currently visible records.
// The bool result is false if there is no finite value.
type NaturalRangeProvider interface {
	AutoScaledMinMaxValues() (Interval, bool)
}

// Panel is what a ValueScale needs to know about the chart panel it
// belongs to. All methods are queried on demand and never cached.
type Panel interface {
	NaturalRangeProvider

	// LayerHeight returns the height of the panel layer in pixels.
	LayerHeight() float64

	// PanelPadding returns the padding between the layer border and
	// the plotted content.
	PanelPadding() Padding
}

// ----------------------------------------------------------------------------
// ValueScale

// ValueScale is the vertical value axis of a chart panel.
//
// It owns the visible value range, projects values to pixel rows and back,
// keeps scrolling and zooming within the configured bounds and computes
// the tick marks through its Calibrator.
//
// A ValueScale is not safe for concurrent use; all calls are expected
// from the goroutine driving layout and input of its panel.
type ValueScale struct {
	panel Panel

	// visible is only meaningful if resolved is set. An unresolved scale
	// auto-scales on the next layout pass.
	visible  Interval
	resolved bool

	opts Options // visible range fields are kept in visible/resolved

	calibrator Calibrator
	projection Projection
	formatter  Formatter
	measurer   TextMeasurer
}

// NewValueScale returns an unresolved scale for panel with default
// options, an IntervalCalibrator, a LinearProjection and a decimal
// formatter for DefaultLocale.
func NewValueScale(panel Panel) *ValueScale {
	if panel == nil {
		panic("valuescale: nil panel")
	}
	s := &ValueScale{
		panel:    panel,
		opts:     DefaultOptions(),
		measurer: DefaultMeasurer(),
	}
	s.projection = NewLinearProjection(s)
	s.calibrator, _ = NewIntervalCalibrator(DefaultIntervalOptions())
	st := DefaultFormatterState()
	s.formatter, _ = NewDecimalFormatter(st.Locale, st.Decimals)
	return s
}

// Frame returns the pixel frame values are projected into: the panel
// layer without the panel padding.
func (s *ValueScale) Frame() Frame {
	pad := s.panel.PanelPadding()
	h := s.panel.LayerHeight() - pad.Top - pad.Bottom
	if !(h > 0) {
		h = 0
	}
	return Frame{Top: pad.Top, Height: h}
}

// LabelFrame returns the part of Frame labels may be placed in: Frame
// without the vertical padding of the scale.
func (s *ValueScale) LabelFrame() Frame {
	f := s.Frame()
	f.Top += s.opts.Padding.Top
	f.Height -= s.opts.Padding.Top + s.opts.Padding.Bottom
	if f.Height < 0 {
		f.Height = 0
	}
	return f
}

// VisibleRange returns the visible range and whether it is resolved.
func (s *ValueScale) VisibleRange() (Interval, bool) {
	return s.visible, s.resolved
}

// NeedsAutoScale reports whether the visible range is unresolved.
func (s *ValueScale) NeedsAutoScale() bool { return !s.resolved }

// SetNeedsAutoScale drops the visible range; the next layout pass
// auto-scales.
func (s *ValueScale) SetNeedsAutoScale() {
	s.visible, s.resolved = Interval{}, false
	debugScale(s, "needs auto-scale", nil)
}

// EnsureResolved auto-scales s if its visible range is unresolved.
// It is the layout pass hook of the scale.
func (s *ValueScale) EnsureResolved() {
	if !s.resolved {
		s.AutoScale()
	}
}

// naturalRange returns the natural range of the panel made usable as a
// visible range: [-1,1] without data, widened around degenerate data.
func (s *ValueScale) naturalRange() Interval {
	r, ok := s.panel.AutoScaledMinMaxValues()
	if !ok || !r.Valid() {
		return Interval{Min: -1, Max: 1}
	}
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	switch w := r.Width(); {
	case w == 0:
		r.Min--
		r.Max++
	case w < MinValueRange:
		mid := r.Min + w/2
		r.Min, r.Max = mid-MinValueRange/2, mid+MinValueRange/2
	}
	return r
}

// AutoScale sets the visible range to the natural range of the panel,
// widened to include the edges of the range override. It bypasses the
// checks of CanSetVisibleValueRange as it defines the range these checks
// refer to.
func (s *ValueScale) AutoScale() {
	r := s.naturalRange()
	if s.opts.Range.Min.Set {
		r.Min = math.Min(r.Min, s.opts.Range.Min.Value)
	}
	if s.opts.Range.Max.Set {
		r.Max = math.Max(r.Max, s.opts.Range.Max.Value)
	}
	s.visible, s.resolved = r, true
	debugScale(s, "auto-scaled", nil)
}

// SetVisibleValueRange sets the visible range without checking it against
// the allowed bounds. Non-finite values and ranges narrower than
// MinValueRange are configuration errors.
func (s *ValueScale) SetVisibleValueRange(min, max float64) error {
	if err := checkVisibleRange(min, max); err != nil {
		return err
	}
	s.visible, s.resolved = Interval{Min: min, Max: max}, true
	return nil
}

// CanSetVisibleValueRange reports whether [newMin, newMax] is an
// acceptable visible range for scrolling and zooming:
//   1. it is at least MinValueRange wide,
//   2. it stays within the allowed values,
//   3. it does not reach further below (above) the natural range than the
//      allowed value ratios permit,
//   4. the ratio naturalWidth/visibleWidth lies within the value range
//      ratios.
func (s *ValueScale) CanSetVisibleValueRange(newMin, newMax float64) bool {
	if !finite(newMin) || !finite(newMax) {
		return false
	}
	width := newMax - newMin
	if width < MinValueRange {
		return false
	}
	if s.opts.MinAllowedValue.Below(newMin) || s.opts.MaxAllowedValue.Above(newMax) {
		return false
	}

	natural := s.naturalRange()
	if (natural.Min-newMin)/width > s.opts.MinAllowedValueRatio {
		return false
	}
	if (newMax-natural.Max)/width > s.opts.MaxAllowedValueRatio {
		return false
	}

	ratio := natural.Width() / width
	return ratio >= s.opts.MinValueRangeRatio && ratio <= s.opts.MaxValueRangeRatio
}

// rangeBounds returns how far the visible range may move: the range
// override edges, relaxed to the current range if that already lies
// beyond them.
func (s *ValueScale) rangeBounds() (lo, hi Limit) {
	lo, hi = s.opts.Range.Min, s.opts.Range.Max
	if lo.Set && s.visible.Min < lo.Value {
		lo.Value = s.visible.Min
	}
	if hi.Set && s.visible.Max > hi.Value {
		hi.Value = s.visible.Max
	}
	return lo, hi
}

// ScrollOnPixels scrolls by a pixel distance. Positive distances move the
// visible range up (the content follows a downward drag).
func (s *ValueScale) ScrollOnPixels(pixels float64) bool {
	if !s.resolved {
		return false
	}
	return s.ScrollOnValue(pixels * s.projection.ValuePerPixel())
}

// ScrollOnValue moves both edges of the visible range by offset. The move
// is shortened to stay within the range override. It reports whether the
// visible range changed; on false the scale is unchanged.
func (s *ValueScale) ScrollOnValue(offset float64) bool {
	if !s.resolved || !finite(offset) || offset == 0 {
		return false
	}

	next := Interval{Min: s.visible.Min + offset, Max: s.visible.Max + offset}
	lo, hi := s.rangeBounds()
	if lo.Below(next.Min) {
		shift := lo.Value - next.Min
		next.Min, next.Max = next.Min+shift, next.Max+shift
	}
	if hi.Above(next.Max) {
		shift := next.Max - hi.Value
		next.Min, next.Max = next.Min-shift, next.Max-shift
	}
	if lo.Below(next.Min) || next.Equal(s.visible) {
		return false
	}

	if !s.CanSetVisibleValueRange(next.Min, next.Max) {
		debugScale(s, "scroll rejected", logrus.Fields{"candidate": next.String()})
		return false
	}
	s.visible = next
	return true
}

// ZoomOnPixels zooms by a pixel distance. Positive distances zoom in.
func (s *ValueScale) ZoomOnPixels(pixels float64) bool {
	if !s.resolved {
		return false
	}
	return s.ZoomOnValue(pixels * s.projection.ValuePerPixel())
}

// ZoomOnValue moves the min edge of the visible range up by offset and the
// max edge down by offset (positive offsets zoom in, negative ones zoom
// out). If that range is not acceptable, moving only the max edge and then
// moving only the min edge are tried. The result is clamped to the range
// override. It reports whether the visible range changed; on false the
// scale is unchanged.
func (s *ValueScale) ZoomOnValue(offset float64) bool {
	if !s.resolved || !finite(offset) || offset == 0 {
		return false
	}

	cur := s.visible
	candidates := []Interval{
		{Min: cur.Min + offset, Max: cur.Max - offset},
		{Min: cur.Min, Max: cur.Max - offset},
		{Min: cur.Min + offset, Max: cur.Max},
	}
	var next Interval
	accepted := false
	for _, c := range candidates {
		next = c
		if s.CanSetVisibleValueRange(c.Min, c.Max) {
			accepted = true
			break
		}
	}
	if !accepted && !s.opts.Range.IsSet() {
		debugScale(s, "zoom rejected", logrus.Fields{"offset": offset})
		return false
	}

	lo, hi := s.rangeBounds()
	if lo.Below(next.Min) {
		next.Min = lo.Value
	}
	if hi.Above(next.Max) {
		next.Max = hi.Value
	}
	if next.Width() < MinValueRange || next.Equal(cur) {
		return false
	}
	if s.opts.MinAllowedValue.Below(next.Min) || s.opts.MaxAllowedValue.Above(next.Max) {
		return false
	}
	s.visible = next
	return true
}

// ----------------------------------------------------------------------------
// Labels and ticks

// FormatValue returns the label text of v.
func (s *ValueScale) FormatValue(v float64) string { return s.formatter.Format(v) }

// TextHeight returns the height of a label.
func (s *ValueScale) TextHeight() float64 { return s.measurer.Height() }

// PreferredWidth returns the width the axis needs: the wider of the min
// and max labels plus the horizontal padding and the major tick mark.
func (s *ValueScale) PreferredWidth() float64 {
	s.EnsureResolved()
	w := math.Max(
		s.measurer.Width(s.FormatValue(s.visible.Min)),
		s.measurer.Width(s.FormatValue(s.visible.Max)))
	return w + s.opts.Padding.Left + s.opts.Padding.Right + s.opts.MajorTickMarkLength
}

// Calibrate resolves the visible range if needed and computes the tick
// marks.
func (s *ValueScale) Calibrate() Calibration {
	s.EnsureResolved()
	return s.calibrator.Calibrate(s)
}

// ----------------------------------------------------------------------------
// Collaborators

// Projection returns the projection of s.
func (s *ValueScale) Projection() Projection { return s.projection }

// SetProjection replaces the projection of s.
func (s *ValueScale) SetProjection(p Projection) error {
	if p == nil {
		return invalid("projection", "nil")
	}
	s.projection = p
	return nil
}

// Calibrator returns the calibrator of s.
func (s *ValueScale) Calibrator() Calibrator { return s.calibrator }

// SetCalibrator replaces the calibrator of s.
func (s *ValueScale) SetCalibrator(c Calibrator) error {
	if c == nil {
		return invalid("calibrator", "nil")
	}
	s.calibrator = c
	return nil
}

// Formatter returns the formatter of s.
func (s *ValueScale) Formatter() Formatter { return s.formatter }

// SetFormatter replaces the formatter of s.
func (s *ValueScale) SetFormatter(f Formatter) error {
	if f == nil {
		return invalid("formatter", "nil")
	}
	s.formatter = f
	return nil
}

// SetLocale rebuilds the formatter for locale keeping its other settings.
func (s *ValueScale) SetLocale(locale string) error {
	st := s.formatter.State()
	st.Locale = locale
	f, err := NewFormatter(st)
	if err != nil {
		return err
	}
	s.formatter = f
	return nil
}

// SetTextMeasurer replaces the text measurer of s.
func (s *ValueScale) SetTextMeasurer(m TextMeasurer) error {
	if m == nil {
		return errors.New("valuescale: nil text measurer")
	}
	s.measurer = m
	return nil
}

// ----------------------------------------------------------------------------
// Options

// Options returns the current options including the visible range.
func (s *ValueScale) Options() Options {
	o := s.opts
	if s.resolved {
		o.MinVisibleValue, o.MaxVisibleValue = LimitOf(s.visible.Min), LimitOf(s.visible.Max)
	} else {
		o.MinVisibleValue, o.MaxVisibleValue = NoLimit, NoLimit
	}
	return o
}

// SetOptions validates o and replaces all options of s.
func (s *ValueScale) SetOptions(o Options) error {
	if err := o.Validate(); err != nil {
		return err
	}
	s.applyOptions(o)
	return nil
}

func (s *ValueScale) applyOptions(o Options) {
	if o.MinVisibleValue.Set {
		s.visible, s.resolved = Interval{Min: o.MinVisibleValue.Value, Max: o.MaxVisibleValue.Value}, true
	} else {
		s.visible, s.resolved = Interval{}, false
	}
	o.MinVisibleValue, o.MaxVisibleValue = NoLimit, NoLimit
	s.opts = o
}

// update applies change to a copy of the options and installs the copy
// if it is valid.
func (s *ValueScale) update(change func(o *Options)) error {
	o := s.Options()
	change(&o)
	return s.SetOptions(o)
}

// SetMinAllowedValue sets (or with NoLimit clears) the absolute lower
// bound of the visible range.
func (s *ValueScale) SetMinAllowedValue(l Limit) error {
	return s.update(func(o *Options) { o.MinAllowedValue = l })
}

// SetMaxAllowedValue sets (or with NoLimit clears) the absolute upper
// bound of the visible range.
func (s *ValueScale) SetMaxAllowedValue(l Limit) error {
	return s.update(func(o *Options) { o.MaxAllowedValue = l })
}

func (s *ValueScale) SetMinAllowedValueRatio(r float64) error {
	return s.update(func(o *Options) { o.MinAllowedValueRatio = r })
}

func (s *ValueScale) SetMaxAllowedValueRatio(r float64) error {
	return s.update(func(o *Options) { o.MaxAllowedValueRatio = r })
}

// SetMinValueRangeRatio sets the minimal naturalWidth/visibleWidth ratio;
// r must lie in [0,1].
func (s *ValueScale) SetMinValueRangeRatio(r float64) error {
	return s.update(func(o *Options) { o.MinValueRangeRatio = r })
}

// SetMaxValueRangeRatio sets the maximal naturalWidth/visibleWidth ratio;
// r must be at least 1.
func (s *ValueScale) SetMaxValueRangeRatio(r float64) error {
	return s.update(func(o *Options) { o.MaxValueRangeRatio = r })
}

func (s *ValueScale) SetMajorTickMarkLength(l float64) error {
	return s.update(func(o *Options) { o.MajorTickMarkLength = l })
}

func (s *ValueScale) SetMinorTickMarkLength(l float64) error {
	return s.update(func(o *Options) { o.MinorTickMarkLength = l })
}

func (s *ValueScale) SetPadding(p Padding) error {
	return s.update(func(o *Options) { o.Padding = p })
}

// SetRange sets the range override.
func (s *ValueScale) SetRange(r Range) error {
	return s.update(func(o *Options) { o.Range = r })
}
