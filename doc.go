// Package valuescale implements the vertical value axis of a chart panel.
//
// It builds on gonum.org/v1/plot for text metrics, tick types and drawing.
//
// Value scale
//
// A ValueScale owns the visible value range of one panel. The range is
// either unresolved, in which case the next layout pass (EnsureResolved,
// Calibrate or PreferredWidth) auto-scales it to the natural range of the
// panel's data, or resolved. Scrolling and zooming move the range but are
// refused if the result would
//   1. be narrower than MinValueRange,
//   2. leave the allowed values MinAllowedValue/MaxAllowedValue,
//   3. reach further beyond the natural range than the allowed value
//      ratios permit, or
//   4. show the natural range too small or too large according to the
//      value range ratios.
// The optional Range override widens auto-scaled ranges and clamps
// scrolled and zoomed ones.
//
// Projection and calibration
//
// A Projection maps values to pixel rows counted from the top of the panel
// layer. A Calibrator uses it to place labelled major ticks and unlabelled
// minor ticks: the IntervalCalibrator puts labels on multiples of a value
// interval keeping them apart by the label height plus a minimal offset,
// the FixedCalibrator spaces a fixed number of labels evenly.
//
// State
//
// Options, formatter and calibrator of a scale round-trip through State,
// which encodes to JSON.
package valuescale
