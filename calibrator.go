package valuescale

import (
	"encoding/json"
	"fmt"
)

// ----------------------------------------------------------------------------
// Ticks

// A MajorTick is a labelled tick mark.
type MajorTick struct {
	Y     float64 // pixel row
	Value float64
	Text  string
}

// A MinorTick is an unlabelled tick mark.
type MinorTick struct {
	Y float64
}

// Calibration is the result of one calibration pass. Major ticks are
// ordered top to bottom, i.e. by increasing Y and decreasing Value.
type Calibration struct {
	Major []MajorTick
	Minor []MinorTick
}

// ----------------------------------------------------------------------------
// Calibrator

// Axis is the view of a scale a Calibrator works on. ValueScale
// implements it.
type Axis interface {
	// Projection converts between values and pixel rows.
	Projection() Projection

	// VisibleRange returns the visible range and whether it is resolved.
	VisibleRange() (Interval, bool)

	// LabelFrame returns the rows labels may be placed in.
	LabelFrame() Frame

	// FormatValue returns the label text of v.
	FormatValue(v float64) string

	// TextHeight returns the height of a label.
	TextHeight() float64
}

// A Calibrator computes the tick marks of an axis. Calibrators keep no
// state between passes.
type Calibrator interface {
	Calibrate(a Axis) Calibration
	State() CalibratorState
}

// CalibratorKind discriminates the calibrator variants.
type CalibratorKind string

const (
	IntervalCalibration CalibratorKind = "interval"
	FixedCalibration    CalibratorKind = "fixed"
)

// IntervalOptions configure an IntervalCalibrator.
type IntervalOptions struct {
	// Interval is the value step between labels. Intervals below
	// MinInterval disable interval placement.
	Interval float64 `json:"interval"`

	// MinValuesOffset is the minimal free space between two labels in
	// pixels.
	MinValuesOffset float64 `json:"minValuesOffset"`

	// MinorTicksCount is the number of segments the space between two
	// major ticks is divided into by minor ticks.
	MinorTicksCount int `json:"minorTicksCount"`
}

// FixedOptions configure a FixedCalibrator.
type FixedOptions struct {
	// MajorTicksCount is the number of evenly spaced major ticks.
	MajorTicksCount int `json:"majorTicksCount"`

	// MinorTicksCount is the number of segments the space between two
	// major ticks is divided into by minor ticks.
	MinorTicksCount int `json:"minorTicksCount"`
}

// Default calibrator options.
const (
	DefaultMinValuesOffset = 10
	DefaultMinorTicksCount = 2
	DefaultMajorTicksCount = 3
)

// DefaultIntervalOptions returns the options of a new IntervalCalibrator.
func DefaultIntervalOptions() IntervalOptions {
	return IntervalOptions{
		MinValuesOffset: DefaultMinValuesOffset,
		MinorTicksCount: DefaultMinorTicksCount,
	}
}

// DefaultFixedOptions returns the options of a new FixedCalibrator.
func DefaultFixedOptions() FixedOptions {
	return FixedOptions{
		MajorTicksCount: DefaultMajorTicksCount,
		MinorTicksCount: DefaultMinorTicksCount,
	}
}

func (o IntervalOptions) validate() error {
	if !finite(o.Interval) || o.Interval < 0 {
		return invalid("interval", "%v must be finite and non-negative", o.Interval)
	}
	if !finite(o.MinValuesOffset) || o.MinValuesOffset < 0 {
		return invalid("minValuesOffset", "%v must be finite and non-negative", o.MinValuesOffset)
	}
	if o.MinorTicksCount < 0 {
		return invalid("minorTicksCount", "%d is negative", o.MinorTicksCount)
	}
	return nil
}

func (o FixedOptions) validate() error {
	if o.MajorTicksCount < 2 {
		return invalid("majorTicksCount", "%d is less than 2", o.MajorTicksCount)
	}
	if o.MinorTicksCount < 0 {
		return invalid("minorTicksCount", "%d is negative", o.MinorTicksCount)
	}
	return nil
}

// CalibratorState is the persisted form of a Calibrator: a tagged
// variant where Kind selects which of the option structs is in use.
type CalibratorState struct {
	Kind     CalibratorKind
	Interval IntervalOptions
	Fixed    FixedOptions
}

// DefaultCalibratorState is the state of the calibrator of a new scale.
func DefaultCalibratorState() CalibratorState {
	return CalibratorState{Kind: IntervalCalibration, Interval: DefaultIntervalOptions()}
}

// NewCalibrator builds the calibrator described by st.
func NewCalibrator(st CalibratorState) (Calibrator, error) {
	switch st.Kind {
	case IntervalCalibration:
		return NewIntervalCalibrator(st.Interval)
	case FixedCalibration:
		return NewFixedCalibrator(st.Fixed)
	}
	return nil, invalid("calibrator", "unknown kind %q", st.Kind)
}

type intervalWire struct {
	Kind CalibratorKind `json:"kind"`
	IntervalOptions
}

type fixedWire struct {
	Kind CalibratorKind `json:"kind"`
	FixedOptions
}

// MarshalJSON writes the options of the selected variant next to the
// "kind" discriminator.
func (st CalibratorState) MarshalJSON() ([]byte, error) {
	switch st.Kind {
	case IntervalCalibration:
		return json.Marshal(intervalWire{st.Kind, st.Interval})
	case FixedCalibration:
		return json.Marshal(fixedWire{st.Kind, st.Fixed})
	}
	return nil, fmt.Errorf("valuescale: calibrator: unknown kind %q", st.Kind)
}

// UnmarshalJSON reads a state written by MarshalJSON. Options missing
// from the input take their default value.
func (st *CalibratorState) UnmarshalJSON(b []byte) error {
	var head struct {
		Kind CalibratorKind `json:"kind"`
	}
	if err := json.Unmarshal(b, &head); err != nil {
		return err
	}
	switch head.Kind {
	case IntervalCalibration, "":
		w := intervalWire{IntervalOptions: DefaultIntervalOptions()}
		if err := json.Unmarshal(b, &w); err != nil {
			return err
		}
		*st = CalibratorState{Kind: IntervalCalibration, Interval: w.IntervalOptions}
	case FixedCalibration:
		w := fixedWire{FixedOptions: DefaultFixedOptions()}
		if err := json.Unmarshal(b, &w); err != nil {
			return err
		}
		*st = CalibratorState{Kind: head.Kind, Fixed: w.FixedOptions}
	default:
		return invalid("calibrator", "unknown kind %q", head.Kind)
	}
	return nil
}

// ----------------------------------------------------------------------------
// Minor ticks

// minorTicks divides the gaps between consecutive major ticks into
// segments equal parts. With less than two major ticks the whole frame is
// divided.
func minorTicks(major []MajorTick, frame Frame, segments int) []MinorTick {
	if segments < 2 {
		return nil
	}
	var minor []MinorTick
	if len(major) < 2 {
		return subdivide(minor, frame.Top, frame.Bottom(), segments)
	}
	for i := 1; i < len(major); i++ {
		minor = subdivide(minor, major[i-1].Y, major[i].Y, segments)
	}
	return minor
}

func subdivide(dst []MinorTick, from, to float64, segments int) []MinorTick {
	step := (to - from) / float64(segments)
	for k := 1; k < segments; k++ {
		dst = append(dst, MinorTick{Y: from + float64(k)*step})
	}
	return dst
}
