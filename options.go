package valuescale

import (
	"errors"
	"fmt"
)

// MinValueRange is the smallest width a resolved visible range may have.
const MinValueRange = 0.1

// Default values of the scale options.
const (
	DefaultMinAllowedValueRatio = 0.8
	DefaultMaxAllowedValueRatio = 0.8
	DefaultMinValueRangeRatio   = 0.1
	DefaultMaxValueRangeRatio   = 5.0
	DefaultMajorTickMarkLength  = 5
	DefaultMinorTickMarkLength  = 3
)

// ErrInvalidOption is wrapped by all configuration errors.
var ErrInvalidOption = errors.New("invalid option")

func invalid(field string, format string, args ...interface{}) error {
	return fmt.Errorf("valuescale: %s: %s: %w", field, fmt.Sprintf(format, args...), ErrInvalidOption)
}

// Padding is a pixel padding around some content.
type Padding struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

func (p Padding) validate(field string) error {
	for _, v := range []float64{p.Left, p.Top, p.Right, p.Bottom} {
		if !finite(v) || v < 0 {
			return invalid(field, "%+v must be finite and non-negative", p)
		}
	}
	return nil
}

// Range is an optional floor and ceiling for the visible range.
// Auto-scaling widens the computed range to include a set edge while
// scrolling and zooming never move the visible range past it.
type Range struct {
	Min Limit `json:"min"`
	Max Limit `json:"max"`
}

// IsSet reports whether at least one edge of r is set.
func (r Range) IsSet() bool { return r.Min.Set || r.Max.Set }

func (r Range) validate(field string) error {
	if r.Min.Set && !finite(r.Min.Value) {
		return invalid(field, "min %v is not finite", r.Min.Value)
	}
	if r.Max.Set && !finite(r.Max.Value) {
		return invalid(field, "max %v is not finite", r.Max.Value)
	}
	if r.Min.Set && r.Max.Set && r.Max.Value-r.Min.Value < MinValueRange {
		return invalid(field, "[%v:%v] is narrower than %v", r.Min.Value, r.Max.Value, MinValueRange)
	}
	return nil
}

// Options is the configuration of a ValueScale. It is also the
// "options" member of the persisted State.
type Options struct {
	// MinVisibleValue and MaxVisibleValue are the visible range. If
	// either one is unset the scale auto-scales on the next layout pass.
	MinVisibleValue Limit `json:"minVisibleValue"`
	MaxVisibleValue Limit `json:"maxVisibleValue"`

	// MinAllowedValue and MaxAllowedValue are absolute hard bounds.
	MinAllowedValue Limit `json:"minAllowedValue"`
	MaxAllowedValue Limit `json:"maxAllowedValue"`

	// MinAllowedValueRatio and MaxAllowedValueRatio bound how far the
	// visible range may reach below (above) the natural data range, as a
	// fraction of the visible width.
	MinAllowedValueRatio float64 `json:"minAllowedValueRatio"`
	MaxAllowedValueRatio float64 `json:"maxAllowedValueRatio"`

	// MinValueRangeRatio and MaxValueRangeRatio bound the ratio
	// naturalWidth/visibleWidth, i.e. how far the user may zoom out (in).
	MinValueRangeRatio float64 `json:"minValueRangeRatio"`
	MaxValueRangeRatio float64 `json:"maxValueRangeRatio"`

	MajorTickMarkLength float64 `json:"majorTickMarkLength"`
	MinorTickMarkLength float64 `json:"minorTickMarkLength"`

	Padding Padding `json:"padding"`
	Range   Range   `json:"range"`
}

// DefaultOptions returns the options of a new scale: unresolved visible
// range, no absolute bounds and the documented default ratios.
func DefaultOptions() Options {
	return Options{
		MinAllowedValueRatio: DefaultMinAllowedValueRatio,
		MaxAllowedValueRatio: DefaultMaxAllowedValueRatio,
		MinValueRangeRatio:   DefaultMinValueRangeRatio,
		MaxValueRangeRatio:   DefaultMaxValueRangeRatio,
		MajorTickMarkLength:  DefaultMajorTickMarkLength,
		MinorTickMarkLength:  DefaultMinorTickMarkLength,
		Padding:              Padding{Left: 5, Right: 5},
	}
}

// Validate checks o and returns the first configuration error found.
func (o Options) Validate() error {
	if o.MinVisibleValue.Set != o.MaxVisibleValue.Set {
		return invalid("visible range", "min and max must both be set or unset")
	}
	if o.MinVisibleValue.Set {
		if err := checkVisibleRange(o.MinVisibleValue.Value, o.MaxVisibleValue.Value); err != nil {
			return err
		}
	}
	if err := checkLimit("minAllowedValue", o.MinAllowedValue); err != nil {
		return err
	}
	if err := checkLimit("maxAllowedValue", o.MaxAllowedValue); err != nil {
		return err
	}
	if o.MinAllowedValue.Set && o.MaxAllowedValue.Set && o.MinAllowedValue.Value >= o.MaxAllowedValue.Value {
		return invalid("allowed values", "min %v must be below max %v", o.MinAllowedValue.Value, o.MaxAllowedValue.Value)
	}
	if err := checkAllowedRatio("minAllowedValueRatio", o.MinAllowedValueRatio); err != nil {
		return err
	}
	if err := checkAllowedRatio("maxAllowedValueRatio", o.MaxAllowedValueRatio); err != nil {
		return err
	}
	if err := checkMinValueRangeRatio(o.MinValueRangeRatio); err != nil {
		return err
	}
	if err := checkMaxValueRangeRatio(o.MaxValueRangeRatio); err != nil {
		return err
	}
	if err := checkLength("majorTickMarkLength", o.MajorTickMarkLength); err != nil {
		return err
	}
	if err := checkLength("minorTickMarkLength", o.MinorTickMarkLength); err != nil {
		return err
	}
	if err := o.Padding.validate("padding"); err != nil {
		return err
	}
	return o.Range.validate("range")
}

func checkVisibleRange(min, max float64) error {
	if !finite(min) || !finite(max) {
		return invalid("visible range", "[%v:%v] is not finite", min, max)
	}
	if max-min < MinValueRange {
		return invalid("visible range", "[%v:%v] is narrower than %v", min, max, MinValueRange)
	}
	return nil
}

func checkLimit(field string, l Limit) error {
	if l.Set && !finite(l.Value) {
		return invalid(field, "%v is not finite", l.Value)
	}
	return nil
}

func checkAllowedRatio(field string, r float64) error {
	if !finite(r) || r < 0 {
		return invalid(field, "%v must be finite and non-negative", r)
	}
	return nil
}

func checkMinValueRangeRatio(r float64) error {
	if !finite(r) || r < 0 || r > 1 {
		return invalid("minValueRangeRatio", "%v is outside [0,1]", r)
	}
	return nil
}

func checkMaxValueRangeRatio(r float64) error {
	if !finite(r) || r < 1 {
		return invalid("maxValueRangeRatio", "%v must be finite and at least 1", r)
	}
	return nil
}

func checkLength(field string, l float64) error {
	if !finite(l) || l < 0 {
		return invalid(field, "%v must be finite and non-negative", l)
	}
	return nil
}
