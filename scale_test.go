package valuescale

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPanel is a Panel with a fixed natural range.
type testPanel struct {
	natural Interval
	hasData bool
	height  float64
	padding Padding
}

func (p *testPanel) AutoScaledMinMaxValues() (Interval, bool) { return p.natural, p.hasData }
func (p *testPanel) LayerHeight() float64                     { return p.height }
func (p *testPanel) PanelPadding() Padding                    { return p.padding }

var testMeasurer = FixedMeasurer{CharWidth: 6, LineHeight: 10}

// newTestScale returns a resolved scale over natural data [min, max] in a
// 100 pixel high panel without padding.
func newTestScale(t *testing.T, min, max float64) *ValueScale {
	t.Helper()
	s := NewValueScale(&testPanel{natural: Interval{min, max}, hasData: true, height: 100})
	require.NoError(t, s.SetTextMeasurer(testMeasurer))
	s.EnsureResolved()
	return s
}

func visible(t *testing.T, s *ValueScale) Interval {
	t.Helper()
	v, ok := s.VisibleRange()
	require.True(t, ok, "visible range unresolved")
	return v
}

func assertVisible(t *testing.T, s *ValueScale, min, max float64) {
	t.Helper()
	v := visible(t, s)
	assert.InDelta(t, min, v.Min, 1e-9, "min of %v", v)
	assert.InDelta(t, max, v.Max, 1e-9, "max of %v", v)
}

var autoScaleTests = []struct {
	natural Interval
	hasData bool
	rng     Range
	want    Interval
}{
	{Interval{}, false, Range{}, Interval{-1, 1}},
	{Interval{10, 20}, true, Range{}, Interval{10, 20}},
	{Interval{5, 5}, true, Range{}, Interval{4, 6}},
	{Interval{1, 1.02}, true, Range{}, Interval{0.96, 1.06}},
	{Interval{20, 10}, true, Range{}, Interval{10, 20}},
	{Interval{nan, nan}, true, Range{}, Interval{-1, 1}},
	{Interval{10, 20}, true, Range{Min: LimitOf(0)}, Interval{0, 20}},
	{Interval{10, 20}, true, Range{Max: LimitOf(100)}, Interval{10, 100}},
	{Interval{10, 20}, true, Range{Min: LimitOf(15), Max: LimitOf(18)}, Interval{10, 20}},
	{Interval{}, false, Range{Min: LimitOf(0), Max: LimitOf(50)}, Interval{-1, 50}},
}

func TestAutoScale(t *testing.T) {
	for i, tc := range autoScaleTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			s := NewValueScale(&testPanel{natural: tc.natural, hasData: tc.hasData, height: 100})
			require.NoError(t, s.SetRange(tc.rng))
			assert.True(t, s.NeedsAutoScale())
			s.AutoScale()
			assert.False(t, s.NeedsAutoScale())
			assertVisible(t, s, tc.want.Min, tc.want.Max)
		})
	}
}

func TestNeedsAutoScale(t *testing.T) {
	p := &testPanel{natural: Interval{10, 20}, hasData: true, height: 100}
	s := NewValueScale(p)
	_, ok := s.VisibleRange()
	assert.False(t, ok)
	assert.False(t, s.ScrollOnPixels(10), "unresolved scale scrolled")
	assert.False(t, s.ZoomOnValue(1), "unresolved scale zoomed")

	s.EnsureResolved()
	assertVisible(t, s, 10, 20)

	// The panel is queried on demand.
	p.natural = Interval{0, 50}
	s.EnsureResolved()
	assertVisible(t, s, 10, 20)
	s.SetNeedsAutoScale()
	assert.True(t, s.NeedsAutoScale())
	s.EnsureResolved()
	assertVisible(t, s, 0, 50)
}

func TestVisibleRangeStaysValid(t *testing.T) {
	s := newTestScale(t, 0, 10)
	for _, px := range []float64{10, -30, 45, 200, -1000, 3, 0.5} {
		s.ScrollOnPixels(px)
		s.ZoomOnPixels(px)
		v := visible(t, s)
		assert.GreaterOrEqual(t, v.Width(), MinValueRange, "after %g: %v", px, v)
	}
}

func TestScrollOnValue(t *testing.T) {
	s := newTestScale(t, 0, 10)
	assert.True(t, s.ScrollOnValue(2))
	assertVisible(t, s, 2, 12)
	assert.True(t, s.ScrollOnValue(-4))
	assertVisible(t, s, -2, 8)

	assert.False(t, s.ScrollOnValue(0))
	assert.False(t, s.ScrollOnValue(nan))
	assert.False(t, s.ScrollOnValue(math.Inf(1)))

	// (0 - -9) / 10 > 0.8
	assert.False(t, s.ScrollOnValue(-7))
	assertVisible(t, s, -2, 8)
}

func TestScrollOnPixels(t *testing.T) {
	s := newTestScale(t, 0, 10)
	assert.True(t, s.ScrollOnPixels(10)) // 0.1 per pixel
	assertVisible(t, s, 1, 11)
}

func TestScrollAllowedValue(t *testing.T) {
	s := newTestScale(t, 0, 10)
	require.NoError(t, s.SetMinAllowedValue(LimitOf(0)))
	assert.False(t, s.ScrollOnValue(-1))
	assertVisible(t, s, 0, 10)
	assert.True(t, s.ScrollOnValue(1))
	assertVisible(t, s, 1, 11)
}

func TestScrollClampedByRange(t *testing.T) {
	s := newTestScale(t, 10, 20)
	require.NoError(t, s.SetRange(Range{Max: LimitOf(22)}))
	assertVisible(t, s, 10, 20)

	assert.True(t, s.ScrollOnValue(5))
	assertVisible(t, s, 12, 22)
	assert.False(t, s.ScrollOnValue(1), "scrolled past the range")
	assertVisible(t, s, 12, 22)
	assert.True(t, s.ScrollOnValue(-1))
	assertVisible(t, s, 11, 21)
}

func TestZoomOnValue(t *testing.T) {
	s := newTestScale(t, 0, 10)
	assert.True(t, s.ZoomOnValue(1))
	assertVisible(t, s, 1, 9)
	assert.True(t, s.ZoomOnValue(-2))
	assertVisible(t, s, -1, 11)
	assert.False(t, s.ZoomOnValue(0))
	assert.False(t, s.ZoomOnValue(nan))
}

func TestZoomOnPixels(t *testing.T) {
	s := newTestScale(t, 0, 10)
	assert.True(t, s.ZoomOnPixels(10))
	assertVisible(t, s, 1, 9)
}

func TestZoomOutLimit(t *testing.T) {
	// 10/90 is still above the minimal value range ratio.
	s := newTestScale(t, 10, 20)
	assert.True(t, s.ZoomOnValue(-40))
	assertVisible(t, s, -30, 60)

	// 10/110 is not, and neither one sided fallback respects the
	// allowed value ratios.
	s = newTestScale(t, 10, 20)
	assert.False(t, s.ZoomOnValue(-50))
	assertVisible(t, s, 10, 20)
}

func TestZoomFallbackOrder(t *testing.T) {
	// Symmetric zoom out breaks the min allowed value, holding the min
	// works.
	s := newTestScale(t, 0, 10)
	require.NoError(t, s.SetMinAllowedValue(LimitOf(0)))
	assert.True(t, s.ZoomOnValue(-1))
	assertVisible(t, s, 0, 11)

	// Symmetric zoom out breaks the max allowed value, holding the min
	// too, holding the max works.
	s = newTestScale(t, 0, 10)
	require.NoError(t, s.SetMaxAllowedValue(LimitOf(10)))
	assert.True(t, s.ZoomOnValue(-1))
	assertVisible(t, s, -1, 10)

	// Both edges pinned.
	s = newTestScale(t, 0, 10)
	require.NoError(t, s.SetMinAllowedValue(LimitOf(0)))
	require.NoError(t, s.SetMaxAllowedValue(LimitOf(10)))
	assert.False(t, s.ZoomOnValue(-1))
	assertVisible(t, s, 0, 10)
}

func TestZoomInLimit(t *testing.T) {
	s := newTestScale(t, 0, 10)
	require.NoError(t, s.SetMinAllowedValue(LimitOf(0)))
	require.NoError(t, s.SetMaxAllowedValue(LimitOf(10)))
	// [4.5, 5.5] shows the natural range 10 times: more than 5.
	// [0, 5.5] and [4.5, 10] are fine.
	assert.True(t, s.ZoomOnValue(4.5))
	assertVisible(t, s, 0, 5.5)
}

func TestZoomClampedByRange(t *testing.T) {
	s := newTestScale(t, 10, 20)
	require.NoError(t, s.SetRange(Range{Min: LimitOf(5)}))
	s.SetNeedsAutoScale()
	s.EnsureResolved()
	assertVisible(t, s, 5, 20)

	assert.True(t, s.ZoomOnValue(-2))
	assertVisible(t, s, 5, 22)
}

var canSetTests = []struct {
	min, max float64
	want     bool
}{
	{10, 20, true},
	{10, 10.05, false}, // narrower than MinValueRange
	{nan, 20, false},
	{-30, 60, true},   // 10/90
	{-40, 70, false},  // 10/110 below minValueRangeRatio
	{14, 16, true},    // 10/2 = 5
	{14.5, 16, false}, // 10/1.5 above maxValueRangeRatio
	{-35, 20, false},  // (10+35)/55 above minAllowedValueRatio
	{10, 70, false},   // (70-20)/60 above maxAllowedValueRatio
	{2, 22, true},     // (10-2)/20 = 0.4
}

func TestCanSetVisibleValueRange(t *testing.T) {
	s := newTestScale(t, 10, 20)
	for _, tc := range canSetTests {
		got := s.CanSetVisibleValueRange(tc.min, tc.max)
		assert.Equal(t, tc.want, got, "[%g:%g]", tc.min, tc.max)
	}
}

func TestCanSetVisibleValueRangeFlatData(t *testing.T) {
	// Flat data must not block all ranges: the natural range is
	// widened the way auto-scaling widens it.
	s := newTestScale(t, 5, 5)
	assertVisible(t, s, 4, 6)
	assert.True(t, s.CanSetVisibleValueRange(4.5, 6.5))
	assert.True(t, s.ScrollOnValue(0.5))
}

func TestSetVisibleValueRange(t *testing.T) {
	s := newTestScale(t, 0, 10)
	require.NoError(t, s.SetVisibleValueRange(-100, 100))
	assertVisible(t, s, -100, 100)

	for _, r := range [][2]float64{{1, 1.05}, {2, 1}, {nan, 1}, {0, math.Inf(1)}} {
		err := s.SetVisibleValueRange(r[0], r[1])
		assert.ErrorIs(t, err, ErrInvalidOption, "%v", r)
	}
	assertVisible(t, s, -100, 100)
}

var setterTests = []struct {
	name string
	set  func(s *ValueScale) error
	ok   bool
}{
	{"minAllowedValue", func(s *ValueScale) error { return s.SetMinAllowedValue(LimitOf(-5)) }, true},
	{"minAllowedValue/inf", func(s *ValueScale) error { return s.SetMinAllowedValue(LimitOf(math.Inf(-1))) }, false},
	{"maxAllowedValue/unset", func(s *ValueScale) error { return s.SetMaxAllowedValue(NoLimit) }, true},
	{"minAllowedValueRatio", func(s *ValueScale) error { return s.SetMinAllowedValueRatio(2) }, true},
	{"minAllowedValueRatio/negative", func(s *ValueScale) error { return s.SetMinAllowedValueRatio(-0.1) }, false},
	{"maxAllowedValueRatio/nan", func(s *ValueScale) error { return s.SetMaxAllowedValueRatio(nan) }, false},
	{"minValueRangeRatio", func(s *ValueScale) error { return s.SetMinValueRangeRatio(0.5) }, true},
	{"minValueRangeRatio/above1", func(s *ValueScale) error { return s.SetMinValueRangeRatio(1.5) }, false},
	{"maxValueRangeRatio", func(s *ValueScale) error { return s.SetMaxValueRangeRatio(10) }, true},
	{"maxValueRangeRatio/below1", func(s *ValueScale) error { return s.SetMaxValueRangeRatio(0.5) }, false},
	{"maxValueRangeRatio/inf", func(s *ValueScale) error { return s.SetMaxValueRangeRatio(math.Inf(1)) }, false},
	{"majorTickMarkLength/negative", func(s *ValueScale) error { return s.SetMajorTickMarkLength(-1) }, false},
	{"minorTickMarkLength", func(s *ValueScale) error { return s.SetMinorTickMarkLength(0) }, true},
	{"padding/negative", func(s *ValueScale) error { return s.SetPadding(Padding{Top: -1}) }, false},
	{"range/narrow", func(s *ValueScale) error { return s.SetRange(Range{Min: LimitOf(1), Max: LimitOf(1.01)}) }, false},
	{"calibrator/nil", func(s *ValueScale) error { return s.SetCalibrator(nil) }, false},
	{"projection/nil", func(s *ValueScale) error { return s.SetProjection(nil) }, false},
	{"formatter/nil", func(s *ValueScale) error { return s.SetFormatter(nil) }, false},
}

func TestSetters(t *testing.T) {
	for _, tc := range setterTests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestScale(t, 0, 10)
			before := s.SaveState()
			err := tc.set(s)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidOption)
			assert.Equal(t, before, s.SaveState(), "failed setter changed the scale")
		})
	}
}

func TestAllowedValuesOrder(t *testing.T) {
	s := newTestScale(t, 0, 10)
	require.NoError(t, s.SetMinAllowedValue(LimitOf(5)))
	assert.ErrorIs(t, s.SetMaxAllowedValue(LimitOf(5)), ErrInvalidOption)
}

func TestOptionsKeepVisibleRange(t *testing.T) {
	s := newTestScale(t, 0, 10)
	require.NoError(t, s.SetPadding(Padding{Left: 1, Right: 1}))
	assertVisible(t, s, 0, 10)

	o := s.Options()
	assert.Equal(t, LimitOf(0), o.MinVisibleValue)
	assert.Equal(t, LimitOf(10), o.MaxVisibleValue)

	s.SetNeedsAutoScale()
	o = s.Options()
	assert.False(t, o.MinVisibleValue.Set)
	assert.False(t, o.MaxVisibleValue.Set)
}

func TestFrames(t *testing.T) {
	p := &testPanel{hasData: false, height: 200, padding: Padding{Top: 10, Bottom: 20}}
	s := NewValueScale(p)
	assert.Equal(t, Frame{Top: 10, Height: 170}, s.Frame())

	require.NoError(t, s.SetPadding(Padding{Top: 5, Bottom: 15}))
	assert.Equal(t, Frame{Top: 15, Height: 150}, s.LabelFrame())

	p.height = 20
	assert.Equal(t, Frame{Top: 10, Height: 0}, s.Frame())
	assert.Equal(t, Frame{Top: 15, Height: 0}, s.LabelFrame())
}

func TestPreferredWidth(t *testing.T) {
	s := newTestScale(t, 0, 1000)
	// "1,000.00" is 8 characters, plus padding 5+5 and the tick mark 5.
	assert.Equal(t, 8*6.0+15, s.PreferredWidth())

	require.NoError(t, s.SetPadding(Padding{}))
	require.NoError(t, s.SetMajorTickMarkLength(0))
	assert.Equal(t, 8*6.0, s.PreferredWidth())
}

func TestPreferredWidthResolves(t *testing.T) {
	s := NewValueScale(&testPanel{natural: Interval{-5, 5}, hasData: true, height: 100})
	require.NoError(t, s.SetTextMeasurer(testMeasurer))
	// "-5.00" is 5 characters.
	assert.Equal(t, 5*6.0+15, s.PreferredWidth())
	assert.False(t, s.NeedsAutoScale())
}

func TestSetLocale(t *testing.T) {
	s := newTestScale(t, 0, 10)
	assert.Equal(t, "1,234.50", s.FormatValue(1234.5))

	require.NoError(t, s.SetLocale("de"))
	assert.Equal(t, "1.234,50", s.FormatValue(1234.5))
	assert.Equal(t, "de", s.Formatter().State().Locale)

	assert.ErrorIs(t, s.SetLocale("not a locale!"), ErrInvalidOption)
	assert.Equal(t, "1.234,50", s.FormatValue(1234.5))
}

func TestScalesAreIndependent(t *testing.T) {
	a := newTestScale(t, 0, 10)
	b := newTestScale(t, 0, 10)
	require.NoError(t, a.SetLocale("de"))
	assert.Equal(t, "1,50", a.FormatValue(1.5))
	assert.Equal(t, "1.50", b.FormatValue(1.5))
}

func TestNewValueScaleNilPanel(t *testing.T) {
	assert.Panics(t, func() { NewValueScale(nil) })
}
