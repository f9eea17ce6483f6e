package valuescale

import (
	"unicode/utf8"

	"gonum.org/v1/plot/vg"
)

// A TextMeasurer reports the rendered size of label texts in pixels.
type TextMeasurer interface {
	// Width returns the width of s.
	Width(s string) float64

	// Height returns the height of a line of text.
	Height() float64
}

// FontMeasurer measures texts with a gonum/plot font.
type FontMeasurer struct {
	Font vg.Font
}

// NewFontMeasurer loads the named font (e.g. "Helvetica") at the given
// size. See vg.MakeFont for the available names.
func NewFontMeasurer(name string, size vg.Length) (*FontMeasurer, error) {
	font, err := vg.MakeFont(name, size)
	if err != nil {
		return nil, err
	}
	return &FontMeasurer{Font: font}, nil
}

func (m *FontMeasurer) Width(s string) float64 { return float64(m.Font.Width(s)) }
func (m *FontMeasurer) Height() float64        { return float64(m.Font.Extents().Height) }

// FixedMeasurer assumes every rune is CharWidth wide and every line
// LineHeight high. It is used when no font can be loaded and by tests.
type FixedMeasurer struct {
	CharWidth  float64
	LineHeight float64
}

func (m FixedMeasurer) Width(s string) float64 {
	return m.CharWidth * float64(utf8.RuneCountInString(s))
}
func (m FixedMeasurer) Height() float64 { return m.LineHeight }

// DefaultFontName and DefaultFontSize select the font of DefaultMeasurer.
const (
	DefaultFontName = "Helvetica"
	DefaultFontSize = 10
)

// DefaultMeasurer returns a FontMeasurer for the default font or, if that
// font is not available, a FixedMeasurer of similar metrics.
func DefaultMeasurer() TextMeasurer {
	m, err := NewFontMeasurer(DefaultFontName, DefaultFontSize)
	if err != nil {
		logger.WithError(err).WithField("font", DefaultFontName).
			Warn("falling back to fixed text metrics")
		return FixedMeasurer{CharWidth: 0.6 * DefaultFontSize, LineHeight: 1.2 * DefaultFontSize}
	}
	return m
}
