package valuescale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func TestDrawAxis(t *testing.T) {
	m, err := NewFontMeasurer(DefaultFontName, DefaultFontSize)
	if err != nil {
		t.Skipf("font not available: %v", err)
	}

	s := NewValueScale(&testPanel{natural: Interval{0, 10}, hasData: true, height: 200})
	require.NoError(t, s.SetTextMeasurer(m))
	c, err := NewIntervalCalibrator(IntervalOptions{Interval: 1, MinValuesOffset: 10, MinorTicksCount: 2})
	require.NoError(t, err)
	require.NoError(t, s.SetCalibrator(c))

	width := vg.Length(s.PreferredWidth())
	img := vgimg.New(width, 200)
	dc := draw.New(img)
	sty := DefaultAxisStyle(m.Font)

	cal := DrawAxis(dc, s, sty)
	assert.Equal(t, s.Calibrate(), cal)
	require.NotEmpty(t, cal.Major)
	assert.Equal(t, "10.00", cal.Major[0].Text)

	DrawGrid(dc, cal, sty)
}

func TestCanvasY(t *testing.T) {
	dc := draw.New(vgimg.New(50, 120))
	assert.Equal(t, dc.Max.Y, canvasY(dc, 0))
	assert.Equal(t, dc.Max.Y-20, canvasY(dc, 20))
}
