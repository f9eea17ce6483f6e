package valuescale

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// DrawAxis calibrates s and draws its tick marks and labels into c. The
// canvas is the axis column next to the panel: pixel row 0 of the scale is
// the top edge of c and the panel layer height should equal the height of
// c. Ticks start at the left edge, labels follow after the left padding.
// The calibration drawn is returned so callers can draw a matching grid.
func DrawAxis(c draw.Canvas, s *ValueScale, sty AxisStyle) Calibration {
	cal := s.Calibrate()
	opts := s.Options()

	if sty.Background != nil {
		c.SetColor(sty.Background)
		c.Fill(c.Rectangle.Path())
	}
	x0 := c.Min.X
	if sty.Line.Width > 0 {
		f := s.Frame()
		c.StrokeLine2(sty.Line, x0, canvasY(c, f.Top), x0, canvasY(c, f.Bottom()))
	}

	for _, tick := range cal.Minor {
		y := canvasY(c, tick.Y)
		c.StrokeLine2(sty.MinorTick.LineStyle, x0, y, x0+vg.Length(opts.MinorTickMarkLength), y)
	}
	major := vg.Length(opts.MajorTickMarkLength)
	for _, tick := range cal.Major {
		y := canvasY(c, tick.Y)
		c.StrokeLine2(sty.MajorTick.LineStyle, x0, y, x0+major, y)
		c.FillText(sty.MajorTick.Label,
			vg.Point{X: x0 + major + vg.Length(opts.Padding.Left), Y: y}, tick.Text)
	}
	return cal
}

// DrawGrid draws a horizontal grid line across c for every tick of cal.
// Rows are mapped like in DrawAxis.
func DrawGrid(c draw.Canvas, cal Calibration, sty AxisStyle) {
	for _, tick := range cal.Minor {
		y := canvasY(c, tick.Y)
		c.StrokeLine2(sty.Grid.Minor, c.Min.X, y, c.Max.X, y)
	}
	for _, tick := range cal.Major {
		y := canvasY(c, tick.Y)
		c.StrokeLine2(sty.Grid.Major, c.Min.X, y, c.Max.X, y)
	}
}

// canvasY converts a pixel row, counted downwards from the top of c, to
// the upward y coordinate of c.
func canvasY(c draw.Canvas, row float64) vg.Length {
	return c.Max.Y - vg.Length(row)
}
