package valuescale

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// An AxisStyle controls how DrawAxis draws a value axis.
type AxisStyle struct {
	Background color.Color

	Line draw.LineStyle

	MajorTick struct {
		draw.LineStyle
		Label draw.TextStyle
	}
	MinorTick struct {
		draw.LineStyle
	}

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}
}

// DefaultAxisStyle returns an AxisStyle with labels in the given font,
// which should be the font the scale measures its labels with.
func DefaultAxisStyle(font vg.Font) AxisStyle {
	as := AxisStyle{}
	as.Background = color.Transparent

	as.Line.Color = color.Gray16{0x1111}
	as.Line.Width = vg.Length(1)

	as.MajorTick.Color = color.Gray16{0x1111}
	as.MajorTick.Width = vg.Length(1)
	as.MajorTick.Label.Color = color.Black
	as.MajorTick.Label.Font = font
	as.MajorTick.Label.XAlign = draw.XLeft
	as.MajorTick.Label.YAlign = -0.3 // draw.YCenter

	as.MinorTick.Color = color.Gray16{0x5555}
	as.MinorTick.Width = vg.Length(0.5)

	as.Grid.Major.Color = color.Gray16{0xdddd}
	as.Grid.Major.Width = vg.Length(1)
	as.Grid.Minor.Color = color.Gray16{0xeeee}
	as.Grid.Minor.Width = vg.Length(0.5)

	return as
}
