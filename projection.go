// Projections
//
// A projection maps the visible value range of a scale onto the pixel
// rows of its panel. Values grow upwards while pixel rows grow downwards.
package valuescale

// Frame is the vertical pixel area of a panel values are projected into.
// Rows are counted from the top of the panel layer.
type Frame struct {
	Top    float64 // first row of the frame
	Height float64 // number of rows
}

// Bottom returns the last row of f.
func (f Frame) Bottom() float64 { return f.Top + f.Height }

// A Projection converts between values and pixel rows for the current
// visible range of a scale. Projections hold no state of their own.
type Projection interface {
	// YByValue returns the pixel row of value v.
	YByValue(v float64) float64

	// ValueByY returns the value shown at pixel row y.
	ValueByY(y float64) float64

	// ValuePerPixel returns how much value one pixel row spans.
	ValuePerPixel() float64
}

// linear maps x linearly from the interval from to the interval to.
func linear(from, to Interval, x float64) float64 {
	return to.Min + (to.Max-to.Min)*(x-from.Min)/(from.Max-from.Min)
}

// Projectable is what a projection reads from its scale.
type Projectable interface {
	VisibleRange() (Interval, bool)
	Frame() Frame
}

// LinearProjection is the Projection of a linear value axis.
// It reads the visible range and the frame of its source on every call.
type LinearProjection struct {
	source Projectable
}

// NewLinearProjection returns a linear projection for the range and frame
// of src, typically a *ValueScale.
func NewLinearProjection(src Projectable) *LinearProjection {
	return &LinearProjection{source: src}
}

// rows returns the frame as an interval from its bottom row (where the
// minimum value is drawn) to its top row.
func (p *LinearProjection) rows() Interval {
	f := p.source.Frame()
	return Interval{Min: f.Bottom(), Max: f.Top}
}

func (p *LinearProjection) values() Interval {
	v, _ := p.source.VisibleRange()
	return v
}

// YByValue implements Projection.
func (p *LinearProjection) YByValue(v float64) float64 {
	return linear(p.values(), p.rows(), v)
}

// ValueByY implements Projection.
func (p *LinearProjection) ValueByY(y float64) float64 {
	return linear(p.rows(), p.values(), y)
}

// ValuePerPixel implements Projection.
func (p *LinearProjection) ValuePerPixel() float64 {
	return p.values().Width() / p.source.Frame().Height
}
