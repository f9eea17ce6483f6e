package valuescale

import (
	"github.com/vdobler/valuescale/data"
)

// ----------------------------------------------------------------------------
// SeriesPanel

// A SeriesPanel is a chart panel plotting one or more series over a window
// of records. It implements Panel.
type SeriesPanel struct {
	Series []data.Series

	// First and Last are the indices of the first and the last visible
	// record. Last < First means no record is visible.
	First, Last int

	Height  float64 // height of the panel layer in pixels
	Padding Padding
}

var _ Panel = (*SeriesPanel)(nil)

// NewSeriesPanel returns a panel of the given height showing all records
// of series.
func NewSeriesPanel(height float64, series ...data.Series) *SeriesPanel {
	p := &SeriesPanel{Series: series, Height: height, Last: -1}
	for _, s := range series {
		if n := s.Len() - 1; n > p.Last {
			p.Last = n
		}
	}
	return p
}

// AutoScaledMinMaxValues implements NaturalRangeProvider.
func (p *SeriesPanel) AutoScaledMinMaxValues() (Interval, bool) {
	if p.Last < p.First {
		return Interval{}, false
	}
	min, max, ok := data.Range(p.First, p.Last, p.Series...)
	return Interval{Min: min, Max: max}, ok
}

// LayerHeight implements Panel.
func (p *SeriesPanel) LayerHeight() float64 { return p.Height }

// PanelPadding implements Panel.
func (p *SeriesPanel) PanelPadding() Padding { return p.Padding }

// ShowRecords moves the visible record window.
func (p *SeriesPanel) ShowRecords(first, last int) {
	p.First, p.Last = first, last
}
