package main

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/gwenn/yacr"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/valuescale"
	"github.com/vdobler/valuescale/data"
	"github.com/vdobler/valuescale/internal/config"
)

// A chart is one panel with its value scale.
type chart struct {
	panel *valuescale.SeriesPanel
	scale *valuescale.ValueScale

	line    data.Values // plotted as a line, or
	candles data.OHLCs  // plotted as candles
}

// newChart reads the CSV file at path and sets up panel and scale.
func newChart(cfg *config.Config, path string) (*chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tab, err := data.ReadCSV(f, cfg.Separator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c := &chart{}
	var series data.Series
	if len(cfg.OHLC) == 4 {
		c.candles, err = tab.OHLC(cfg.OHLC[0], cfg.OHLC[1], cfg.OHLC[2], cfg.OHLC[3])
		series = c.candles
	} else {
		c.line, err = tab.Column(cfg.Column)
		series = c.line
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(logrus.Fields{"file": path, "records": tab.Len()}).Debug("loaded data")

	c.panel = valuescale.NewSeriesPanel(cfg.Height, series)
	c.panel.Padding = valuescale.Padding{Top: cfg.Padding, Bottom: cfg.Padding}
	last := cfg.Last
	if last < 0 {
		last = c.panel.Last
	}
	c.panel.ShowRecords(cfg.First, last)

	c.scale = valuescale.NewValueScale(c.panel)
	if err := configure(c.scale, cfg); err != nil {
		return nil, err
	}
	return c, nil
}

// configure loads the state file or, without one, applies the formatter
// and calibrator flags.
func configure(s *valuescale.ValueScale, cfg *config.Config) error {
	if cfg.StateFile != "" {
		f, err := os.Open(cfg.StateFile)
		if err != nil {
			return err
		}
		defer f.Close()
		st, err := valuescale.ReadState(f)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.StateFile, err)
		}
		if err := s.LoadState(st); err != nil {
			return fmt.Errorf("%s: %w", cfg.StateFile, err)
		}
		return nil
	}

	fs := valuescale.FormatterState{
		Kind:     valuescale.DecimalFormat,
		Locale:   cfg.Locale,
		Decimals: valuescale.DefaultDecimals,
	}
	if cfg.Compact {
		fs.Kind = valuescale.CompactFormat
	}
	f, err := valuescale.NewFormatter(fs)
	if err != nil {
		return err
	}
	if err := s.SetFormatter(f); err != nil {
		return err
	}

	var cal valuescale.Calibrator
	if cfg.Fixed > 1 {
		cal, err = valuescale.NewFixedCalibrator(valuescale.FixedOptions{
			MajorTicksCount: cfg.Fixed,
			MinorTicksCount: valuescale.DefaultMinorTicksCount,
		})
	} else {
		o := valuescale.DefaultIntervalOptions()
		o.Interval = cfg.Interval
		cal, err = valuescale.NewIntervalCalibrator(o)
	}
	if err != nil {
		return err
	}
	return s.SetCalibrator(cal)
}

// run applies the operations of cfg. Without a state file and an interval
// a nice interval for the final visible range is picked.
func (c *chart) run(cfg *config.Config) error {
	ops, err := parseOps(cfg.Ops)
	if err != nil {
		return err
	}
	c.scale.EnsureResolved()
	for _, op := range ops {
		if _, err := op.apply(c.scale, c.panel); err != nil {
			return fmt.Errorf("op %s: %w", op, err)
		}
	}

	ic, ok := c.scale.Calibrator().(*valuescale.IntervalCalibrator)
	if !ok || cfg.StateFile != "" || ic.Options().Interval != 0 {
		return nil
	}
	visible, _ := c.scale.VisibleRange()
	o := ic.Options()
	o.Interval = valuescale.NiceInterval(visible.Width(), cfg.MaxTicks)
	ic, err = valuescale.NewIntervalCalibrator(o)
	if err != nil {
		return err
	}
	log.WithField("interval", o.Interval).Debug("picked label interval")
	return c.scale.SetCalibrator(ic)
}

// save writes the scale state if requested.
func (c *chart) save(cfg *config.Config) error {
	if cfg.SaveState == "" {
		return nil
	}
	f, err := os.Create(cfg.SaveState)
	if err != nil {
		return err
	}
	if err := valuescale.WriteState(f, c.scale.SaveState()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeTicks writes one CSV record per tick: kind, row, value and label.
// Minor ticks have no value and label.
func writeTicks(w io.Writer, cal valuescale.Calibration) error {
	cw := yacr.DefaultWriter(w)
	cw.WriteRecord("kind", "y", "value", "label")
	for _, t := range cal.Major {
		cw.WriteRecord("major", t.Y, t.Value, t.Text)
	}
	for _, t := range cal.Minor {
		cw.WriteRecord("minor", t.Y, nil, nil)
	}
	cw.Flush()
	return cw.Err()
}

// render draws the panel and the value axis into a PNG file.
func (c *chart) render(cfg *config.Config, path string) error {
	m, err := valuescale.NewFontMeasurer(valuescale.DefaultFontName, valuescale.DefaultFontSize)
	if err != nil {
		return err
	}
	if err := c.scale.SetTextMeasurer(m); err != nil {
		return err
	}
	sty := valuescale.DefaultAxisStyle(m.Font)

	img := vgimg.New(vg.Length(cfg.Width), vg.Length(cfg.Height))
	dc := draw.New(img)
	dc.SetColor(color.White)
	dc.Fill(dc.Rectangle.Path())

	axis, panel := dc, dc
	panel.Max.X -= vg.Length(c.scale.PreferredWidth())
	axis.Min.X = panel.Max.X

	cal := valuescale.DrawAxis(axis, c.scale, sty)
	valuescale.DrawGrid(panel, cal, sty)
	c.drawSeries(panel)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// drawSeries draws the visible records, one column per record.
func (c *chart) drawSeries(cv draw.Canvas) {
	first, last := c.panel.First, c.panel.Last
	if last < first {
		return
	}
	from := first
	if from < 0 {
		from = 0
	}
	proj := c.scale.Projection()
	colWidth := (cv.Max.X - cv.Min.X) / vg.Length(last-first+1)
	x := func(i int) vg.Length { return cv.Min.X + (vg.Length(i-first)+0.5)*colWidth }
	y := func(v float64) vg.Length { return cv.Max.Y - vg.Length(proj.YByValue(v)) }

	if c.candles != nil {
		wick := draw.LineStyle{Color: color.Gray16{0x3333}, Width: vg.Length(1)}
		for i := from; i <= last && i < len(c.candles); i++ {
			r := c.candles[i]
			if lo, _ := c.candles.Extent(i); lo != lo {
				continue
			}
			cv.StrokeLine2(wick, x(i), y(r.Low), x(i), y(r.High))
			body := draw.LineStyle{Color: color.RGBA{R: 0x26, G: 0xa6, B: 0x9a, A: 0xff}, Width: colWidth * 0.6}
			if r.Close < r.Open {
				body.Color = color.RGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}
			}
			cv.StrokeLine2(body, x(i), y(r.Open), x(i), y(r.Close))
		}
		return
	}

	line := draw.LineStyle{Color: color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff}, Width: vg.Length(1.5)}
	var pts []vg.Point
	for i := from; i <= last && i < len(c.line); i++ {
		v := c.line[i]
		if v != v { // NaN breaks the line
			if len(pts) > 1 {
				cv.StrokeLines(line, pts)
			}
			pts = pts[:0]
			continue
		}
		pts = append(pts, vg.Point{X: x(i), Y: y(v)})
	}
	if len(pts) > 1 {
		cv.StrokeLines(line, pts)
	}
}
