package valuescale

// FixedCalibrator places a fixed number of evenly spaced major ticks,
// independent of the values they show.
type FixedCalibrator struct {
	opts FixedOptions
}

// NewFixedCalibrator returns a calibrator with options o.
func NewFixedCalibrator(o FixedOptions) (*FixedCalibrator, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &FixedCalibrator{opts: o}, nil
}

// Options returns the options of c.
func (c *FixedCalibrator) Options() FixedOptions { return c.opts }

// State implements Calibrator.
func (c *FixedCalibrator) State() CalibratorState {
	return CalibratorState{Kind: FixedCalibration, Fixed: c.opts}
}

// Calibrate implements Calibrator.
func (c *FixedCalibrator) Calibrate(a Axis) Calibration {
	frame := a.LabelFrame()
	if _, ok := a.VisibleRange(); !ok || !(frame.Height > 0) {
		return Calibration{}
	}

	proj := a.Projection()
	n := c.opts.MajorTicksCount
	tickHeight := frame.Height / float64(n-1)
	major := make([]MajorTick, 0, n)
	for i := 0; i < n; i++ {
		major = append(major, tickAt(a, proj, frame.Top+float64(i)*tickHeight))
	}
	return Calibration{
		Major: major,
		Minor: minorTicks(major, frame, c.opts.MinorTicksCount),
	}
}
