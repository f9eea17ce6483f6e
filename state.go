package valuescale

import (
	"encoding/json"
	"fmt"
	"io"
)

// State is the persisted form of a ValueScale: its options, the state of
// its formatter and the state of its calibrator.
type State struct {
	Options    Options         `json:"options"`
	Formatter  FormatterState  `json:"formatter"`
	Calibrator CalibratorState `json:"calibrator"`
}

// DefaultState returns the state of a new scale.
func DefaultState() State {
	return State{
		Options:    DefaultOptions(),
		Formatter:  DefaultFormatterState(),
		Calibrator: DefaultCalibratorState(),
	}
}

// SaveState returns the state of s.
func (s *ValueScale) SaveState() State {
	return State{
		Options:    s.Options(),
		Formatter:  s.formatter.State(),
		Calibrator: s.calibrator.State(),
	}
}

// LoadState replaces options, formatter and calibrator of s. Nothing is
// changed if st is invalid.
func (s *ValueScale) LoadState(st State) error {
	if err := st.Options.Validate(); err != nil {
		return err
	}
	f, err := NewFormatter(st.Formatter)
	if err != nil {
		return err
	}
	c, err := NewCalibrator(st.Calibrator)
	if err != nil {
		return err
	}
	s.applyOptions(st.Options)
	s.formatter = f
	s.calibrator = c
	debugScale(s, "state loaded", nil)
	return nil
}

// ReadState decodes a JSON state from r. Fields missing from the input
// take their default value.
func ReadState(r io.Reader) (State, error) {
	st := DefaultState()
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return State{}, fmt.Errorf("valuescale: read state: %w", err)
	}
	return st, nil
}

// WriteState encodes st as indented JSON to w.
func WriteState(w io.Writer, st State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(st); err != nil {
		return fmt.Errorf("valuescale: write state: %w", err)
	}
	return nil
}
