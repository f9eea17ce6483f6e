package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vdobler/valuescale"
	"github.com/vdobler/valuescale/gesture"
)

// opArgs lists the operations and their number of arguments.
var opArgs = map[string]int{
	"auto":     0,
	"scroll":   1, // pixels
	"zoom":     1, // pixels
	"drag":     1, // pixels, scrolls like a drag in the panel
	"stretch":  1, // pixels, zooms like a drag on the axis
	"wheel":    1, // notches
	"dblclick": 0,
	"visible":  2, // min, max
	"window":   2, // first, last record
}

// An operation is one interaction applied to the scale.
type operation struct {
	kind string
	args []float64
}

func (op operation) String() string {
	s := op.kind
	for _, a := range op.args {
		s += ":" + strconv.FormatFloat(a, 'g', -1, 64)
	}
	return s
}

// parseOps parses operations written as kind:arg:arg.
func parseOps(texts []string) ([]operation, error) {
	ops := make([]operation, 0, len(texts))
	for _, text := range texts {
		parts := strings.Split(strings.TrimSpace(text), ":")
		op := operation{kind: parts[0]}
		n, ok := opArgs[op.kind]
		if !ok {
			return nil, fmt.Errorf("op %q: unknown operation", text)
		}
		if len(parts)-1 != n {
			return nil, fmt.Errorf("op %q: need %d arguments", text, n)
		}
		for _, p := range parts[1:] {
			x, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, fmt.Errorf("op %q: %w", text, err)
			}
			op.args = append(op.args, x)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// apply runs op on s. It reports whether the visible range changed.
// Only configuration errors are returned; rejected interactions are not
// errors.
func (op operation) apply(s *valuescale.ValueScale, panel *valuescale.SeriesPanel) (bool, error) {
	s.EnsureResolved()
	before, _ := s.VisibleRange()

	var changed bool
	switch op.kind {
	case "auto":
		s.AutoScale()
	case "scroll":
		changed = s.ScrollOnPixels(op.args[0])
	case "zoom":
		changed = s.ZoomOnPixels(op.args[0])
	case "drag", "stretch":
		pan := &gesture.Pan{Target: s}
		if op.kind == "stretch" {
			pan.Mode = gesture.Zoom
		}
		pan.Update(gesture.Started, 0)
		changed = pan.Update(gesture.Finished, op.args[0])
	case "wheel":
		changed = gesture.Wheel{Target: s}.Scroll(op.args[0])
	case "dblclick":
		click := &gesture.DoubleClick{Target: s}
		now := time.Now()
		click.Click(now)
		click.Click(now)
		s.EnsureResolved()
	case "visible":
		if err := s.SetVisibleValueRange(op.args[0], op.args[1]); err != nil {
			return false, err
		}
	case "window":
		panel.ShowRecords(int(op.args[0]), int(op.args[1]))
		s.SetNeedsAutoScale()
		s.EnsureResolved()
	}

	after, _ := s.VisibleRange()
	if !changed {
		changed = !after.Equal(before)
	}
	log.WithFields(logrus.Fields{
		"op":      op.String(),
		"changed": changed,
		"visible": after.String(),
	}).Info("applied operation")
	return changed, nil
}
