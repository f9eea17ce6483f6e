package valuescale

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Limit is an optional float64. The zero Limit is unset.
// Limits are used for all bounds which may be absent, e.g. the absolute
// allowed value range or the range override.
type Limit struct {
	Value float64
	Set   bool
}

// LimitOf returns a set Limit with value v.
func LimitOf(v float64) Limit { return Limit{Value: v, Set: true} }

// NoLimit is the unset Limit.
var NoLimit = Limit{}

// Below reports whether l is set and x < l.Value.
func (l Limit) Below(x float64) bool { return l.Set && x < l.Value }

// Above reports whether l is set and x > l.Value.
func (l Limit) Above(x float64) bool { return l.Set && x > l.Value }

func (l Limit) String() string {
	if !l.Set {
		return "unset"
	}
	return strconv.FormatFloat(l.Value, 'g', -1, 64)
}

// MarshalJSON encodes an unset Limit as null.
func (l Limit) MarshalJSON() ([]byte, error) {
	if !l.Set {
		return []byte("null"), nil
	}
	if !finite(l.Value) {
		return nil, fmt.Errorf("valuescale: limit %v is not finite", l.Value)
	}
	return json.Marshal(l.Value)
}

// UnmarshalJSON decodes null to an unset Limit and a number to a set one.
func (l *Limit) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*l = Limit{}
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*l = LimitOf(v)
	return nil
}
