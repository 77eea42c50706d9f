package types

import (
	"fmt"
	"math"
	"strconv"
)

// Interval is a refinement of the reals to the values between Low and High.
// Only non-negative, forward pointing intervals are representable, High may be
// +Inf. The include flags tell whether each bound is itself a member.
type Interval struct {
	Low          float64
	High         float64
	IncludesLow  bool
	IncludesHigh bool
}

// NewInterval creates an interval, it fails with InvalidInterval when low is
// negative or high does not lie strictly above low.
func NewInterval(low, high float64, includesLow, includesHigh bool) (*Interval, error) {
	if math.IsNaN(low) || math.IsNaN(high) || low < 0 || high <= low {
		return nil, &Error{Reason: InvalidInterval, Low: low, High: high}
	}
	return &Interval{Low: low, High: high, IncludesLow: includesLow, IncludesHigh: includesHigh}, nil
}

// Closed creates the interval [low, high].
func Closed(low, high float64) (*Interval, error) {
	return NewInterval(low, high, true, true)
}

// Equal will check if the other type is an interval with identical bounds.
func (iv *Interval) Equal(other Type) bool {
	oi, isInterval := other.(*Interval)
	return isInterval &&
		oi.Low == iv.Low &&
		oi.High == iv.High &&
		oi.IncludesLow == iv.IncludesLow &&
		oi.IncludesHigh == iv.IncludesHigh
}

func (iv *Interval) String() string {
	open, closing := "(", ")"
	if iv.IncludesLow {
		open = "["
	}
	if iv.IncludesHigh {
		closing = "]"
	}
	return fmt.Sprintf("%s%s, %s%s", open, fmtBound(iv.Low), fmtBound(iv.High), closing)
}

// Contains reports whether x is a member of the interval.
func (iv *Interval) Contains(x float64) bool {
	switch {
	case math.IsNaN(x), x < iv.Low, x > iv.High:
		return false
	case x == iv.Low:
		return iv.IncludesLow
	case x == iv.High:
		return iv.IncludesHigh
	default:
		return true
	}
}

// Add sums the bounds pairwise. A bound is included only if it is included
// on both sides.
func (iv *Interval) Add(other *Interval) (*Interval, error) {
	return iv.derive("add", other,
		iv.Low+other.Low,
		iv.High+other.High,
		iv.IncludesLow && other.IncludesLow,
		iv.IncludesHigh && other.IncludesHigh,
	)
}

// Sub subtracts the opposite bounds. The result frequently leaves the
// non-negative space, in which case it fails with InvalidInterval.
func (iv *Interval) Sub(other *Interval) (*Interval, error) {
	return iv.derive("sub", other,
		iv.Low-other.High,
		iv.High-other.Low,
		iv.IncludesLow && other.IncludesHigh,
		iv.IncludesHigh && other.IncludesLow,
	)
}

// Div divides with extended real semantics. It fails when both operands may
// be zero or both may be infinite since the quotient would be indeterminate.
func (iv *Interval) Div(other *Interval) (*Interval, error) {
	if iv.Contains(0) && other.Contains(0) {
		return nil, &Error{Reason: PossibleZeroOverZero, Op: "truediv", Args: []Type{iv, other}}
	} else if inf := math.Inf(1); iv.Contains(inf) && other.Contains(inf) {
		return nil, &Error{Reason: PossibleInfOverInf, Op: "truediv", Args: []Type{iv, other}}
	}
	return iv.derive("truediv", other,
		ExtDiv(iv.Low, other.High),
		ExtDiv(iv.High, other.Low),
		iv.IncludesLow && other.IncludesHigh,
		iv.IncludesHigh && other.IncludesLow,
	)
}

func (iv *Interval) derive(op string, other *Interval, low, high float64, incLow, incHigh bool) (*Interval, error) {
	res, err := NewInterval(low, high, incLow, incHigh)
	if err != nil {
		return nil, &Error{Reason: InvalidInterval, Op: op, Args: []Type{iv, other}, Low: low, High: high}
	}
	return res, nil
}

// ExtDiv is division over the extended reals, dividing by zero yields +Inf
// rather than failing.
func ExtDiv(x, y float64) float64 {
	if y == 0 {
		return math.Inf(1)
	}
	return x / y
}

func fmtBound(x float64) string {
	if math.IsInf(x, 1) {
		return "inf"
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}
