// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package membership

import (
	"math"

	"github.com/z5labs/fuzzy"
)

func clamp(x, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, x))
}

// Linear returns the line m*x + b clipped into [0, 1].
func Linear(m, b float64) fuzzy.MembershipFunction {
	return fuzzy.MembershipFunc(func(x float64) float64 {
		y := m*x + b
		if math.IsNaN(y) {
			// m and x can be infinite in opposite directions.
			return 0
		}
		return clamp(y, 0, 1)
	})
}

// BoundedLinear returns a ramp holding the floor degree up to low,
// rising linearly to the ceiling degree at high and holding it
// thereafter. Requires low < high.
func BoundedLinear(low, high float64, opts ...Option) (fuzzy.MembershipFunction, error) {
	err := validateInterval(low, high)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	err = o.validate()
	if err != nil {
		return nil, err
	}

	cm, nm := o.ceiling, o.floor
	gradient := (cm - nm) / (high - low)
	return fuzzy.MembershipFunc(func(x float64) float64 {
		if x <= low {
			return nm
		}
		if x >= high {
			return cm
		}
		return clamp(nm+(x-low)*gradient, nm, cm)
	}), nil
}

// R returns the canonical rising ramp: 0 up to low, rising linearly
// to 1 at high. Requires low < high.
func R(low, high float64) (fuzzy.MembershipFunction, error) {
	err := validateInterval(low, high)
	if err != nil {
		return nil, err
	}

	return fuzzy.MembershipFunc(func(x float64) float64 {
		if x <= low {
			return 0
		}
		if x >= high {
			return 1
		}
		return clamp((x-low)/(high-low), 0, 1)
	}), nil
}

// S returns the canonical falling ramp, the exact pointwise mirror of
// [R]: 1 up to low, falling linearly to 0 at high. Requires low < high.
func S(low, high float64) (fuzzy.MembershipFunction, error) {
	err := validateInterval(low, high)
	if err != nil {
		return nil, err
	}

	return fuzzy.MembershipFunc(func(x float64) float64 {
		if x <= low {
			return 1
		}
		if x >= high {
			return 0
		}
		return clamp((high-x)/(high-low), 0, 1)
	}), nil
}

// Rectangular returns a step function holding the ceiling degree on
// [low, high] and the floor degree outside of it. Requires low < high.
func Rectangular(low, high float64, opts ...Option) (fuzzy.MembershipFunction, error) {
	err := validateInterval(low, high)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	err = o.validate()
	if err != nil {
		return nil, err
	}

	cm, nm := o.ceiling, o.floor
	return fuzzy.MembershipFunc(func(x float64) float64 {
		if x < low || x > high {
			return nm
		}
		return cm
	}), nil
}

// Triangular returns a triangle rising from the floor degree at low to
// the ceiling degree at the peak and falling back to the floor degree
// at high. The peak defaults to the midpoint and can be moved with
// [PeakAt]. Requires low < peak < high.
func Triangular(low, high float64, opts ...Option) (fuzzy.MembershipFunction, error) {
	err := validateInterval(low, high)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	err = o.validate()
	if err != nil {
		return nil, err
	}

	c := o.peak
	if math.IsNaN(c) {
		c = low + (high-low)/2
	}
	if !(low < c && c < high) {
		return nil, fuzzy.InvalidParameterError{Param: "peak", Reason: "must lie strictly between low and high"}
	}

	cm, nm := o.ceiling, o.floor
	return fuzzy.MembershipFunc(func(x float64) float64 {
		if x <= low || x >= high {
			return nm
		}
		if x <= c {
			return clamp(nm+(x-low)/(c-low)*(cm-nm), nm, cm)
		}
		return clamp(nm+(high-x)/(high-c)*(cm-nm), nm, cm)
	}), nil
}

// Trapezoid returns a trapezoid rising from the floor degree at low to
// a plateau at the ceiling degree on [cLow, cHigh] and falling back to
// the floor degree at high. Requires low < cLow <= cHigh < high.
func Trapezoid(low, cLow, cHigh, high float64, opts ...Option) (fuzzy.MembershipFunction, error) {
	if math.IsNaN(low) || math.IsNaN(cLow) || math.IsNaN(cHigh) || math.IsNaN(high) {
		return nil, fuzzy.InvalidParameterError{Param: "low", Reason: "must not be NaN"}
	}
	if !(low < cLow && cLow <= cHigh && cHigh < high) {
		return nil, fuzzy.InvalidParameterError{Param: "low", Reason: "must satisfy low < cLow <= cHigh < high"}
	}
	o := buildOptions(opts)
	err := o.validate()
	if err != nil {
		return nil, err
	}

	cm, nm := o.ceiling, o.floor
	return fuzzy.MembershipFunc(func(x float64) float64 {
		if x <= low || x >= high {
			return nm
		}
		if x >= cLow && x <= cHigh {
			return cm
		}
		if x < cLow {
			return clamp(nm+(x-low)/(cLow-low)*(cm-nm), nm, cm)
		}
		return clamp(nm+(high-x)/(high-cHigh)*(cm-nm), nm, cm)
	}), nil
}
