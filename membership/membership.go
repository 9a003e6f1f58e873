// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package membership provides constructors for the standard parametric membership functions.
//
// Every constructor returns a [fuzzy.MembershipFunction] whose output
// lies in [0, 1] for all finite inputs, except [Noop] and [Constant]
// which are explicitly unbounded pass throughs. Constructors with
// parameter preconditions validate them eagerly and return a
// [fuzzy.InvalidParameterError] instead of deferring the failure to
// evaluation time.
package membership

import (
	"math"

	"github.com/z5labs/fuzzy"
)

type options struct {
	ceiling float64
	floor   float64
	peak    float64
}

// Option configures the shape parameters shared by several constructors.
type Option interface {
	apply(*options)
}

type optionFunc func(*options)

func (f optionFunc) apply(o *options) {
	f(o)
}

// CeilingAt sets the maximum degree of membership. Defaults to 1.
func CeilingAt(cm float64) Option {
	return optionFunc(func(o *options) {
		o.ceiling = cm
	})
}

// FloorAt sets the minimum degree of membership. Defaults to 0.
func FloorAt(nm float64) Option {
	return optionFunc(func(o *options) {
		o.floor = nm
	})
}

// PeakAt sets the location of the peak for the triangular shapes.
// Defaults to the midpoint of the supporting interval.
func PeakAt(c float64) Option {
	return optionFunc(func(o *options) {
		o.peak = c
	})
}

func buildOptions(opts []Option) *options {
	o := &options{
		ceiling: 1,
		floor:   0,
		peak:    math.NaN(),
	}
	for _, opt := range opts {
		opt.apply(o)
	}
	return o
}

func (o *options) validate() error {
	if math.IsNaN(o.ceiling) || o.ceiling > 1 {
		return fuzzy.InvalidParameterError{Param: "ceiling", Reason: "must be at most 1"}
	}
	if math.IsNaN(o.floor) || o.floor < 0 {
		return fuzzy.InvalidParameterError{Param: "floor", Reason: "must be at least 0"}
	}
	if o.floor >= o.ceiling {
		return fuzzy.InvalidParameterError{Param: "floor", Reason: "must be strictly less than ceiling"}
	}
	return nil
}

func validateInterval(low, high float64) error {
	if math.IsNaN(low) || math.IsNaN(high) || !(low < high) {
		return fuzzy.InvalidParameterError{Param: "low", Reason: "must be strictly less than high"}
	}
	return nil
}

// Noop returns the identity function, f(x) = x. It is the unit of
// composition and carries no codomain guarantee: callers are
// responsible for pre-clamping when using it standalone.
func Noop() fuzzy.MembershipFunction {
	return fuzzy.MembershipFunc(func(x float64) float64 {
		return x
	})
}

// Constant returns f(x) = c for all x. Like [Noop] it performs no
// bounding of its own.
func Constant(c float64) fuzzy.MembershipFunction {
	return fuzzy.MembershipFunc(func(x float64) float64 {
		return c
	})
}

// Inv returns the complement function, 1 - f(x). It is involutive:
// Inv(Inv(f)) evaluates to f for inputs producing degrees in [0, 1].
func Inv(f fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return fuzzy.MembershipFunc(func(x float64) float64 {
		return 1 - f.Evaluate(x)
	})
}

// Alpha clamps f's output into [lower, upper]: it returns lower when
// f(x) <= lower, upper when f(x) >= upper and f(x) otherwise.
// Requires 0 <= lower < upper <= 1.
func Alpha(lower, upper float64, f fuzzy.MembershipFunction) (fuzzy.MembershipFunction, error) {
	if math.IsNaN(lower) || lower < 0 {
		return nil, fuzzy.InvalidParameterError{Param: "lower", Reason: "must be at least 0"}
	}
	if math.IsNaN(upper) || upper > 1 {
		return nil, fuzzy.InvalidParameterError{Param: "upper", Reason: "must be at most 1"}
	}
	if lower >= upper {
		return nil, fuzzy.InvalidParameterError{Param: "lower", Reason: "must be strictly less than upper"}
	}

	return fuzzy.MembershipFunc(func(x float64) float64 {
		y := f.Evaluate(x)
		if y <= lower {
			return lower
		}
		if y >= upper {
			return upper
		}
		return y
	}), nil
}

// Normalize rescales f by dividing its output by height, clamping
// the result into [0, 1]. Requires height > 0. For the rescaled
// function to be faithful, height should dominate f's output.
func Normalize(height float64, f fuzzy.MembershipFunction) (fuzzy.MembershipFunction, error) {
	if math.IsNaN(height) || height <= 0 {
		return nil, fuzzy.InvalidParameterError{Param: "height", Reason: "must be a positive number"}
	}

	return fuzzy.MembershipFunc(func(x float64) float64 {
		return math.Min(1, math.Max(0, f.Evaluate(x)/height))
	}), nil
}

// Singleton returns the ceiling degree exactly at c and the floor
// degree everywhere else. Requires 0 <= floor < ceiling <= 1.
func Singleton(c float64, opts ...Option) (fuzzy.MembershipFunction, error) {
	o := buildOptions(opts)
	err := o.validate()
	if err != nil {
		return nil, err
	}

	cm, nm := o.ceiling, o.floor
	return fuzzy.MembershipFunc(func(x float64) float64 {
		if x == c {
			return cm
		}
		return nm
	}), nil
}
