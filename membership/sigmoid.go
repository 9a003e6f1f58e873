// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package membership

import (
	"math"

	"github.com/z5labs/fuzzy"
)

// ln9 fixes the slope of the bounded sigmoid shapes so that they pass
// through 0.1 and 0.9 at their interval bounds.
var ln9 = math.Log(9)

// Sigmoid returns the logistic curve l / (1 + exp(-k*(x - x0)))
// scaled to the ceiling l. Requires 0 < l <= 1.
func Sigmoid(l, k, x0 float64) (fuzzy.MembershipFunction, error) {
	if math.IsNaN(l) || l <= 0 || l > 1 {
		return nil, fuzzy.InvalidParameterError{Param: "l", Reason: "must be in (0, 1]"}
	}

	return fuzzy.MembershipFunc(func(x float64) float64 {
		return l / (1 + math.Exp(-logisticExponent(k, x, x0)))
	}), nil
}

// logisticExponent computes k*(x - c) while guarding the 0 * Inf
// case, which would otherwise leak NaN out of a bounded constructor.
func logisticExponent(k, x, c float64) float64 {
	e := k * (x - c)
	if math.IsNaN(e) && !math.IsNaN(x) {
		return 0
	}
	return e
}

// BoundedSigmoid returns a rising logistic curve centered on the
// midpoint of [low, high] with its slope fixed so that f(low) = 0.1
// and f(high) = 0.9. Requires low < high.
func BoundedSigmoid(low, high float64) (fuzzy.MembershipFunction, error) {
	err := validateInterval(low, high)
	if err != nil {
		return nil, err
	}

	c := low + (high-low)/2
	k := 2 * ln9 / (high - low)
	return fuzzy.MembershipFunc(func(x float64) float64 {
		return 1 / (1 + math.Exp(-logisticExponent(k, x, c)))
	}), nil
}

// SimpleSigmoid returns a full range logistic curve through (0, 0.5)
// with gain k. Infinite inputs saturate to the respective tail.
func SimpleSigmoid(k float64) fuzzy.MembershipFunction {
	return fuzzy.MembershipFunc(func(x float64) float64 {
		// Guard the tails so that k == 0 cannot produce exp(NaN).
		if math.IsInf(x, -1) {
			return 0
		}
		if math.IsInf(x, 1) {
			return 1
		}
		return 1 / (1 + math.Exp(-k*x))
	})
}

// TriangularSigmoid returns a smooth triangle: the pointwise minimum
// of a rising bounded sigmoid on [low, peak] and its falling mirror on
// [peak, high]. The peak defaults to the midpoint and can be moved
// with [PeakAt]. Requires low < peak < high.
func TriangularSigmoid(low, high float64, opts ...Option) (fuzzy.MembershipFunction, error) {
	err := validateInterval(low, high)
	if err != nil {
		return nil, err
	}
	o := buildOptions(opts)

	c := o.peak
	if math.IsNaN(c) {
		c = low + (high-low)/2
	}
	if !(low < c && c < high) {
		return nil, fuzzy.InvalidParameterError{Param: "peak", Reason: "must lie strictly between low and high"}
	}

	rise, err := BoundedSigmoid(low, c)
	if err != nil {
		return nil, err
	}

	fallCenter := c + (high-c)/2
	fallSlope := 2 * ln9 / (high - c)
	fall := fuzzy.MembershipFunc(func(x float64) float64 {
		return 1 / (1 + math.Exp(logisticExponent(fallSlope, x, fallCenter)))
	})

	return fuzzy.MembershipFunc(func(x float64) float64 {
		return math.Min(rise.Evaluate(x), fall.Evaluate(x))
	}), nil
}
