// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package rule provides the numeric utilities used when mapping defuzzified output back into engineering units.
package rule

import (
	"math"

	"github.com/z5labs/fuzzy"
)

// Rescale returns a function mapping a degree in [0, 1] linearly onto
// [outMin, outMax]. Requires outMin < outMax.
func Rescale(outMin, outMax float64) (func(float64) float64, error) {
	return RescaleFrom(0, 1, outMin, outMax)
}

// RescaleFrom returns a function mapping [inMin, inMax] linearly onto
// [outMin, outMax]. Inputs outside [inMin, inMax] extrapolate along
// the same line and carry no bounds guarantee. Requires inMin < inMax
// and outMin < outMax.
func RescaleFrom(inMin, inMax, outMin, outMax float64) (func(float64) float64, error) {
	if math.IsNaN(inMin) || math.IsNaN(inMax) || !(inMin < inMax) {
		return nil, fuzzy.InvalidParameterError{Param: "inMin", Reason: "must be strictly less than inMax"}
	}
	if math.IsNaN(outMin) || math.IsNaN(outMax) || !(outMin < outMax) {
		return nil, fuzzy.InvalidParameterError{Param: "outMin", Reason: "must be strictly less than outMax"}
	}

	scale := (outMax - outMin) / (inMax - inMin)
	return func(x float64) float64 {
		y := outMin + (x-inMin)*scale
		if x >= inMin && x <= inMax {
			// Guard against float round off pushing an in-range
			// input just past the output bounds.
			y = math.Min(outMax, math.Max(outMin, y))
		}
		return y
	}, nil
}

// RoundPartial rounds x to the nearest multiple of res, the snapping
// applied when presenting defuzzified values at domain resolution.
// The result is always within res/2 of x. A res of 0 returns x
// unchanged.
func RoundPartial(x, res float64) float64 {
	if res == 0 {
		return x
	}
	if math.IsInf(res, 0) {
		// The nearest finite multiple of an infinite step is 0.
		return 0
	}
	return math.Round(x/res) * res
}
