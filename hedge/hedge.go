// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package hedge provides linguistic modifiers for fuzzy sets.
//
// A hedge takes a [fuzzy.Set] and returns a new membership function
// that sharpens or softens the set's curve, leaving the input set
// untouched. For sets whose degrees lie in [0, 1] every hedge
// preserves that codomain.
package hedge

import (
	"math"

	"github.com/z5labs/fuzzy"
)

func raise(s *fuzzy.Set, exponent float64) fuzzy.MembershipFunction {
	return fuzzy.MembershipFunc(func(x float64) float64 {
		return math.Pow(s.Evaluate(x), exponent)
	})
}

// Very intensifies membership by squaring the degree.
func Very(s *fuzzy.Set) fuzzy.MembershipFunction {
	return raise(s, 2)
}

// Plus shifts intensity up by a smaller exponent than [Very].
func Plus(s *fuzzy.Set) fuzzy.MembershipFunction {
	return raise(s, 1.25)
}

// Minus softens membership, the counterpart of [Plus].
func Minus(s *fuzzy.Set) fuzzy.MembershipFunction {
	return raise(s, 0.75)
}
