// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package membership

import (
	"math"

	"github.com/z5labs/fuzzy"
)

// Gauss returns a Gaussian bump centered at c with spread b, peaking
// at the ceiling degree: ceiling * exp(-b*(x - c)^2). Larger b makes
// the bump narrower. Requires b > 0 and a ceiling in (0, 1].
func Gauss(c, b float64, opts ...Option) (fuzzy.MembershipFunction, error) {
	if math.IsNaN(b) || b <= 0 {
		return nil, fuzzy.InvalidParameterError{Param: "b", Reason: "must be a positive number"}
	}
	o := buildOptions(opts)
	if math.IsNaN(o.ceiling) || o.ceiling <= 0 || o.ceiling > 1 {
		return nil, fuzzy.InvalidParameterError{Param: "ceiling", Reason: "must be in (0, 1]"}
	}

	cm := o.ceiling
	return fuzzy.MembershipFunc(func(x float64) float64 {
		d := x - c
		return cm * math.Exp(-b*d*d)
	}), nil
}
