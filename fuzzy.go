// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fuzzy

// MembershipFunction maps a crisp value to a degree of membership in [0, 1].
//
// Implementations are expected to be pure: the same input must always
// produce the same degree and evaluation must not mutate shared state.
// Every constructor in the [github.com/z5labs/fuzzy/membership] package
// guarantees the [0, 1] codomain for all finite inputs, with the documented
// exceptions of Noop and Constant.
type MembershipFunction interface {
	Evaluate(x float64) float64
}

// MembershipFunc is a func variant of the [MembershipFunction] interface.
type MembershipFunc func(float64) float64

// Evaluate implements the [MembershipFunction] interface.
func (f MembershipFunc) Evaluate(x float64) float64 {
	return f(x)
}
