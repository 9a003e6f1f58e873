// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package combinator provides the fuzzy logical operators merging two membership functions into one.
//
// Every combinator guarantees a result in [0, 1] whenever both inputs
// evaluate into [0, 1]. The parameter free T-norms and T-conorms are
// plain functions; the parameterized blends [Lambda] and [Gamma]
// validate their blend parameter eagerly and return an [Operator].
package combinator

import (
	"math"

	"github.com/z5labs/fuzzy"
)

// Operator combines two membership functions into one.
type Operator interface {
	Combine(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction
}

// OperatorFunc is a func variant of the [Operator] interface.
type OperatorFunc func(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction

// Combine implements the [Operator] interface.
func (f OperatorFunc) Combine(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return f(a, b)
}

func combine(a, b fuzzy.MembershipFunction, merge func(x, y float64) float64) fuzzy.MembershipFunction {
	return fuzzy.MembershipFunc(func(v float64) float64 {
		return merge(a.Evaluate(v), b.Evaluate(v))
	})
}

// Min is the Zadeh AND: min(a, b).
func Min(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, math.Min)
}

// Max is the Zadeh OR: max(a, b).
func Max(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, math.Max)
}

// Product is the algebraic AND: a*b.
func Product(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		return x * y
	})
}

// BoundedSum is the algebraic OR: a + b - a*b.
func BoundedSum(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		return x + y - x*y
	})
}

// LukasiewiczAnd is the Lukasiewicz T-norm: max(0, a + b - 1).
func LukasiewiczAnd(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		return math.Max(0, x+y-1)
	})
}

// LukasiewiczOr is the Lukasiewicz T-conorm: min(1, a + b).
func LukasiewiczOr(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		return math.Min(1, x+y)
	})
}

// EinsteinProduct is the Einstein T-norm: a*b / (2 - (a + b - a*b)).
func EinsteinProduct(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		return x * y / (2 - (x + y - x*y))
	})
}

// EinsteinSum is the Einstein T-conorm: (a + b) / (1 + a*b).
func EinsteinSum(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		return (x + y) / (1 + x*y)
	})
}

// HamacherProduct is the parameter free Hamacher T-norm:
// a*b / (a + b - a*b), with the 0/0 case at a = b = 0 defined as 0.
func HamacherProduct(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		denom := x + y - x*y
		if denom == 0 {
			return 0
		}
		return x * y / denom
	})
}

// HamacherSum is the parameter free Hamacher T-conorm:
// (a + b - 2*a*b) / (1 - a*b), with the 0/0 case at a = b = 1
// defined as 1.
func HamacherSum(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		denom := 1 - x*y
		if denom == 0 {
			return 1
		}
		return (x + y - 2*x*y) / denom
	})
}

// SimpleDisjointSum is the fuzzy symmetric difference:
// max(min(a, 1-b), min(1-a, b)).
func SimpleDisjointSum(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
	return combine(a, b, func(x, y float64) float64 {
		return math.Max(math.Min(x, 1-y), math.Min(1-x, y))
	})
}

// Lambda returns the lambda blend operator, a convex combination of
// the algebraic AND and the algebraic OR:
//
//	l*(a*b) + (1-l)*(a + b - a*b)
//
// With l = 1 it behaves like [Product], with l = 0 like [BoundedSum].
// Requires l in [0, 1].
func Lambda(l float64) (Operator, error) {
	if math.IsNaN(l) || l < 0 || l > 1 {
		return nil, fuzzy.InvalidParameterError{Param: "l", Reason: "must be in [0, 1]"}
	}

	return OperatorFunc(func(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
		return combine(a, b, func(x, y float64) float64 {
			return l*(x*y) + (1-l)*(x+y-x*y)
		})
	}), nil
}

// Gamma returns the gamma blend operator:
//
//	(a*b)^(1-g) * (1 - (1-a)*(1-b))^g
//
// With g = 0 it behaves like [Product], with g = 1 like [BoundedSum].
// Requires g in [0, 1].
func Gamma(g float64) (Operator, error) {
	if math.IsNaN(g) || g < 0 || g > 1 {
		return nil, fuzzy.InvalidParameterError{Param: "g", Reason: "must be in [0, 1]"}
	}

	return OperatorFunc(func(a, b fuzzy.MembershipFunction) fuzzy.MembershipFunction {
		return combine(a, b, func(x, y float64) float64 {
			return math.Pow(x*y, 1-g) * math.Pow(1-(1-x)*(1-y), g)
		})
	}), nil
}
