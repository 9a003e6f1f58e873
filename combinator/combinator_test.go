// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package combinator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/z5labs/fuzzy"
	"github.com/z5labs/fuzzy/membership"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyRuns = 1000

func TestCombinators(t *testing.T) {
	combinators := []struct {
		name string
		op   OperatorFunc
	}{
		{name: "Min", op: Min},
		{name: "Max", op: Max},
		{name: "Product", op: Product},
		{name: "BoundedSum", op: BoundedSum},
		{name: "LukasiewiczAnd", op: LukasiewiczAnd},
		{name: "LukasiewiczOr", op: LukasiewiczOr},
		{name: "EinsteinProduct", op: EinsteinProduct},
		{name: "EinsteinSum", op: EinsteinSum},
		{name: "HamacherProduct", op: HamacherProduct},
		{name: "HamacherSum", op: HamacherSum},
		{name: "SimpleDisjointSum", op: SimpleDisjointSum},
	}

	for _, c := range combinators {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Run("will stay within the unit interval for unit inputs", func(t *testing.T) {
				r := rand.New(rand.NewSource(40))
				for i := 0; i < propertyRuns; i++ {
					a := membership.Constant(r.Float64())
					b := membership.Constant(r.Float64())

					y := c.op(a, b).Evaluate(r.Float64())
					if !assert.GreaterOrEqual(t, y, 0.0) {
						return
					}
					if !assert.LessOrEqual(t, y, 1.0) {
						return
					}
				}
			})

			t.Run("will agree with itself under argument order", func(t *testing.T) {
				r := rand.New(rand.NewSource(41))
				for i := 0; i < propertyRuns; i++ {
					a := membership.Constant(r.Float64())
					b := membership.Constant(r.Float64())

					if !assert.InDelta(t, c.op(a, b).Evaluate(0), c.op(b, a).Evaluate(0), 1e-15) {
						return
					}
				}
			})
		})
	}
}

func TestMin(t *testing.T) {
	t.Run("will return the smaller degree", func(t *testing.T) {
		f := Min(membership.Constant(0.3), membership.Constant(0.7))

		if !assert.Equal(t, 0.3, f.Evaluate(0)) {
			return
		}
	})
}

func TestMax(t *testing.T) {
	t.Run("will return the larger degree", func(t *testing.T) {
		f := Max(membership.Constant(0.3), membership.Constant(0.7))

		if !assert.Equal(t, 0.7, f.Evaluate(0)) {
			return
		}
	})
}

func TestHamacherProduct(t *testing.T) {
	t.Run("will define the zero over zero case as zero", func(t *testing.T) {
		f := HamacherProduct(membership.Constant(0), membership.Constant(0))

		if !assert.Equal(t, 0.0, f.Evaluate(0)) {
			return
		}
	})
}

func TestHamacherSum(t *testing.T) {
	t.Run("will define the zero over zero case as one", func(t *testing.T) {
		f := HamacherSum(membership.Constant(1), membership.Constant(1))

		if !assert.Equal(t, 1.0, f.Evaluate(0)) {
			return
		}
	})
}

func TestLukasiewicz(t *testing.T) {
	t.Run("will clip at the unit bounds", func(t *testing.T) {
		and := LukasiewiczAnd(membership.Constant(0.2), membership.Constant(0.3))
		or := LukasiewiczOr(membership.Constant(0.8), membership.Constant(0.7))

		if !assert.Equal(t, 0.0, and.Evaluate(0)) {
			return
		}
		if !assert.Equal(t, 1.0, or.Evaluate(0)) {
			return
		}
	})
}

func TestLambda(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		testCases := []struct {
			name string
			l    float64
		}{
			{name: "if the blend parameter is negative", l: -0.1},
			{name: "if the blend parameter is above one", l: 1.1},
			{name: "if the blend parameter is NaN", l: math.NaN()},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Lambda(tc.l)

				var ierr fuzzy.InvalidParameterError
				require.ErrorAs(t, err, &ierr)
			})
		}
	})

	t.Run("will interpolate between AND-like and OR-like behavior", func(t *testing.T) {
		a := membership.Constant(0.4)
		b := membership.Constant(0.6)

		and, err := Lambda(1)
		require.Nil(t, err)

		or, err := Lambda(0)
		require.Nil(t, err)

		if !assert.InDelta(t, Product(a, b).Evaluate(0), and.Combine(a, b).Evaluate(0), 1e-15) {
			return
		}
		if !assert.InDelta(t, BoundedSum(a, b).Evaluate(0), or.Combine(a, b).Evaluate(0), 1e-15) {
			return
		}
	})

	t.Run("will stay within the unit interval for unit inputs", func(t *testing.T) {
		r := rand.New(rand.NewSource(42))
		for i := 0; i < propertyRuns; i++ {
			op, err := Lambda(r.Float64())
			require.Nil(t, err)

			f := op.Combine(membership.Constant(r.Float64()), membership.Constant(r.Float64()))
			y := f.Evaluate(r.Float64())
			if !assert.GreaterOrEqual(t, y, 0.0) {
				return
			}
			if !assert.LessOrEqual(t, y, 1.0) {
				return
			}
		}
	})
}

func TestGamma(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		testCases := []struct {
			name string
			g    float64
		}{
			{name: "if the blend parameter is negative", g: -0.1},
			{name: "if the blend parameter is above one", g: 1.1},
			{name: "if the blend parameter is NaN", g: math.NaN()},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Gamma(tc.g)

				var ierr fuzzy.InvalidParameterError
				require.ErrorAs(t, err, &ierr)
			})
		}
	})

	t.Run("will interpolate between AND-like and OR-like behavior", func(t *testing.T) {
		a := membership.Constant(0.4)
		b := membership.Constant(0.6)

		and, err := Gamma(0)
		require.Nil(t, err)

		or, err := Gamma(1)
		require.Nil(t, err)

		if !assert.InDelta(t, Product(a, b).Evaluate(0), and.Combine(a, b).Evaluate(0), 1e-15) {
			return
		}
		if !assert.InDelta(t, BoundedSum(a, b).Evaluate(0), or.Combine(a, b).Evaluate(0), 1e-15) {
			return
		}
	})

	t.Run("will stay within the unit interval for unit inputs", func(t *testing.T) {
		r := rand.New(rand.NewSource(43))
		for i := 0; i < propertyRuns; i++ {
			op, err := Gamma(r.Float64())
			require.Nil(t, err)

			f := op.Combine(membership.Constant(r.Float64()), membership.Constant(r.Float64()))
			y := f.Evaluate(r.Float64())
			if !assert.GreaterOrEqual(t, y, 0.0) {
				return
			}
			if !assert.LessOrEqual(t, y, 1.0) {
				return
			}
		}
	})
}
