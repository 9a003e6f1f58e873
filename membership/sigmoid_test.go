// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package membership

import (
	"math"
	"math/rand"
	"testing"

	"github.com/z5labs/fuzzy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigmoid(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		testCases := []struct {
			name string
			l    float64
		}{
			{name: "if the ceiling is zero", l: 0},
			{name: "if the ceiling is negative", l: -0.5},
			{name: "if the ceiling is above one", l: 1.5},
			{name: "if the ceiling is NaN", l: math.NaN()},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Sigmoid(tc.l, 1, 0)

				var ierr fuzzy.InvalidParameterError
				require.ErrorAs(t, err, &ierr)
			})
		}
	})

	t.Run("will pass through half the ceiling at the midpoint", func(t *testing.T) {
		f, err := Sigmoid(0.8, 2, 3)
		require.Nil(t, err)

		if !assert.InDelta(t, 0.4, f.Evaluate(3), 1e-15) {
			return
		}
	})

	t.Run("will stay within the unit interval", func(t *testing.T) {
		r := rand.New(rand.NewSource(20))
		for i := 0; i < propertyRuns; i++ {
			l := r.Float64()
			if l == 0 {
				continue
			}

			f, err := Sigmoid(l, randFinite(r), randFinite(r))
			require.Nil(t, err)

			if !assertUnitRange(t, f, randFinite(r)) {
				return
			}
		}
	})

	t.Run("will saturate on infinite input", func(t *testing.T) {
		f, err := Sigmoid(1, 2, 0)
		require.Nil(t, err)

		if !assert.Equal(t, 1.0, f.Evaluate(math.Inf(1))) {
			return
		}
		if !assert.Equal(t, 0.0, f.Evaluate(math.Inf(-1))) {
			return
		}
	})
}

func TestBoundedSigmoid(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		t.Run("if low is not less than high", func(t *testing.T) {
			_, err := BoundedSigmoid(4, 4)

			var ierr fuzzy.InvalidParameterError
			require.ErrorAs(t, err, &ierr)
		})
	})

	t.Run("will pass through 0.1 and 0.9 at the interval bounds", func(t *testing.T) {
		f, err := BoundedSigmoid(0, 10)
		require.Nil(t, err)

		if !assert.InDelta(t, 0.1, f.Evaluate(0), 1e-12) {
			return
		}
		if !assert.InDelta(t, 0.9, f.Evaluate(10), 1e-12) {
			return
		}
		if !assert.InDelta(t, 0.5, f.Evaluate(5), 1e-12) {
			return
		}
	})

	t.Run("will stay within the unit interval", func(t *testing.T) {
		r := rand.New(rand.NewSource(21))
		for i := 0; i < propertyRuns; i++ {
			low, high := randFinite(r), randFinite(r)
			if !(low < high) {
				low, high = high, low
				if !(low < high) {
					continue
				}
			}

			f, err := BoundedSigmoid(low, high)
			require.Nil(t, err)

			if !assertUnitRange(t, f, randFinite(r)) {
				return
			}
		}
	})
}

func TestSimpleSigmoid(t *testing.T) {
	t.Run("will pass through one half at zero", func(t *testing.T) {
		f := SimpleSigmoid(0.229756)

		if !assert.InDelta(t, 0.5, f.Evaluate(0), 1e-15) {
			return
		}
	})

	t.Run("will saturate on infinite input", func(t *testing.T) {
		t.Run("even with a zero gain", func(t *testing.T) {
			f := SimpleSigmoid(0)

			if !assert.Equal(t, 1.0, f.Evaluate(math.Inf(1))) {
				return
			}
			if !assert.Equal(t, 0.0, f.Evaluate(math.Inf(-1))) {
				return
			}
		})
	})

	t.Run("will stay within the unit interval", func(t *testing.T) {
		r := rand.New(rand.NewSource(22))
		for i := 0; i < propertyRuns; i++ {
			f := SimpleSigmoid(randFinite(r))
			if !assertUnitRange(t, f, randFinite(r)) {
				return
			}
		}
	})
}

func TestTriangularSigmoid(t *testing.T) {
	t.Run("will return an error", func(t *testing.T) {
		testCases := []struct {
			name string
			low  float64
			high float64
			opts []Option
		}{
			{name: "if low is not less than high", low: 3, high: 3},
			{name: "if the peak is outside of the interval", low: 0, high: 10, opts: []Option{PeakAt(-2)}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := TriangularSigmoid(tc.low, tc.high, tc.opts...)

				var ierr fuzzy.InvalidParameterError
				require.ErrorAs(t, err, &ierr)
			})
		}
	})

	t.Run("will peak at the configured center", func(t *testing.T) {
		f, err := TriangularSigmoid(0, 10, PeakAt(4))
		require.Nil(t, err)

		peak := f.Evaluate(4)
		r := rand.New(rand.NewSource(23))
		for i := 0; i < propertyRuns; i++ {
			x := r.Float64()*14 - 2
			if !assert.LessOrEqual(t, f.Evaluate(x), peak) {
				return
			}
		}
	})

	t.Run("will stay within the unit interval", func(t *testing.T) {
		f, err := TriangularSigmoid(-4, 16)
		require.Nil(t, err)

		r := rand.New(rand.NewSource(24))
		for i := 0; i < propertyRuns; i++ {
			if !assertUnitRange(t, f, randFinite(r)) {
				return
			}
		}
	})
}
