// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fuzzy

import (
	"math"
	"sync"
)

// equalityTolerance is the absolute tolerance used when comparing
// sampled degrees across sets. Comparisons are made over each set's
// own domain samples, so sets owned by different domains compare
// equal whenever their independently sampled arrays are numerically
// close, element by element.
const equalityTolerance = 1e-9

// Set pairs a [MembershipFunction] with the [Domain] that owns it.
//
// A set has no existence outside its domain: it is created by
// [Domain.Define] (or by a derived operation like [Set.Normalized])
// and remains registered on that domain for discoverability. The
// sampled array over the domain range is computed once and then
// frozen, which makes sets safe for concurrent readers.
type Set struct {
	name   string
	domain *Domain
	fn     MembershipFunction

	once    sync.Once
	samples []float64
}

// Name returns the name the set is registered under.
func (s *Set) Name() string { return s.name }

// Domain returns the owning [Domain].
func (s *Set) Domain() *Domain { return s.domain }

// Membership returns the underlying [MembershipFunction].
func (s *Set) Membership() MembershipFunction { return s.fn }

// Evaluate returns the degree of membership of x.
func (s *Set) Evaluate(x float64) float64 {
	return s.fn.Evaluate(x)
}

// Point is a single sample of a set.
type Point struct {
	X      float64
	Degree float64
}

func (s *Set) sampled() []float64 {
	s.once.Do(func() {
		n := s.domain.sampleCount()
		samples := make([]float64, n)
		for i := range samples {
			samples[i] = s.fn.Evaluate(s.domain.low + float64(i)*s.domain.res)
		}
		s.samples = samples
	})
	return s.samples
}

// Array returns the degrees of membership sampled over the owning
// domain range at domain resolution. The samples are computed once
// and cached; the returned slice is a copy which the caller may
// freely modify.
func (s *Set) Array() []float64 {
	samples := s.sampled()
	arr := make([]float64, len(samples))
	copy(arr, samples)
	return arr
}

// Points returns the sampled (x, degree) pairs over the owning domain
// range, ordered by x. It is intended for plotting front ends.
func (s *Set) Points() []Point {
	samples := s.sampled()
	points := make([]Point, len(samples))
	for i, degree := range samples {
		points[i] = Point{
			X:      s.domain.low + float64(i)*s.domain.res,
			Degree: degree,
		}
	}
	return points
}

// Equal reports whether both sets sample to numerically close arrays
// over their respective domains. Two sets owned by different domains
// are equal iff their sampled arrays have the same length and match
// within [equalityTolerance] element by element. Structural equality
// of the underlying functions is never consulted.
func (s *Set) Equal(other *Set) bool {
	a, b := s.sampled(), other.sampled()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > equalityTolerance {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every sampled degree of s is less than or
// equal to the corresponding degree of other, within tolerance. Sets
// sampling to arrays of different lengths are never comparable.
func (s *Set) SubsetOf(other *Set) bool {
	a, b := s.sampled(), other.sampled()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] > b[i]+equalityTolerance {
			return false
		}
	}
	return true
}

// SupersetOf reports whether other is a subset of s.
func (s *Set) SupersetOf(other *Set) bool {
	return other.SubsetOf(s)
}

// Normalized returns a set whose membership function is the original
// divided by its own maximum sampled height, clamped to [0, 1]. The
// result is registered on the owning domain under "normalized_" plus
// the set name, replacing any previous derived set of that name.
// Normalizing an already normalized set yields an equal set.
func (s *Set) Normalized() (*Set, error) {
	height := 0.0
	for _, degree := range s.sampled() {
		height = math.Max(height, degree)
	}
	if height <= 0 {
		return nil, InvalidParameterError{Param: "height", Reason: "cannot normalize a set with zero height"}
	}

	fn := s.fn
	normalized := MembershipFunc(func(x float64) float64 {
		return math.Min(1, math.Max(0, fn.Evaluate(x)/height))
	})
	return s.domain.defineDerived("normalized_"+s.name, normalized), nil
}

// Complement returns the set whose degree of membership is
// 1 - s(x). The result is registered on the owning domain under
// "complement_" plus the set name, replacing any previous derived
// set of that name.
func (s *Set) Complement() *Set {
	fn := s.fn
	complement := MembershipFunc(func(x float64) float64 {
		return 1 - fn.Evaluate(x)
	})
	return s.domain.defineDerived("complement_"+s.name, complement)
}

// CenterOfGravity returns the centroid of the sampled membership
// degrees, the usual defuzzification of a fuzzy result into a crisp
// value. It reports false if the set has zero area.
func (s *Set) CenterOfGravity() (float64, bool) {
	var area, moment float64
	for i, degree := range s.sampled() {
		x := s.domain.low + float64(i)*s.domain.res
		area += degree
		moment += x * degree
	}
	if area == 0 {
		return 0, false
	}
	return moment / area, true
}
