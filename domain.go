// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fuzzy

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"github.com/z5labs/fuzzy/internal/try"
)

const (
	defaultResolution = 1.0

	// warnSampleCount is the per set sample count above which the
	// domain logs a warning at construction time.
	warnSampleCount = 100_000

	// maxSampleCount is the per set sample count above which
	// construction fails outright.
	maxSampleCount = 10_000_000
)

type domainOptions struct {
	res        float64
	logHandler slog.Handler
}

// DomainOption configures a [Domain] during construction.
type DomainOption interface {
	applyDomain(*domainOptions)
}

type domainOptionFunc func(*domainOptions)

func (f domainOptionFunc) applyDomain(do *domainOptions) {
	f(do)
}

// Resolution overrides the default sampling resolution of 1.
func Resolution(res float64) DomainOption {
	return domainOptionFunc(func(do *domainOptions) {
		do.res = res
	})
}

// LogHandler overrides the default noop [slog.Handler].
func LogHandler(h slog.Handler) DomainOption {
	return domainOptionFunc(func(do *domainOptions) {
		do.logHandler = h
	})
}

// Domain is a named numeric range with a sampling resolution. It owns
// a collection of uniquely named [Set]s, each of which is sampled over
// [low, high] stepped by the domain resolution.
type Domain struct {
	name string
	low  float64
	high float64
	res  float64

	log *slog.Logger

	mu   sync.Mutex
	sets map[string]*Set
}

// NewDomain validates low < high along with any option values and
// returns a [Domain] with no registered [Set]s. The bounds and
// resolution are fixed for the lifetime of the domain which allows
// each set to cache its samples.
func NewDomain(name string, low, high float64, opts ...DomainOption) (*Domain, error) {
	do := &domainOptions{
		res:        defaultResolution,
		logHandler: noopLogHandler{},
	}
	for _, opt := range opts {
		opt.applyDomain(do)
	}

	if name == "" {
		return nil, InvalidParameterError{Param: "name", Reason: "must be non-empty"}
	}
	if math.IsNaN(low) || math.IsNaN(high) || !(low < high) {
		return nil, InvalidParameterError{Param: "low", Reason: "must be strictly less than high"}
	}
	if math.IsNaN(do.res) || do.res <= 0 {
		return nil, InvalidParameterError{Param: "res", Reason: "must be a positive number"}
	}

	d := &Domain{
		name: name,
		low:  low,
		high: high,
		res:  do.res,
		log:  slog.New(do.logHandler),
		sets: make(map[string]*Set),
	}

	n := d.sampleCount()
	if n > maxSampleCount {
		return nil, InvalidParameterError{Param: "res", Reason: "resolution is too fine for the domain range"}
	}
	if n > warnSampleCount {
		d.log.Warn("domain will produce large sample arrays",
			slog.String("domain", name),
			slog.Int("samples", n))
	}
	return d, nil
}

// Name returns the domain identifier.
func (d *Domain) Name() string { return d.name }

// Low returns the inclusive lower bound.
func (d *Domain) Low() float64 { return d.low }

// High returns the inclusive upper bound.
func (d *Domain) High() float64 { return d.high }

// Resolution returns the sampling resolution.
func (d *Domain) Resolution() float64 { return d.res }

// sampleCount returns the number of sample points in [low, high]
// stepped by res. The epsilon compensates for accumulated float
// error so that exact multiples of res land on the upper bound.
func (d *Domain) sampleCount() int {
	return int(math.Floor((d.high-d.low)/d.res+1e-9)) + 1
}

// Define registers fn on the domain under the given name and returns
// the resulting [Set]. It returns a [NameCollisionError] if the name is
// already taken. The function is probed at the domain bounds so that a
// panicking closure surfaces as a [MembershipPanicError] at definition
// time rather than during a later evaluation.
func (d *Domain) Define(name string, fn MembershipFunction) (*Set, error) {
	if name == "" {
		return nil, InvalidParameterError{Param: "name", Reason: "must be non-empty"}
	}
	if fn == nil {
		return nil, InvalidParameterError{Param: "fn", Reason: "must be non-nil"}
	}

	err := d.probe(fn)
	if err != nil {
		return nil, MembershipPanicError{Name: name, Cause: err}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, exists := d.sets[name]
	if exists {
		return nil, NameCollisionError{Domain: d.name, Name: name}
	}

	s := &Set{
		name:   name,
		domain: d,
		fn:     fn,
	}
	d.sets[name] = s
	return s, nil
}

func (d *Domain) probe(fn MembershipFunction) (err error) {
	defer try.Recover(&err)

	fn.Evaluate(d.low)
	fn.Evaluate(d.high)
	return nil
}

// defineDerived registers a set produced by an operation on an
// existing set, e.g. [Set.Normalized]. Unlike [Domain.Define] it
// replaces any previous entry under the same generated name.
func (d *Domain) defineDerived(name string, fn MembershipFunction) *Set {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, exists := d.sets[name]
	if exists {
		d.log.Debug("replacing derived set", slog.String("domain", d.name), slog.String("set", name))
	}

	s := &Set{
		name:   name,
		domain: d,
		fn:     fn,
	}
	d.sets[name] = s
	return s
}

// Lookup returns the set registered under the given name.
func (d *Domain) Lookup(name string) (*Set, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	s, ok := d.sets[name]
	return s, ok
}

// Sets returns a snapshot of the name to [Set] registry.
func (d *Domain) Sets() map[string]*Set {
	d.mu.Lock()
	defer d.mu.Unlock()

	sets := make(map[string]*Set, len(d.sets))
	for name, s := range d.sets {
		sets[name] = s
	}
	return sets
}

// Evaluate evaluates every registered set at x and returns a mapping
// from set name to degree of membership.
func (d *Domain) Evaluate(x float64) map[string]float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	degrees := make(map[string]float64, len(d.sets))
	for name, s := range d.sets {
		degrees[name] = s.fn.Evaluate(x)
	}
	return degrees
}

// Min returns the smallest degree of membership across all registered
// sets at x. It reports false if the domain has no sets.
func (d *Domain) Min(x float64) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ok := false
	min := math.Inf(1)
	for _, s := range d.sets {
		min = math.Min(min, s.fn.Evaluate(x))
		ok = true
	}
	if !ok {
		return 0, false
	}
	return min, true
}

// Max returns the largest degree of membership across all registered
// sets at x. It reports false if the domain has no sets.
func (d *Domain) Max(x float64) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ok := false
	max := math.Inf(-1)
	for _, s := range d.sets {
		max = math.Max(max, s.fn.Evaluate(x))
		ok = true
	}
	if !ok {
		return 0, false
	}
	return max, true
}

type noopLogHandler struct{}

func (noopLogHandler) Enabled(_ context.Context, _ slog.Level) bool  { return true }
func (noopLogHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h noopLogHandler) WithAttrs(_ []slog.Attr) slog.Handler        { return h }
func (h noopLogHandler) WithGroup(name string) slog.Handler          { return h }
