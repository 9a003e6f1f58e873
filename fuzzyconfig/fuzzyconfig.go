// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package fuzzyconfig builds live domains from declarative definitions.
//
// Linguistic variables are commonly authored by domain experts rather
// than programmers, so the definitions can be decoded from YAML or any
// key value structure. Only definitions are handled here: sampled set
// arrays are never serialized.
package fuzzyconfig

import (
	"fmt"
	"io"

	"github.com/z5labs/fuzzy"
	"github.com/z5labs/fuzzy/membership"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// Config is the root of a declarative domain definition document.
type Config struct {
	Domains []DomainDefinition `config:"domains"`
}

// DomainDefinition declares a [fuzzy.Domain] along with its sets.
// A zero Resolution falls back to the domain default of 1.
type DomainDefinition struct {
	Name       string          `config:"name"`
	Low        float64         `config:"low"`
	High       float64         `config:"high"`
	Resolution float64         `config:"resolution"`
	Sets       []SetDefinition `config:"sets"`
}

// SetDefinition declares a named set in terms of a membership
// function definition.
type SetDefinition struct {
	Name     string             `config:"name"`
	Function FunctionDefinition `config:"function"`
}

// FunctionDefinition declares a membership function by kind plus the
// shaping parameters that kind consumes. Ceiling, Floor and Peak are
// optional; absent values fall back to the constructor defaults.
type FunctionDefinition struct {
	Kind string `config:"kind"`

	Low         float64  `config:"low"`
	High        float64  `config:"high"`
	PlateauLow  float64  `config:"plateau_low"`
	PlateauHigh float64  `config:"plateau_high"`
	Peak        *float64 `config:"peak"`
	Ceiling     *float64 `config:"ceiling"`
	Floor       *float64 `config:"floor"`

	Slope     float64 `config:"slope"`
	Intercept float64 `config:"intercept"`
	Gain      float64 `config:"gain"`
	Midpoint  float64 `config:"midpoint"`
	Center    float64 `config:"center"`
	Spread    float64 `config:"spread"`
	Value     float64 `config:"value"`
}

// InvalidYamlError occurs if the underlying io.Reader contains invalid YAML.
type InvalidYamlError struct {
	cause error
}

// Error implements the [builtin.error] interface.
func (e InvalidYamlError) Error() string {
	return fmt.Sprintf("invalid yaml: %s", e.cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e InvalidYamlError) Unwrap() error {
	return e.cause
}

// UnknownKindError occurs when a [FunctionDefinition] names a
// membership function kind this package does not know how to build.
type UnknownKindError struct {
	Kind string
}

// Error implements the [builtin.error] interface.
func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown membership function kind: %q", e.Kind)
}

// FromYaml decodes a [Config] from YAML.
func FromYaml(r io.Reader) (Config, error) {
	var cfg Config

	b, err := io.ReadAll(r)
	if err != nil {
		return cfg, err
	}

	m := make(map[string]any)
	err = yaml.Unmarshal(b, &m)
	if err != nil {
		return cfg, InvalidYamlError{cause: err}
	}
	return Decode(m)
}

// Decode decodes a [Config] from a key value structure, coercing
// between compatible scalar types along the way.
func Decode(m map[string]any) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		Result:           &cfg,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, err
	}

	err = dec.Decode(m)
	if err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Build constructs every declared domain along with its sets. The
// given options, e.g. [fuzzy.LogHandler], are applied to each domain.
func (c Config) Build(opts ...fuzzy.DomainOption) ([]*fuzzy.Domain, error) {
	domains := make([]*fuzzy.Domain, 0, len(c.Domains))
	for _, dd := range c.Domains {
		d, err := dd.Build(opts...)
		if err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, nil
}

// Build constructs a single domain and registers its declared sets.
func (dd DomainDefinition) Build(opts ...fuzzy.DomainOption) (*fuzzy.Domain, error) {
	if dd.Resolution != 0 {
		opts = append(opts, fuzzy.Resolution(dd.Resolution))
	}

	d, err := fuzzy.NewDomain(dd.Name, dd.Low, dd.High, opts...)
	if err != nil {
		return nil, err
	}

	for _, sd := range dd.Sets {
		fn, err := sd.Function.Build()
		if err != nil {
			return nil, err
		}

		_, err = d.Define(sd.Name, fn)
		if err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (fd FunctionDefinition) shapeOptions() []membership.Option {
	var opts []membership.Option
	if fd.Ceiling != nil {
		opts = append(opts, membership.CeilingAt(*fd.Ceiling))
	}
	if fd.Floor != nil {
		opts = append(opts, membership.FloorAt(*fd.Floor))
	}
	if fd.Peak != nil {
		opts = append(opts, membership.PeakAt(*fd.Peak))
	}
	return opts
}

// Build constructs the declared membership function.
func (fd FunctionDefinition) Build() (fuzzy.MembershipFunction, error) {
	switch fd.Kind {
	case "constant":
		return membership.Constant(fd.Value), nil
	case "linear":
		return membership.Linear(fd.Slope, fd.Intercept), nil
	case "bounded_linear":
		return membership.BoundedLinear(fd.Low, fd.High, fd.shapeOptions()...)
	case "r":
		return membership.R(fd.Low, fd.High)
	case "s":
		return membership.S(fd.Low, fd.High)
	case "rectangular":
		return membership.Rectangular(fd.Low, fd.High, fd.shapeOptions()...)
	case "triangular":
		return membership.Triangular(fd.Low, fd.High, fd.shapeOptions()...)
	case "trapezoid":
		return membership.Trapezoid(fd.Low, fd.PlateauLow, fd.PlateauHigh, fd.High, fd.shapeOptions()...)
	case "sigmoid":
		l := 1.0
		if fd.Ceiling != nil {
			l = *fd.Ceiling
		}
		return membership.Sigmoid(l, fd.Gain, fd.Midpoint)
	case "bounded_sigmoid":
		return membership.BoundedSigmoid(fd.Low, fd.High)
	case "simple_sigmoid":
		return membership.SimpleSigmoid(fd.Gain), nil
	case "triangular_sigmoid":
		return membership.TriangularSigmoid(fd.Low, fd.High, fd.shapeOptions()...)
	case "gauss":
		return membership.Gauss(fd.Center, fd.Spread, fd.shapeOptions()...)
	case "singleton":
		return membership.Singleton(fd.Center, fd.shapeOptions()...)
	default:
		return nil, UnknownKindError{Kind: fd.Kind}
	}
}
