// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package fuzzy provides fuzzy-set primitives: composable membership functions and the Domain/Set model built on top of them.
//
// The package is built around three core abstractions:
//
//   - MembershipFunction: a pure mapping from a crisp value to a degree of membership in [0, 1]
//   - Set: a named membership function owned by a Domain, with sampling, comparison and complement operations
//   - Domain: a bounded numeric range with a resolution, owning uniquely named Sets
//
// Membership functions are constructed with the
// [github.com/z5labs/fuzzy/membership] package, merged with the
// operators in [github.com/z5labs/fuzzy/combinator] and modified with
// the linguistic hedges in [github.com/z5labs/fuzzy/hedge].
//
// # Basic Usage
//
// Create a domain and register sets on it:
//
//	temp, err := fuzzy.NewDomain("temperature", 0, 40, fuzzy.Resolution(0.1))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cold, _ := membership.S(5, 15)
//	hot, _ := membership.R(25, 35)
//
//	temp.Define("cold", cold)
//	temp.Define("hot", hot)
//
// Evaluating the domain at a point yields the degree of membership of
// every registered set:
//
//	degrees := temp.Evaluate(30) // map[cold:0 hot:0.5]
//
// Defuzzified results are snapped back into engineering units with the
// [github.com/z5labs/fuzzy/rule] package.
package fuzzy
