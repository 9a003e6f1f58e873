// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package fuzzy

import "fmt"

// InvalidParameterError occurs when a constructor precondition is
// violated, for example a domain whose lower bound is not strictly
// less than its upper bound. It is always returned eagerly at
// construction time, never deferred to evaluation time.
type InvalidParameterError struct {
	Param  string
	Reason string
}

// Error implements the [builtin.error] interface.
func (e InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

// NameCollisionError occurs when a [Set] is defined under a name
// that is already registered on its [Domain].
type NameCollisionError struct {
	Domain string
	Name   string
}

// Error implements the [builtin.error] interface.
func (e NameCollisionError) Error() string {
	return fmt.Sprintf("domain %q already has a set named %q", e.Domain, e.Name)
}

// MembershipPanicError occurs when a user supplied [MembershipFunction]
// panics while being probed during [Domain.Define].
type MembershipPanicError struct {
	Name  string
	Cause error
}

// Error implements the [builtin.error] interface.
func (e MembershipPanicError) Error() string {
	return fmt.Sprintf("membership function for set %q panicked: %s", e.Name, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e MembershipPanicError) Unwrap() error {
	return e.Cause
}
