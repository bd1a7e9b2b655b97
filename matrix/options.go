// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Every flag impacts behavior and is covered by tests.
//   - Panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute threshold used by Equal and by the
	// singularity guard in Inverse.
	DefaultTolerance = 1e-7

	// DefaultValidateNaNInf toggles finite-value validation on Set/Apply.
	// Off by default: element writes only fail on bounds.
	DefaultValidateNaNInf = false
)

// MaxElements caps rows*cols for a single allocation (2 GiB of float64).
const MaxElements = 1 << 28

const panicToleranceInvalid = "matrix: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	tol            float64 // >= 0; DefaultTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithTolerance sets the absolute tolerance used for equality and singularity.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithValidateNaNInf makes newly created matrices reject NaN and ±Inf writes.
// The policy is carried by Clone/Copy/Move and by results derived from the
// left operand of a binary operation.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// Tolerance reports the effective absolute tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// ValidateNaNInf reports whether finite-value validation is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves user setters on top of the defaults.
// Mostly useful for tests and for callers that forward options.
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }

// gatherOptions applies user-provided Option setters on top of defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:            DefaultTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
