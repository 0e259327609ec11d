// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for TeX rendering.
// This file defines:
//   - TexOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: option state is unexported; public APIs consume ...TexOption.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTexEnv is the environment identifier used by Tex when no option
	// overrides it; bmatrix typesets the conventional square brackets.
	DefaultTexEnv = "bmatrix"

	// TexEnvDeterminant typesets vertical bars around the entries, the
	// conventional notation for a determinant. Used by TexDeterminant.
	TexEnvDeterminant = "vmatrix"
)

const panicTexEnvEmpty = "matrix: WithTexEnv: environment identifier must be non-empty"

// ---------- Public option type (functional) ----------

// TexOption mutates internal rendering options. Safe to apply repeatedly.
// Constructors MUST panic only on nonsensical values (programmer error).
type TexOption func(*texOptions)

// texOptions is the internal rendering state assembled from TexOption values.
type texOptions struct {
	env string // environment identifier, e.g. bmatrix / vmatrix / pmatrix
}

// WithTexEnv selects the environment identifier wrapped around the rendered
// entries. Panics if env is empty.
func WithTexEnv(env string) TexOption {
	if env == "" {
		panic(panicTexEnvEmpty)
	}

	return func(o *texOptions) { o.env = env }
}

// gatherTexOptions applies opts over the documented defaults.
func gatherTexOptions(opts ...TexOption) texOptions {
	o := texOptions{env: DefaultTexEnv}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
