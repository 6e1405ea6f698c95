// Package dispatch provides small wrappers for running closures in the
// background: fire-and-forget, delayed, awaited with a context, and fanned
// out through an errgroup. Panics inside dispatched closures are recovered
// and surfaced as errors.
package dispatch
