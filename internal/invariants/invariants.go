//go:build invariants

// Package invariants gates expensive self-checks behind the "invariants"
// build tag. Builds without the tag compile the checks away entirely.
package invariants

// Enabled is true when the build includes the "invariants" tag.
const Enabled = true
