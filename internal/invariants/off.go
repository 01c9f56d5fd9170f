//go:build !invariants

package invariants

// Enabled is true when the build includes the "invariants" tag.
const Enabled = false
