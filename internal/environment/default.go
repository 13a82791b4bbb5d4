//go:build !production

package environment

// ProductionBuild reports whether this binary was built with the production
// tag.
const ProductionBuild = false

// Default returns the descriptor compiled into this build. Builds without
// the production tag run against the local development stack.
func Default() (Environment, error) {
	return Development(), nil
}
