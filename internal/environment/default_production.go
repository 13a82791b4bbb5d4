//go:build production

package environment

import "os"

const ProductionBuild = true

// Default returns the descriptor compiled into this build. Production values
// are never baked in; they come from COFFEESHOP_ENV_FILE and the process
// environment, and startup fails if any is missing.
func Default() (Environment, error) {
	return loadProduction(os.LookupEnv)
}
