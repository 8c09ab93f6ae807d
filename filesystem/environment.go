package filesystem

import (
	"os"
	"strings"

	"github.com/ktsu-dev/FileSystemProvider/constant"
	"github.com/samber/lo"
)

// nonProductionValues are the environment variable values recognized as
// non-production deployments, compared case-insensitively.
var nonProductionValues = []string{"development", "test", "testing"}

// environmentVariables lists the variables consulted, in order, when deciding
// whether the process runs outside production.
var environmentVariables = []string{
	constant.EnvDeploymentEnvironment,
	constant.EnvRuntimeEnvironment,
	constant.EnvEnvironment,
}

// NonProduction reports whether the process appears to be running outside a
// production environment: either a debugger is attached, or one of the
// recognized environment variables names a non-production deployment.
func NonProduction() bool {
	if debuggerAttached() {
		return true
	}

	return lo.SomeBy(environmentVariables, func(name string) bool {
		return lo.Contains(nonProductionValues, strings.ToLower(os.Getenv(name)))
	})
}
