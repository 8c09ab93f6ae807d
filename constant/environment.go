package constant

// Environment variable identifiers consulted when deciding whether the
// process is running in a production environment.
const (
	EnvDeploymentEnvironment = "DEPLOYMENT_ENVIRONMENT"
	EnvRuntimeEnvironment    = "RUNTIME_ENVIRONMENT"
	EnvEnvironment           = "ENVIRONMENT"
)
