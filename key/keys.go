// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 6

// Provider Behavior - these keys govern the swappable filesystem provider itself.
const (
	ProviderProductionGuard = "provider.production_guard"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the command-line behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
