package config

// ConfigFileName is the default configuration file looked up in the
// working directory.
const ConfigFileName = "typeguard.yaml"

// EnvDisable disables all checking when set to "1", regardless of the
// configuration file.
const EnvDisable = "TYPEGUARD_DISABLE"

// DefaultAuditPath is where the violation database lands when auditing is
// enabled without an explicit path.
const DefaultAuditPath = "typeguard.db"

// Color output modes for the CLI.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)
