package messages

// Config messages for configuration loading and validation.
const (
	// ConfigFailedReadFmt formats unreadable config file errors.
	ConfigFailedReadFmt         = "failed to read config file %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized config keys: %v"
	ConfigValidationGuidance    = "(see `swinst --help` for supported settings)"
	ConfigInvalidEnvFmt         = "invalid environment overrides: %w"
	ConfigResolveHomeFmt        = "resolve home dir: %w"
	ConfigExpandPathFmt         = "expand path %s: %w"
	ConfigBackendInvalidFmt     = "%s: backend must be one of dynamic, static (got %q)"
	ConfigLogLevelInvalidFmt    = "%s: log_level must be one of debug, info, warn, error (got %q)"
	ConfigDefaultSchemaBadFmt   = "%s: default_schema %q is not a known swinstall_stack schema"
	ConfigSourceDefaults        = "defaults"
	ConfigSourceFlags           = "command-line flags"
	ConfigDefaultDirName        = "swinst"
	ConfigDefaultFileName       = "config.toml"
	ConfigDefaultParentDirName  = ".config"
	ConfigXDGConfigHomeVariable = "XDG_CONFIG_HOME"
)
