package config

// Resolution chain (highest priority first):
//   1. CLI flags
//   2. Environment variables (COFFEEMACHINE_*)
//   3. Values derived from other settings (this file)
//   4. Static defaults

// ApplyDefaults fills settings left empty by flags and environment. The log
// level follows --verbose and --quiet unless it was set explicitly, and is
// warn otherwise so that routine cycle logs stay off the console.
func ApplyDefaults(cfg AppConfig) AppConfig {
	if cfg.LogLevel == "" {
		switch {
		case cfg.Verbose:
			cfg.LogLevel = "debug"
		case cfg.Quiet:
			cfg.LogLevel = "error"
		default:
			cfg.LogLevel = "warn"
		}
	}
	return cfg
}
