package config

// RuntimeOverrides holds configuration values that can be overridden at
// runtime via CLI flags.
type RuntimeOverrides struct {
	LogLevel  *string
	LogFile   *string
	PrefsFile *string
	DBPath    *string
}

// NewConfigWithOverrides creates a new config and applies any runtime
// overrides.
func NewConfigWithOverrides(overrides *RuntimeOverrides) (*ConfigSchema, error) {
	cfg, err := New()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		if overrides.LogLevel != nil {
			cfg.Log.LogLevel = *overrides.LogLevel
		}
		if overrides.LogFile != nil {
			cfg.Log.LogFile = *overrides.LogFile
		}
		if overrides.PrefsFile != nil {
			cfg.PrefsFile = *overrides.PrefsFile
		}
		if overrides.DBPath != nil {
			cfg.DBPath = *overrides.DBPath
		}
	}

	return cfg, nil
}
