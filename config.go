package odbcfield

import (
	"os"
	"strings"

	toml "github.com/BurntSushi/toml"
)

// ConfigPathEnv names the environment variable LoadConfig falls back to.
const ConfigPathEnv = "ODBCFIELD_CONFIG"

// DefaultVarcharMaxCharacterLimit is the character length used for character
// columns whose declared length is unknown or unbounded.
const DefaultVarcharMaxCharacterLimit = 65535

// Config controls how the Registry sizes and chooses descriptions.
type Config struct {
	// VarcharMaxCharacterLimit sizes character and binary columns that report a
	// length of 0 (unknown or MAX).
	VarcharMaxCharacterLimit int `toml:"varchar_max_character_limit"`
	// LimitVarcharResultsToMax also caps declared lengths above the limit.
	LimitVarcharResultsToMax bool `toml:"limit_varchar_results_to_max"`
	// PreferUnicode binds narrow character columns as SQL_C_WCHAR.
	PreferUnicode bool `toml:"prefer_unicode"`
	// LargeDecimalsAsText binds decimals above MaxDecimalPrecision as text
	// instead of failing.
	LargeDecimalsAsText bool `toml:"large_decimals_as_text"`
	// LogLevel, when set, is applied to the global logger by Apply.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		VarcharMaxCharacterLimit: DefaultVarcharMaxCharacterLimit,
	}
}

// LoadConfig reads a TOML configuration file. An empty path falls back to the
// ODBCFIELD_CONFIG environment variable; when that is empty too the defaults are
// returned. Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(string(data))
	if err != nil {
		if fe, ok := err.(*FieldError); ok && fe.Number == ErrCodeFailedToParseConfig {
			fe.MessageArgs[0] = path
		}
		return nil, err
	}
	logger.Debugf("loaded configuration from %v", path)
	return cfg, nil
}

// ParseConfig parses TOML configuration text. Unknown keys are rejected.
func ParseConfig(data string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, &FieldError{
			Number:      ErrCodeFailedToParseConfig,
			Message:     errMsgFailedToParseFile,
			MessageArgs: []interface{}{"<input>", err},
		}
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &FieldError{
			Number:      ErrCodeFailedToParseConfig,
			Message:     errMsgFailedToParseFile,
			MessageArgs: []interface{}{"<input>", "unknown keys " + strings.Join(keys, ", ")},
		}
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.VarcharMaxCharacterLimit <= 0 {
		return &FieldError{
			Number:      ErrCodeInvalidConfig,
			Message:     errMsgInvalidConfigValue,
			MessageArgs: []interface{}{"varchar_max_character_limit", c.VarcharMaxCharacterLimit},
		}
	}
	if c.LogLevel != "" {
		if err := CreateDefaultLogger().SetLogLevel(c.LogLevel); err != nil {
			return &FieldError{
				Number:      ErrCodeInvalidConfig,
				Message:     errMsgInvalidConfigValue,
				MessageArgs: []interface{}{"log_level", c.LogLevel},
			}
		}
	}
	return nil
}

// Apply pushes process-wide settings, currently the log level, to the global logger.
func (c *Config) Apply() error {
	if c.LogLevel == "" {
		return nil
	}
	return logger.SetLogLevel(c.LogLevel)
}
