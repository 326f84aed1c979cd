package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// SettingsFileEnv names an optional YAML settings file.
	SettingsFileEnv = "MINIGREP_CONFIG"
	// LogLevelEnv overrides the log level.
	LogLevelEnv = "MINIGREP_LOG_LEVEL"
	// LogEncodingEnv overrides the log encoding.
	LogEncodingEnv = "MINIGREP_LOG_ENCODING"

	defaultLogLevel    = "error"
	defaultLogEncoding = "console"
)

// Settings holds the ambient runtime settings of the tool.
// Precedence: Environment variables > YAML config > Defaults
type Settings struct {
	LogLevel    string `yaml:"log_level"`
	LogEncoding string `yaml:"log_encoding"`
}

// LoadSettings resolves Settings from the YAML file named by MINIGREP_CONFIG
// and the MINIGREP_LOG_* variables.
func LoadSettings(env Environment) (Settings, error) {
	settings := defaultSettings()

	if path := lookupTrimmed(env, SettingsFileEnv); path != "" {
		fileSettings, err := loadSettingsFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyFileSettings(&settings, fileSettings)
	}

	applyEnvSettings(&settings, env)

	if err := validateSettings(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func defaultSettings() Settings {
	return Settings{
		LogLevel:    defaultLogLevel,
		LogEncoding: defaultLogEncoding,
	}
}

func loadSettingsFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileSettings Settings
	if err := yaml.Unmarshal(data, &fileSettings); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &fileSettings, nil
}

func applyFileSettings(settings *Settings, fileSettings *Settings) {
	if level := strings.TrimSpace(fileSettings.LogLevel); level != "" {
		settings.LogLevel = level
	}
	if encoding := strings.TrimSpace(fileSettings.LogEncoding); encoding != "" {
		settings.LogEncoding = encoding
	}
}

func applyEnvSettings(settings *Settings, env Environment) {
	if level := lookupTrimmed(env, LogLevelEnv); level != "" {
		settings.LogLevel = level
	}
	if encoding := lookupTrimmed(env, LogEncodingEnv); encoding != "" {
		settings.LogEncoding = encoding
	}
}

func validateSettings(settings Settings) error {
	if _, err := zapcore.ParseLevel(settings.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidSettings, settings.LogLevel)
	}
	switch settings.LogEncoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log encoding must be json or console, got %q", ErrInvalidSettings, settings.LogEncoding)
	}
	return nil
}

func lookupTrimmed(env Environment, key string) string {
	value, _ := env.LookupEnv(key)
	return strings.TrimSpace(value)
}
