/*
Package config manages the TOML config for wordcheck.

A config file has four sections:

	[dict]
	path = "words.txt"
	initial_capacity = 1024
	max_buckets = 0
	max_entries = 0

	[check]
	suggestions = 0
	html = false
	progress = false

	[server]
	default_limit = 5
	max_batch = 512
	requests_per_second = 0.0
	burst = 1

	[log]
	level = "warn"
	format = "text"

Zero budgets in [dict] mean no limit, and a zero requests_per_second turns
request pacing off.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// ConfigFileName is the file looked up in the config directory.
const ConfigFileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Check  CheckConfig  `toml:"check"`
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path            string `toml:"path"`
	InitialCapacity int    `toml:"initial_capacity"`
	MaxBuckets      int    `toml:"max_buckets"`
	MaxEntries      int    `toml:"max_entries"`
}

// CheckConfig holds defaults for the check command.
type CheckConfig struct {
	Suggestions int  `toml:"suggestions"`
	HTML        bool `toml:"html"`
	Progress    bool `toml:"progress"`
}

// ServerConfig has IPC server options.
type ServerConfig struct {
	DefaultLimit      int     `toml:"default_limit"`
	MaxBatch          int     `toml:"max_batch"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// LogConfig holds logger options.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path:            "words.txt",
			InitialCapacity: 1024,
		},
		Check: CheckConfig{
			Suggestions: 0,
		},
		Server: ServerConfig{
			DefaultLimit: 5,
			MaxBatch:     512,
			Burst:        1,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordcheck/config.toml
// 3. Builtin defaults
//
// It returns the config and the path it came from, empty for defaults.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	pr, err := utils.NewPathResolver()
	if err != nil {
		return "", err
	}
	return pr.GetConfigPath(ConfigFileName)
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file. Keys missing from the file keep their
// defaults; if the file does not decode cleanly, every well-typed key is
// still applied.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse salvages what it can from a file that failed typed
// decoding.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "check"); ok {
		extractCheckConfig(section, &config.Check)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "log"); ok {
		extractLogConfig(section, &config.Log)
	}
	return config, nil
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		dict.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "initial_capacity"); ok {
		dict.InitialCapacity = val
	}
	if val, ok := utils.ExtractInt64(data, "max_buckets"); ok {
		dict.MaxBuckets = val
	}
	if val, ok := utils.ExtractInt64(data, "max_entries"); ok {
		dict.MaxEntries = val
	}
}

func extractCheckConfig(data map[string]any, check *CheckConfig) {
	if val, ok := utils.ExtractInt64(data, "suggestions"); ok {
		check.Suggestions = val
	}
	if val, ok := utils.ExtractBool(data, "html"); ok {
		check.HTML = val
	}
	if val, ok := utils.ExtractBool(data, "progress"); ok {
		check.Progress = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_batch"); ok {
		server.MaxBatch = val
	}
	if val, ok := utils.ExtractFloat(data, "requests_per_second"); ok {
		server.RequestsPerSecond = val
	}
	if val, ok := utils.ExtractInt64(data, "burst"); ok {
		server.Burst = val
	}
}

func extractLogConfig(data map[string]any, logCfg *LogConfig) {
	if val, ok := utils.ExtractString(data, "level"); ok {
		logCfg.Level = val
	}
	if val, ok := utils.ExtractString(data, "format"); ok {
		logCfg.Format = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}
