package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds all configuration options.
type Config struct {
	// Org and App name the application for PrefPath resolution.
	Org string `json:"org,omitempty"`
	App string `json:"app,omitempty"`

	// CaseInsensitive makes glob matching case-insensitive by default.
	CaseInsensitive bool `json:"case_insensitive,omitempty"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // path to global config if loaded, empty otherwise
	Project string // path to project config if loaded, empty otherwise
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".fskit.json"

var (
	errConfigFileNotFound = errors.New("config file not found")
	errConfigInvalid      = errors.New("invalid config file")
)

// LoadConfig loads configuration with the following precedence (highest wins):
// 1. Defaults (all zero)
// 2. Global user config ($XDG_CONFIG_HOME/fskit/config.json or ~/.config/fskit/config.json)
// 3. Project config (.fskit.json in workDir), or the explicit file via configPath.
//
// Config files are HuJSON (JSON with comments and trailing commas).
func LoadConfig(workDir, configPath string, env map[string]string) (Config, ConfigSources, error) {
	var (
		cfg     Config
		sources ConfigSources
	)

	if globalPath := globalConfigPath(env); globalPath != "" {
		loaded, err := loadConfigFile(globalPath, false, &cfg)
		if err != nil {
			return Config{}, ConfigSources{}, err
		}

		if loaded {
			sources.Global = globalPath
		}
	}

	projectFile := filepath.Join(workDir, ConfigFileName)
	mustExist := false

	if configPath != "" {
		projectFile = configPath
		if !filepath.IsAbs(projectFile) {
			projectFile = filepath.Join(workDir, projectFile)
		}

		mustExist = true
	}

	loaded, err := loadConfigFile(projectFile, mustExist, &cfg)
	if err != nil {
		return Config{}, ConfigSources{}, err
	}

	if loaded {
		sources.Project = projectFile
	}

	return cfg, sources, nil
}

// globalConfigPath returns the path to the global config file, or empty
// if the home directory cannot be determined.
func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "fskit", "config.json")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "fskit", "config.json")
}

// loadConfigFile merges a config file into cfg. Missing files are not
// an error unless mustExist is set. Reports whether a file was loaded.
func loadConfigFile(path string, mustExist bool, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return false, nil
		}

		return false, fmt.Errorf("%w: %s", errConfigFileNotFound, path)
	}

	standardized, err := hujson.Standardize(data)
	if err != nil {
		return false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	if err := json.Unmarshal(standardized, cfg); err != nil {
		return false, fmt.Errorf("%w %s: %w", errConfigInvalid, path, err)
	}

	return true, nil
}
