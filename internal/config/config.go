// Package config handles loading journey.toml configuration files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/journey/internal/paths"
)

// DataEnvVar overrides the configured data source.
const DataEnvVar = "JOURNEY_DATA"

// DefaultPort is used when no port is configured.
const DefaultPort = 8089

// Config represents the journey.toml configuration file.
type Config struct {
	Data   Data   `toml:"data"`
	Server Server `toml:"server"`
	TUI    TUI    `toml:"tui"`
}

// Data contains data-source configuration.
type Data struct {
	// Source is a file path or an http(s) URL of the task document.
	Source string `toml:"source"`
}

// Server contains web server configuration.
type Server struct {
	Port int `toml:"port"`
}

// TUI contains terminal board configuration.
type TUI struct {
	// OpenLinks makes Start open content URLs in the system browser.
	OpenLinks bool `toml:"open-links"`
}

// Default returns the configuration used when no files exist.
func Default() *Config {
	return &Config{
		Server: Server{Port: DefaultPort},
		TUI:    TUI{OpenLinks: true},
	}
}

// Load loads configuration from dir and the global config file, then applies
// the environment. Values in dir win over global ones when they are defined.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(paths.ProjectConfigPath(dir))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if source := strings.TrimSpace(os.Getenv(DataEnvVar)); source != "" {
		merged.Data.Source = source
	}
	if merged.Server.Port <= 0 || merged.Server.Port > 65535 {
		return nil, fmt.Errorf("server port out of range: %d", merged.Server.Port)
	}
	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown key %s", path, undecoded[0])
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Default()
	if projectMeta.IsDefined("data", "source") {
		merged.Data.Source = strings.TrimSpace(projectCfg.Data.Source)
	} else if globalMeta.IsDefined("data", "source") {
		merged.Data.Source = strings.TrimSpace(globalCfg.Data.Source)
	}
	if projectMeta.IsDefined("server", "port") {
		merged.Server.Port = projectCfg.Server.Port
	} else if globalMeta.IsDefined("server", "port") {
		merged.Server.Port = globalCfg.Server.Port
	}
	if projectMeta.IsDefined("tui", "open-links") {
		merged.TUI.OpenLinks = projectCfg.TUI.OpenLinks
	} else if globalMeta.IsDefined("tui", "open-links") {
		merged.TUI.OpenLinks = globalCfg.TUI.OpenLinks
	}
	return merged
}
