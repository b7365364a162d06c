// Package config handles loading todolist.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/todolist/internal/paths"
)

// ProjectFileName is the name of the per-directory config file.
const ProjectFileName = "todolist.toml"

// Config represents a todolist configuration file.
type Config struct {
	Storage Storage `toml:"storage"`
	List    List    `toml:"list"`
	Log     Log     `toml:"log"`
}

// Storage contains data directory configuration.
type Storage struct {
	// Dir is where the todo data lives. A leading "~/" is expanded.
	Dir string `toml:"dir"`
}

// List contains defaults for `todo list`.
type List struct {
	// SortBy is the default sort key (createdAt, dueDate, priority, title).
	SortBy string `toml:"sort-by"`

	// SortOrder is the default sort order (asc, desc).
	SortOrder string `toml:"sort-order"`

	// Status is the default status filter (all, active, completed).
	Status string `toml:"status"`

	// Locale is the BCP 47 tag used to collate titles, e.g. "ja" or "en".
	Locale string `toml:"locale"`
}

// Log contains logging configuration.
type Log struct {
	// Level is the minimum level written to stderr (debug, info, warn, error).
	Level string `toml:"level"`
}

// Load loads configuration from dir and the global config file. Values in
// dir's todolist.toml override global ones. Returns an empty config if no
// config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.DefaultConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, _, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, ProjectFileName))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, projectMeta)
	if merged.Storage.Dir != "" {
		expanded, err := paths.ExpandHome(merged.Storage.Dir)
		if err != nil {
			return nil, err
		}
		merged.Storage.Dir = expanded
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
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Storage.Dir = mergeString(projectMeta.IsDefined("storage", "dir"), projectCfg.Storage.Dir, globalCfg.Storage.Dir)
	merged.List.SortBy = mergeString(projectMeta.IsDefined("list", "sort-by"), projectCfg.List.SortBy, globalCfg.List.SortBy)
	merged.List.SortOrder = mergeString(projectMeta.IsDefined("list", "sort-order"), projectCfg.List.SortOrder, globalCfg.List.SortOrder)
	merged.List.Status = mergeString(projectMeta.IsDefined("list", "status"), projectCfg.List.Status, globalCfg.List.Status)
	merged.List.Locale = mergeString(projectMeta.IsDefined("list", "locale"), projectCfg.List.Locale, globalCfg.List.Locale)
	merged.Log.Level = mergeString(projectMeta.IsDefined("log", "level"), projectCfg.Log.Level, globalCfg.Log.Level)

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
