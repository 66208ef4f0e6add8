// Package config provides functionality for managing persistent settings in JSON configuration files.
// It supports organizing settings into sections, similar to INI files, but using JSON as the storage
// format. Each section is a top-level key in the JSON object containing key-value pairs.
//
// Values can be overridden from the environment: the key "parser.indent_unit" is read from
// TREESCAFFOLD_PARSER_INDENT_UNIT before either file is consulted.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/holonoms/treescaffold/internal/fsutil"
)

const (
	// ProjectFile is the name of the per-project settings file.
	ProjectFile = ".treescaffold"
	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "TREESCAFFOLD_"

	appName = "treescaffold"
)

// Config manages application configuration, automatically storing values in either
// global or project-specific locations based on the key.
type Config struct {
	globalPath  string
	projectPath string
	global      map[string]map[string]string
	project     map[string]map[string]string
}

// Specify shared keys. These are stored in the global configuration file and are accessible
// to all projects.
var globalKeys = map[string]bool{
	"log.level": true,
}

// New creates a new Config instance. If projectPath is empty, only global config
// is used. Global config is stored in ~/.config/treescaffold/config.json, while
// project config is stored in .treescaffold in the project directory.
func New(projectPath string) (*Config, error) {
	globalPath, err := getGlobalConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to determine global config path: %w", err)
	}

	config := &Config{
		globalPath: filepath.Join(globalPath, "config.json"),
		global:     make(map[string]map[string]string),
		project:    make(map[string]map[string]string),
	}
	if projectPath != "" {
		config.projectPath = filepath.Join(projectPath, ProjectFile)
	}

	if err := config.load(config.globalPath, config.global); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load global config: %w", err)
	}

	if config.projectPath != "" {
		if err := config.load(config.projectPath, config.project); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load project config: %w", err)
		}
	}

	return config, nil
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return EnvPrefix + strings.ToUpper(r.Replace(key))
}

// Has checks if a configuration key exists, either in the environment or in
// the file the key belongs to.
func (c *Config) Has(key string) bool {
	if _, ok := os.LookupEnv(EnvName(key)); ok {
		return true
	}
	_, ok := c.stored(key)
	return ok
}

// Get retrieves a configuration value. Returns empty string if not found.
func (c *Config) Get(key string) string {
	if v, ok := os.LookupEnv(EnvName(key)); ok {
		return v
	}
	v, _ := c.stored(key)
	return v
}

// GetBool returns the boolean value of key, or def when the key is unset.
func (c *Config) GetBool(key string, def bool) (bool, error) {
	if !c.Has(key) {
		return def, nil
	}
	v, err := strconv.ParseBool(c.Get(key))
	if err != nil {
		return def, fmt.Errorf("config %s: %w", key, err)
	}
	return v, nil
}

// GetInt returns the integer value of key, or def when the key is unset.
func (c *Config) GetInt(key string, def int) (int, error) {
	if !c.Has(key) {
		return def, nil
	}
	v, err := strconv.Atoi(c.Get(key))
	if err != nil {
		return def, fmt.Errorf("config %s: %w", key, err)
	}
	return v, nil
}

// Set stores a configuration value and persists it to the appropriate location
func (c *Config) Set(key, value string) error {
	data, path, err := c.target(key)
	if err != nil {
		return err
	}

	section, subKey := splitKey(key)
	if _, exists := data[section]; !exists {
		data[section] = make(map[string]string)
	}
	data[section][subKey] = value
	return c.save(path, data)
}

// Delete removes a configuration value
func (c *Config) Delete(key string) error {
	data, path, err := c.target(key)
	if err != nil {
		return err
	}

	section, subKey := splitKey(key)
	if sectionData, exists := data[section]; exists {
		delete(sectionData, subKey)
		if len(sectionData) == 0 {
			delete(data, section)
		}
	}
	return c.save(path, data)
}

// GetAllKeys returns all stored configuration keys, sorted.
func (c *Config) GetAllKeys() []string {
	var keys []string
	for _, data := range []map[string]map[string]string{c.global, c.project} {
		for section, sectionData := range data {
			for subKey := range sectionData {
				keys = append(keys, section+"."+subKey)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

// IsGlobalKey checks if a key is stored in global config
func (c *Config) IsGlobalKey(key string) bool {
	return globalKeys[key]
}

// MARK: Internal helper functions

func splitKey(key string) (section, subKey string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return "", key
	}
	return parts[0], parts[1]
}

func (c *Config) stored(key string) (string, bool) {
	data := c.project
	if globalKeys[key] {
		data = c.global
	}
	section, subKey := splitKey(key)
	v, ok := data[section][subKey]
	return v, ok
}

func (c *Config) target(key string) (map[string]map[string]string, string, error) {
	if globalKeys[key] {
		return c.global, c.globalPath, nil
	}
	if c.projectPath == "" {
		return nil, "", fmt.Errorf("key %s is a project setting but no project directory is set", key)
	}
	return c.project, c.projectPath, nil
}

func (c *Config) load(path string, data map[string]map[string]string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(content, &data)
}

func (c *Config) save(path string, data map[string]map[string]string) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), fsutil.DefaultDirMode); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, append(content, '\n'), fsutil.DefaultFileMode); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func getGlobalConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "darwin", "linux", "freebsd", "openbsd", "netbsd":
		// Check XDG_CONFIG_HOME first
		if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
			configDir = xdgHome
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}

	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			return "", errors.New("APPDATA environment variable not set")
		}

	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return filepath.Join(configDir, appName), nil
}
