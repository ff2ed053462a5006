package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const reversiFile = "reversi.yaml"

// LoadReversi loads the reversi configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/arcade/reversi.yaml ->
// ~/.arcade/configs/reversi.yaml -> ./configs/reversi.yaml -> embedded default.
// Fields missing from a file keep their default values.
func LoadReversi(customPath string) (ReversiConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, validate(cfg, customPath)
	}

	if cfg, path, ok := firstReadable(); ok {
		return cfg, validate(cfg, path)
	}

	// Use embedded default YAML
	cfg := DefaultReversiConfig()
	if err := yaml.Unmarshal(defaultReversiYAML, &cfg); err != nil {
		return DefaultReversiConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Source returns the file LoadReversi would read, or "embedded" when no
// file on the search path can be read and parsed.
func Source(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if _, path, ok := firstReadable(); ok {
		return path
	}
	return "embedded"
}

// firstReadable returns the first search-path file that reads and parses.
// Unreadable or malformed files are skipped.
func firstReadable() (ReversiConfig, string, bool) {
	for _, path := range searchPaths() {
		if cfg, err := readFile(path); err == nil {
			return cfg, path, true
		}
	}
	return ReversiConfig{}, "", false
}

// searchPaths lists candidate config files in priority order.
func searchPaths() []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(filepath.Join("arcade", reversiFile)); err == nil {
		paths = append(paths, p)
	}
	if p := userConfigPath(reversiFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", reversiFile))
}

func readFile(path string) (ReversiConfig, error) {
	cfg := DefaultReversiConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg ReversiConfig, path string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Marshal renders a config as YAML.
func Marshal(cfg ReversiConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
