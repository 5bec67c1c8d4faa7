// Where: internal/infra/config/global.go
// What: Project registry load/save helpers.
// Why: Manage ~/.pyskel/config.yaml consistently.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pyskel/pyskel/internal/meta"
	"gopkg.in/yaml.v3"
)

// GlobalConfig represents the ~/.pyskel/config.yaml registry.
// It tracks generated project paths and generation times.
type GlobalConfig struct {
	Version  int                     `yaml:"version"`
	Projects map[string]ProjectEntry `yaml:"projects,omitempty"`
}

// ProjectEntry stores a project's directory path and last generation time.
type ProjectEntry struct {
	Path          string `yaml:"path"`
	LastGenerated string `yaml:"last_generated"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:  1,
		Projects: map[string]ProjectEntry{},
	}
}

// GlobalConfigPath returns the path to the registry file.
// PYSKEL_CONFIG_HOME overrides the home directory lookup.
func GlobalConfigPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvPrefix + "_CONFIG_HOME")); override != "" {
		return filepath.Join(override, "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, "config.yaml"), nil
}

// LoadGlobalConfig reads and parses the registry file. A missing file yields
// the default config.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, fmt.Errorf("read global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("decode global config: %w", err)
	}
	if cfg.Projects == nil {
		cfg.Projects = map[string]ProjectEntry{}
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode global config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create global config dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write global config: %w", err)
	}
	return nil
}
