package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devbush/audio-transcribe/internal/domain"
	"github.com/devbush/audio-transcribe/internal/layout"
)

// Config represents the application configuration
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

// DefaultsConfig holds default values
type DefaultsConfig struct {
	Model  string `yaml:"model"`
	Format string `yaml:"format"`
}

// PipelineConfig holds transcription pipeline tuning
type PipelineConfig struct {
	ChunkSeconds float64 `yaml:"chunk_seconds"`
	Jobs         int     `yaml:"jobs"` // 0 means auto-detect
	NoGPU        bool    `yaml:"no_gpu"`
}

// DefaultConfig returns configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Model:  "medium",
			Format: "text",
		},
		Pipeline: PipelineConfig{
			ChunkSeconds: 120,
		},
	}
}

// AppDir returns the application directory (~/.audio-transcribe)
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".audio-transcribe"
	}
	return filepath.Join(home, ".audio-transcribe")
}

// BinDir returns the directory for bundled binaries
func BinDir() string {
	return filepath.Join(AppDir(), "bin")
}

// ConfigPath returns the config file path
func ConfigPath() string {
	return filepath.Join(AppDir(), "config.yaml")
}

// CacheRoot resolves the platform cache directory for model storage.
func CacheRoot() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrCacheDirUnavailable, err)
	}
	return filepath.Join(base, "audio-transcribe", "models"), nil
}

// EnsureCacheDirs creates the cache root and every model subdirectory, so
// the on-disk layout exists regardless of which models are present.
func EnsureCacheDirs(root string) error {
	dirs := []string{root}
	for _, size := range domain.AllModelSizes() {
		dirs = append(dirs, layout.WhisperModelDir(root, size))
	}
	dirs = append(dirs, layout.PyannoteDir(root))

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// Load reads config from file, returns default if not exists
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads config from default path
func LoadDefault() (*Config, error) {
	return Load(ConfigPath())
}

// Save writes config to file
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveDefault saves config to default path
func (c *Config) SaveDefault() error {
	return c.Save(ConfigPath())
}
