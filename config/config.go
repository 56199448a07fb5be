package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Compression  CompressionConfig `yaml:"compression"`
	RootDir      string            `yaml:"root_dir"`      // Directory tree to checksum
	ManifestPath string            `yaml:"manifest_path"` // Manifest location, defaults into root_dir
	Algorithm    string            `yaml:"algorithm"`     // Checksum algorithm for entries
	ExcludeDirs  []string          `yaml:"exclude_dirs"`  // Directory names skipped at any depth
	Workers      uint8             `yaml:"workers"`       // Concurrent checksum workers, 0 = CPU count
}

// Holds compression-specific configuration
type CompressionConfig struct {
	Enable           bool  `yaml:"enable"`            // Compress written manifests
	DecompressInputs bool  `yaml:"decompress_inputs"` // Checksum compressed inputs by their contents
	Level            uint8 `yaml:"level"`             // zstd level (1-4), 0 = default
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		RootDir:     ".",
		Algorithm:   "crc32",
		ExcludeDirs: []string{".git"},
		Compression: CompressionConfig{
			Enable: true,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	// Read the config file
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Initialize a new Config struct
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.RootDir == "" {
		return fmt.Errorf("root_dir is required")
	}

	if config.Algorithm == "" {
		return fmt.Errorf("algorithm is required")
	}

	if err := validateCompressionConfig(&config.Compression); err != nil {
		return fmt.Errorf("invalid compression configuration: %w", err)
	}

	return nil
}

func validateCompressionConfig(config *CompressionConfig) error {
	if config.Level > 4 {
		return fmt.Errorf("level must be between 0 and 4")
	}

	return nil
}
