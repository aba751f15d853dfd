package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default defaults-file name.
const DefaultConfigFile = ".p455w0rd.yaml"

// ErrConfigNotFound is returned when the defaults file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File mirrors the optional YAML defaults file. Pointer fields
// distinguish "not set" from zero values so that file entries only
// override the built-in defaults they actually name. CLI flags always
// win over file values.
type File struct {
	Output         *string `yaml:"output"`
	MinLength      *int    `yaml:"min_length"`
	MaxLength      *int    `yaml:"max_length"`
	ChunkSize      *int    `yaml:"chunk_size"`
	MaxWords       *int    `yaml:"max_words"`
	Limit          *int    `yaml:"limit"`
	SpecialChars   *bool   `yaml:"special_chars"`
	DedupCacheSize *int    `yaml:"dedup_cache_size"`
	Workers        *int    `yaml:"workers"`
	Quiet          *bool   `yaml:"quiet"`
}

// LoadConfigFile loads defaults from a YAML file. If the file does not
// exist it returns ErrConfigNotFound; callers decide whether that is an
// error based on whether the path was explicitly specified.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Apply copies every set field of the file onto cfg. Call it before
// overriding with explicitly changed CLI flags.
func (f *File) Apply(cfg *Config) {
	if f.Output != nil {
		cfg.Output = *f.Output
	}
	if f.MinLength != nil {
		cfg.MinLength = *f.MinLength
	}
	if f.MaxLength != nil {
		cfg.MaxLength = *f.MaxLength
	}
	if f.ChunkSize != nil {
		cfg.ChunkSize = *f.ChunkSize
	}
	if f.MaxWords != nil {
		cfg.MaxWords = *f.MaxWords
	}
	if f.Limit != nil {
		cfg.Limit = *f.Limit
	}
	if f.SpecialChars != nil {
		cfg.NoSpecialChars = !*f.SpecialChars
	}
	if f.DedupCacheSize != nil {
		cfg.DedupCacheSize = *f.DedupCacheSize
	}
	if f.Workers != nil {
		cfg.Workers = *f.Workers
	}
	if f.Quiet != nil {
		cfg.Quiet = *f.Quiet
	}
}

// FindConfigFile searches for the defaults file in the following order:
//  1. The explicit path, when given
//  2. The current directory
//  3. The XDG config directory
//  4. The user's home directory
//
// Returns the path if found, or empty string if not.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}

	if home, err := os.UserHomeDir(); err == nil {
		candidate := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return ""
}
