package config

import (
	"errors"
	"testing"

	"github.com/nao1215/p455w0rd/internal/model"
)

// TestNewConfig tests the built-in defaults.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	if cfg.Output != DefaultOutputFile {
		t.Errorf("Output = %q, want %q", cfg.Output, DefaultOutputFile)
	}
	if cfg.MinLength != model.DefaultMinLength {
		t.Errorf("MinLength = %d, want %d", cfg.MinLength, model.DefaultMinLength)
	}
	if cfg.MaxLength != model.DefaultMaxLength {
		t.Errorf("MaxLength = %d, want %d", cfg.MaxLength, model.DefaultMaxLength)
	}
	if cfg.ChunkSize != model.DefaultChunkSize {
		t.Errorf("ChunkSize = %d, want %d", cfg.ChunkSize, model.DefaultChunkSize)
	}
}

// TestConfigLengthWindow tests the WPA2 length override.
func TestConfigLengthWindow(t *testing.T) {
	t.Parallel()

	t.Run("default window", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		minLen, maxLen := cfg.LengthWindow()
		if minLen != model.DefaultMinLength || maxLen != model.DefaultMaxLength {
			t.Errorf("LengthWindow() = %d, %d, want defaults", minLen, maxLen)
		}
	})

	t.Run("wpa2 overrides configured bounds", func(t *testing.T) {
		t.Parallel()

		cfg := NewConfig()
		cfg.WPA2 = true
		cfg.MinLength = 1
		cfg.MaxLength = 99

		minLen, maxLen := cfg.LengthWindow()
		if minLen != model.WPA2MinLength || maxLen != model.WPA2MaxLength {
			t.Errorf("LengthWindow() = %d, %d, want %d, %d", minLen, maxLen, model.WPA2MinLength, model.WPA2MaxLength)
		}
	})
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{
			name:     "defaults are valid",
			mutate:   func(*Config) {},
			expected: nil,
		},
		{
			name:     "zero minimum length",
			mutate:   func(c *Config) { c.MinLength = 0 },
			expected: ErrInvalidMinLength,
		},
		{
			name:     "minimum above maximum",
			mutate:   func(c *Config) { c.MinLength = 30 },
			expected: ErrInvalidLengthWindow,
		},
		{
			name:     "zero chunk size",
			mutate:   func(c *Config) { c.ChunkSize = 0 },
			expected: ErrInvalidChunkSize,
		},
		{
			name:     "negative limit",
			mutate:   func(c *Config) { c.Limit = -1 },
			expected: ErrNegativeLimit,
		},
		{
			name:     "negative max words",
			mutate:   func(c *Config) { c.MaxWords = -1 },
			expected: ErrNegativeMaxWords,
		},
		{
			name: "conflicting report formats",
			mutate: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			expected: ErrConflictingReportFormats,
		},
		{
			name:     "empty output path",
			mutate:   func(c *Config) { c.Output = "" },
			expected: ErrNoOutputPath,
		},
		{
			name: "wpa2 bounds bypass a bad configured window",
			mutate: func(c *Config) {
				c.MinLength = 30
				c.WPA2 = true
			},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tc.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tc.expected) {
				t.Errorf("Validate() = %v, want %v", err, tc.expected)
			}
		})
	}
}

// TestCombinationConfig tests the translation into the core
// combination configuration.
func TestCombinationConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.MaxWords = 3
	cfg.Limit = 100
	cfg.NoSpecialChars = true

	ccfg := cfg.CombinationConfig()
	if ccfg.MaxWords != 3 {
		t.Errorf("MaxWords = %d, want 3", ccfg.MaxWords)
	}
	if ccfg.Limit != 100 {
		t.Errorf("Limit = %d, want 100", ccfg.Limit)
	}
	if ccfg.IncludeSpecialChars {
		t.Error("IncludeSpecialChars must be false when NoSpecialChars is set")
	}
	if ccfg.MinLength != model.DefaultMinLength || ccfg.MaxLength != model.DefaultMaxLength {
		t.Errorf("length window = %d-%d, want defaults", ccfg.MinLength, ccfg.MaxLength)
	}
}
