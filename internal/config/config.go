package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/p455w0rd/internal/model"
)

// Default configuration values. These are chosen to match typical
// wordlist tooling expectations; all of them can be overridden via CLI
// flags or the optional defaults file.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "p455w0rd"

	// DefaultOutputFile is the candidate file written when --output is
	// not given.
	DefaultOutputFile = "passwords.txt"

	// ConfirmThreshold is the candidate count above which generation
	// asks for interactive confirmation unless --force is set. A million
	// lines is roughly where the output stops being casually reviewable.
	ConfirmThreshold uint64 = 1_000_000
)

// Config holds all configuration options for p455w0rd. It is populated
// from CLI flags (and optionally the defaults file) and passed through
// the application via dependency injection rather than global state.
type Config struct {
	// InputFile is an optional file of seed words, one per line; a line
	// may hold a comma-separated list.
	InputFile string

	// Words are seed words passed as positional arguments.
	Words []string

	// Output is the candidate file path.
	Output string

	// WPA2 overrides the length window with the WPA2 passphrase bounds
	// (8-63 characters).
	WPA2 bool

	// MinLength and MaxLength bound emitted candidate lengths.
	MinLength int
	MaxLength int

	// Limit stops generation after this many candidates; zero is
	// unlimited.
	Limit int

	// ChunkSize is the number of candidates buffered per output chunk.
	ChunkSize int

	// MaxWords caps the combination size; zero means unlimited.
	MaxWords int

	// NoSpecialChars disables special-character padding.
	NoSpecialChars bool

	// Append appends to the output file instead of atomically replacing
	// it.
	Append bool

	// Force skips the interactive confirmation prompt.
	Force bool

	// Quiet disables the progress display.
	Quiet bool

	// Verbose enables slog.LevelDebug logging.
	Verbose bool

	// DedupCacheSize caps the bounded deduplication window; zero selects
	// the default.
	DedupCacheSize int

	// Workers sizes the variant expansion worker pool; zero selects the
	// number of CPUs.
	Workers int

	// JSONReport and MarkdownReport select the analyze output format.
	// Mutually exclusive; the default is human-readable text.
	JSONReport     bool
	MarkdownReport bool

	// ReportFile writes the analyze report to a file instead of stdout.
	ReportFile string

	// ConfigFilePath is an explicit defaults file path. When empty the
	// file is searched in the current directory, the XDG config
	// directory, and the home directory.
	ConfigFilePath string
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Output:    DefaultOutputFile,
		MinLength: model.DefaultMinLength,
		MaxLength: model.DefaultMaxLength,
		ChunkSize: model.DefaultChunkSize,
	}
}

// LengthWindow returns the effective candidate length bounds, applying
// the WPA2 override.
func (c *Config) LengthWindow() (minLen, maxLen int) {
	if c.WPA2 {
		return model.WPA2MinLength, model.WPA2MaxLength
	}
	return c.MinLength, c.MaxLength
}

// CombinationConfig builds the core combination configuration from the
// command-level options.
func (c *Config) CombinationConfig() *model.CombinationConfig {
	minLen, maxLen := c.LengthWindow()
	return &model.CombinationConfig{
		MaxWords:            c.MaxWords,
		MinLength:           minLen,
		MaxLength:           maxLen,
		IncludeSpecialChars: !c.NoSpecialChars,
		ChunkSize:           c.ChunkSize,
		Limit:               c.Limit,
		DedupCacheSize:      c.DedupCacheSize,
	}
}

// Validate checks the configuration and returns the first problem
// found. It is called once after flag parsing, before any counting or
// generation begins.
func (c *Config) Validate() error {
	minLen, maxLen := c.LengthWindow()
	if minLen <= 0 {
		return ErrInvalidMinLength
	}
	if minLen > maxLen {
		return ErrInvalidLengthWindow
	}
	if c.ChunkSize <= 0 {
		return ErrInvalidChunkSize
	}
	if c.Limit < 0 {
		return ErrNegativeLimit
	}
	if c.MaxWords < 0 {
		return ErrNegativeMaxWords
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	if c.Output == "" {
		return ErrNoOutputPath
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for p455w0rd.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
