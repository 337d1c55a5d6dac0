// Package config loads the YAML configuration of the changelog converter.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-changelog2html/internal/dateutil"
	"github.com/alnah/go-changelog2html/internal/fileutil"
	"github.com/alnah/go-changelog2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidField    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength       = 4096
	MaxURLLength        = 2048 // Browser limit
	MaxTitleLength      = 200
	MaxStyleLength      = 4096 // name or path
	MaxDateFormatLength = dateutil.MaxDateFormatLength
)

// Defaults matching the original fixed-file behavior.
const (
	DefaultInputPath = "changelog.md"
	DefaultStyleFile = "style.css"
	DefaultFontURL   = "https://fonts.googleapis.com/css?family=Google+Sans:400|Roboto:400,400italic,500,500italic,700,700italic|Roboto+Mono:400,500,700|Material+Icons"
)

// AppDirName is the directory searched under the user config directory.
const AppDirName = "go-changelog2html"

// Config holds all configuration for report generation.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Style   StyleConfig   `yaml:"style"`
	Assets  AssetsConfig  `yaml:"assets"`
	Page    PageConfig    `yaml:"page"`
	Release ReleaseConfig `yaml:"release"`
}

// InputConfig defines the changelog source.
type InputConfig struct {
	Path string `yaml:"path"` // default changelog.md
}

// OutputConfig defines the report destination.
type OutputConfig struct {
	Path string `yaml:"path"` // empty = stdout
}

// StyleConfig selects the stylesheet.
type StyleConfig struct {
	Name string `yaml:"name"` // style name or path to a .css file
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// PageConfig defines the page shell.
type PageConfig struct {
	Title   string `yaml:"title"`   // empty = first level-1 heading
	FontURL string `yaml:"fontURL"` // stylesheet link for web fonts
}

// ReleaseConfig defines release heading rendering.
type ReleaseConfig struct {
	DateFormat string `yaml:"dateFormat"` // empty = verbatim
}

// Validate checks field lengths and formats. Called by LoadConfig, and
// again by the CLI after flags are merged.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"input.path", c.Input.Path, MaxPathLength},
		{"output.path", c.Output.Path, MaxPathLength},
		{"style.name", c.Style.Name, MaxStyleLength},
		{"assets.basePath", c.Assets.BasePath, MaxPathLength},
		{"page.title", c.Page.Title, MaxTitleLength},
		{"page.fontURL", c.Page.FontURL, MaxURLLength},
		{"release.dateFormat", c.Release.DateFormat, MaxDateFormatLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Page.FontURL != "" && !fileutil.IsURL(c.Page.FontURL) {
		return fmt.Errorf("%w: page.fontURL must be an http(s) URL, got %q", ErrInvalidField, c.Page.FontURL)
	}

	if c.Release.DateFormat != "" {
		if _, err := dateutil.ParseDateFormat(c.Release.DateFormat); err != nil {
			return fmt.Errorf("%w: release.dateFormat: %w", ErrInvalidField, err)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{Path: DefaultInputPath},
		Page:  PageConfig{FontURL: DefaultFontURL},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched in standard locations. Fields absent from the
// file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NotFoundError carries the paths searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

// Unwrap makes errors.Is(err, ErrConfigNotFound) hold.
func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		tried = append(tried, localPath)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, AppDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			tried = append(tried, userPath)
		}
	}

	return "", &NotFoundError{Name: name, Tried: tried}
}
