// Package config loads the goades application configuration: logging and
// validation defaults for the command line tool.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/georgepadayatti/goades/policy"
	"github.com/georgepadayatti/goades/process"
	"github.com/georgepadayatti/goades/report"
)

// Common errors
var (
	ErrConfigurationError = errors.New("configuration error")
	ErrUnexpectedField    = errors.New("unexpected field in configuration")
	ErrInvalidConfigType  = errors.New("configuration must be a dictionary")
	ErrInvalidValue       = errors.New("invalid configuration value")
)

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	if e.Err == nil {
		return ErrConfigurationError
	}
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level" json:"level,omitempty"`

	// Format is the log format (text, json).
	Format string `yaml:"format" json:"format,omitempty"`

	// Output is the log output (stdout, stderr, or file path).
	Output string `yaml:"output" json:"output,omitempty"`
}

var loggingKeys = []string{"level", "format", "output"}

// SetDefaults sets default values for logging configuration.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "text"
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

// Validate validates the logging configuration.
func (c *LoggingConfig) Validate() error {
	if _, err := c.slogLevel(); err != nil {
		return &ConfigError{Field: "logging.level", Message: err.Error(), Err: ErrInvalidValue}
	}
	switch c.Format {
	case "text", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: fmt.Sprintf("unknown log format %q", c.Format), Err: ErrInvalidValue}
	}
	return nil
}

func (c *LoggingConfig) slogLevel() (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Level))
	return level, err
}

// NewHandlerLogger builds a logger writing to w in the configured format and
// level.
func (c *LoggingConfig) NewHandlerLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.slogLevel()
	if err != nil {
		return nil, &ConfigError{Field: "logging.level", Message: err.Error(), Err: ErrInvalidValue}
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// NewLogger opens the configured output and builds a logger on it. The
// returned closer releases the output; it is a no-op for stdout and stderr.
func (c *LoggingConfig) NewLogger() (*slog.Logger, io.Closer, error) {
	var out io.WriteCloser
	switch c.Output {
	case "", "stderr":
		out = nopCloser{os.Stderr}
	case "stdout":
		out = nopCloser{os.Stdout}
	default:
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log output: %w", err)
		}
		out = f
	}
	logger, err := c.NewHandlerLogger(out)
	if err != nil {
		_ = out.Close()
		return nil, nil, err
	}
	return logger, out, nil
}

// ValidationConfig contains the defaults of a validation run.
type ValidationConfig struct {
	// Policy is the path of a validation policy file. Empty selects the
	// built-in default policy.
	Policy string `yaml:"policy" json:"policy,omitempty"`

	// Level is the validation level (BASIC_SIGNATURES, TIMESTAMPS,
	// LONG_TERM_DATA, ARCHIVAL_DATA).
	Level string `yaml:"level" json:"level,omitempty"`

	// IncludeSemantics adds indication semantics and extension hints to the
	// simple report.
	IncludeSemantics bool `yaml:"include-semantics" json:"include_semantics,omitempty"`

	// Locale selects the language of report messages.
	Locale string `yaml:"locale" json:"locale,omitempty"`

	// Format is the report format (text, json, xml).
	Format string `yaml:"format" json:"format,omitempty"`

	// Report selects the report to print (simple, detailed).
	Report string `yaml:"report" json:"report,omitempty"`
}

var validationKeys = []string{"policy", "level", "include-semantics", "locale", "format", "report"}

// Report kinds.
const (
	ReportSimple   = "simple"
	ReportDetailed = "detailed"
)

// SetDefaults sets default values for validation configuration.
func (c *ValidationConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = process.ArchivalData.String()
	}
	if c.Format == "" {
		c.Format = string(report.FormatText)
	}
	if c.Report == "" {
		c.Report = ReportSimple
	}
}

// Validate validates the validation configuration.
func (c *ValidationConfig) Validate() error {
	if _, err := process.ParseValidationLevel(c.Level); err != nil {
		return &ConfigError{Field: "validation.level", Message: err.Error(), Err: ErrInvalidValue}
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return &ConfigError{Field: "validation.format", Message: err.Error(), Err: ErrInvalidValue}
	}
	switch c.Report {
	case ReportSimple, ReportDetailed:
	default:
		return &ConfigError{Field: "validation.report", Message: fmt.Sprintf("unknown report %q", c.Report), Err: ErrInvalidValue}
	}
	return nil
}

// ValidationLevel returns the parsed validation level.
func (c *ValidationConfig) ValidationLevel() (process.ValidationLevel, error) {
	return process.ParseValidationLevel(c.Level)
}

// LoadPolicy loads the configured policy, or the default one.
func (c *ValidationConfig) LoadPolicy() (*policy.ValidationPolicy, error) {
	if c.Policy == "" {
		return policy.Default(), nil
	}
	return policy.Load(c.Policy)
}

// AppConfig contains the complete application configuration.
type AppConfig struct {
	// Logging contains logging configuration.
	Logging *LoggingConfig `yaml:"logging" json:"logging,omitempty"`

	// Validation contains validation defaults.
	Validation *ValidationConfig `yaml:"validation" json:"validation,omitempty"`
}

var appKeys = []string{"logging", "validation"}

// DefaultAppConfig returns the configuration used when no file is given.
func DefaultAppConfig() *AppConfig {
	c := &AppConfig{}
	c.SetDefaults()
	return c
}

// SetDefaults fills every missing section and value.
func (c *AppConfig) SetDefaults() {
	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	c.Logging.SetDefaults()
	if c.Validation == nil {
		c.Validation = &ValidationConfig{}
	}
	c.Validation.SetDefaults()
}

// Validate validates every section.
func (c *AppConfig) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	return c.Validation.Validate()
}

// LoadAppConfig loads the complete application configuration from a file.
func LoadAppConfig(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseAppConfig(data)
}

// ParseAppConfig parses configuration from YAML data. Unknown keys are
// rejected; missing values get their defaults.
func ParseAppConfig(data []byte) (*AppConfig, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, ErrInvalidConfigType
		}
		if err := checkSections(m); err != nil {
			return nil, err
		}
	}

	var config AppConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadConfigFromMap loads configuration from a map.
func LoadConfigFromMap(data map[string]any) (*AppConfig, error) {
	// Marshal to YAML then unmarshal to struct
	yamlData, err := yaml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config map: %w", err)
	}
	return ParseAppConfig(yamlData)
}

func checkSections(m map[string]any) error {
	if err := CheckConfigKeys("goades", appKeys, keysOf(m)); err != nil {
		return err
	}
	sections := map[string][]string{"logging": loggingKeys, "validation": validationKeys}
	for _, name := range []string{"logging", "validation"} {
		v, ok := m[name]
		if !ok || v == nil {
			continue
		}
		section, ok := v.(map[string]any)
		if !ok {
			return &ConfigError{Field: name, Message: "section must be a dictionary", Err: ErrInvalidConfigType}
		}
		if err := CheckConfigKeys(name, sections[name], keysOf(section)); err != nil {
			return err
		}
	}
	return nil
}

func keysOf(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CheckConfigKeys checks if all provided keys are valid for a given configuration type.
func CheckConfigKeys(configName string, expectedKeys, suppliedKeys []string) error {
	expectedSet := make(map[string]bool)
	for _, k := range expectedKeys {
		// Normalize to use dashes
		expectedSet[normalizeKey(k)] = true
	}

	var unexpected []string
	for _, k := range suppliedKeys {
		normalized := normalizeKey(k)
		if !expectedSet[normalized] {
			unexpected = append(unexpected, k)
		}
	}

	if len(unexpected) > 0 {
		keyWord := "key"
		if len(unexpected) > 1 {
			keyWord = "keys"
		}
		return fmt.Errorf("%w: unexpected %s in configuration for %s: %s",
			ErrUnexpectedField, keyWord, configName, strings.Join(unexpected, ", "))
	}

	return nil
}

// normalizeKey normalizes a configuration key (underscores to dashes).
func normalizeKey(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}
