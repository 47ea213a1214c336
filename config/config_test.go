package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/georgepadayatti/goades/process"
)

func TestNewConfigError(t *testing.T) {
	err := NewConfigError("field", "message")
	if err.Field != "field" {
		t.Errorf("Expected field 'field', got '%s'", err.Field)
	}
	if err.Message != "message" {
		t.Errorf("Expected message 'message', got '%s'", err.Message)
	}

	expected := "config error in 'field': message"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
	if !errors.Is(err, ErrConfigurationError) {
		t.Error("Expected ConfigError to wrap ErrConfigurationError")
	}
}

func TestConfigErrorWithoutField(t *testing.T) {
	err := NewConfigError("", "general error")
	expected := "config error: general error"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"include_semantics", "include-semantics"},
		{"include-semantics", "include-semantics"},
		{"level", "level"},
	}

	for _, tt := range tests {
		if got := normalizeKey(tt.input); got != tt.expected {
			t.Errorf("normalizeKey(%s) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestCheckConfigKeys(t *testing.T) {
	err := CheckConfigKeys("test", []string{"key1", "key-2"}, []string{"key1", "key_2"})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	err = CheckConfigKeys("test", []string{"key1"}, []string{"key1", "other", "more"})
	if err == nil {
		t.Fatal("Expected error for unexpected keys")
	}
	if !errors.Is(err, ErrUnexpectedField) {
		t.Errorf("Expected ErrUnexpectedField, got %v", err)
	}
	if !strings.Contains(err.Error(), "unexpected keys in configuration for test: other, more") {
		t.Errorf("Unexpected message: %v", err)
	}
}

func TestLoggingConfigSetDefaults(t *testing.T) {
	c := &LoggingConfig{}
	c.SetDefaults()

	if c.Level != "info" {
		t.Errorf("Expected level 'info', got '%s'", c.Level)
	}
	if c.Format != "text" {
		t.Errorf("Expected format 'text', got '%s'", c.Format)
	}
	if c.Output != "stderr" {
		t.Errorf("Expected output 'stderr', got '%s'", c.Output)
	}

	c = &LoggingConfig{Level: "debug", Format: "json", Output: "stdout"}
	c.SetDefaults()
	if c.Level != "debug" || c.Format != "json" || c.Output != "stdout" {
		t.Errorf("SetDefaults overwrote explicit values: %+v", c)
	}
}

func TestLoggingConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  LoggingConfig
		wantErr bool
	}{
		{"valid", LoggingConfig{Level: "warn", Format: "json"}, false},
		{"bad level", LoggingConfig{Level: "loud", Format: "text"}, true},
		{"bad format", LoggingConfig{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidValue) {
				t.Errorf("Expected ErrInvalidValue, got %v", err)
			}
		})
	}
}

func TestNewHandlerLogger(t *testing.T) {
	var buf bytes.Buffer
	c := &LoggingConfig{Level: "info", Format: "json"}
	logger, err := c.NewHandlerLogger(&buf)
	if err != nil {
		t.Fatalf("NewHandlerLogger() error = %v", err)
	}

	logger.Debug("hidden")
	logger.Info("validated", "signature", "S-1")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Expected one JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "validated" || line["signature"] != "S-1" {
		t.Errorf("Unexpected log line: %v", line)
	}
}

func TestNewLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goades.log")
	c := &LoggingConfig{Level: "debug", Format: "text", Output: path}
	logger, closer, err := c.NewLogger()
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	logger.Debug("validation started")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "validation started") {
		t.Errorf("Log file does not contain the message: %q", data)
	}
}

func TestValidationConfigDefaults(t *testing.T) {
	c := &ValidationConfig{}
	c.SetDefaults()

	level, err := c.ValidationLevel()
	if err != nil {
		t.Fatalf("ValidationLevel() error = %v", err)
	}
	if level != process.ArchivalData {
		t.Errorf("Expected ARCHIVAL_DATA, got %s", level)
	}
	if c.Format != "text" || c.Report != ReportSimple {
		t.Errorf("Unexpected defaults: %+v", c)
	}

	pol, err := c.LoadPolicy()
	if err != nil {
		t.Fatalf("LoadPolicy() error = %v", err)
	}
	if pol == nil || pol.Name == "" {
		t.Error("Expected the default policy")
	}
}

func TestValidationConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		config ValidationConfig
		field  string
	}{
		{"bad level", ValidationConfig{Level: "QUALIFIED", Format: "text", Report: "simple"}, "validation.level"},
		{"bad format", ValidationConfig{Level: "BASIC_SIGNATURES", Format: "pdf", Report: "simple"}, "validation.format"},
		{"bad report", ValidationConfig{Level: "BASIC_SIGNATURES", Format: "xml", Report: "full"}, "validation.report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("Expected ConfigError, got %v", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Expected field %s, got %s", tt.field, ce.Field)
			}
		})
	}
}

func TestValidationConfigLoadPolicyMissingFile(t *testing.T) {
	c := &ValidationConfig{Policy: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, err := c.LoadPolicy(); err == nil {
		t.Error("Expected error for missing policy file")
	}
}

func TestParseAppConfig(t *testing.T) {
	yamlData := `
logging:
  level: debug
  format: json
validation:
  level: long-term-data
  include-semantics: true
  locale: en-GB
  format: xml
  report: detailed
`
	config, err := ParseAppConfig([]byte(yamlData))
	if err != nil {
		t.Fatalf("ParseAppConfig() error = %v", err)
	}

	if config.Logging.Level != "debug" || config.Logging.Format != "json" {
		t.Errorf("Unexpected logging config: %+v", config.Logging)
	}
	if config.Logging.Output != "stderr" {
		t.Errorf("Expected default output 'stderr', got '%s'", config.Logging.Output)
	}
	if !config.Validation.IncludeSemantics {
		t.Error("Expected include-semantics to be true")
	}
	level, err := config.Validation.ValidationLevel()
	if err != nil || level != process.LongTermData {
		t.Errorf("ValidationLevel() = %v, %v", level, err)
	}
	if config.Validation.Report != ReportDetailed {
		t.Errorf("Expected detailed report, got '%s'", config.Validation.Report)
	}
}

func TestParseAppConfigEmpty(t *testing.T) {
	config, err := ParseAppConfig(nil)
	if err != nil {
		t.Fatalf("ParseAppConfig() error = %v", err)
	}
	if config.Logging == nil || config.Validation == nil {
		t.Fatal("Expected default sections")
	}
	if config.Validation.Level != "ARCHIVAL_DATA" {
		t.Errorf("Expected default level, got '%s'", config.Validation.Level)
	}
}

func TestParseAppConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"unknown section", "signing:\n  key: x\n", ErrUnexpectedField},
		{"unknown key", "validation:\n  trust-anchors: [a]\n", ErrUnexpectedField},
		{"not a dictionary", "- a\n- b\n", ErrInvalidConfigType},
		{"section not a dictionary", "logging: loud\n", ErrInvalidConfigType},
		{"bad value", "logging:\n  format: xml\n", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAppConfig([]byte(tt.yaml))
			if !errors.Is(err, tt.err) {
				t.Errorf("Expected %v, got %v", tt.err, err)
			}
		})
	}

	if _, err := ParseAppConfig([]byte("logging: [\n")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goades.yaml")
	if err := os.WriteFile(path, []byte("validation:\n  level: TIMESTAMPS\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	config, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig() error = %v", err)
	}
	if config.Validation.Level != "TIMESTAMPS" {
		t.Errorf("Expected TIMESTAMPS, got '%s'", config.Validation.Level)
	}

	if _, err := LoadAppConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadConfigFromMap(t *testing.T) {
	config, err := LoadConfigFromMap(map[string]any{
		"validation": map[string]any{"report": "detailed"},
	})
	if err != nil {
		t.Fatalf("LoadConfigFromMap() error = %v", err)
	}
	if config.Validation.Report != ReportDetailed {
		t.Errorf("Expected detailed report, got '%s'", config.Validation.Report)
	}
}

func TestDefaultAppConfig(t *testing.T) {
	config := DefaultAppConfig()
	if err := config.Validate(); err != nil {
		t.Errorf("Default config is invalid: %v", err)
	}
}
