// Package config loads the arbiter.yaml runtime manifest. Sandbox roots stay
// environment-driven (CONTAINER_SANDBOX_ROOT / HOST_SANDBOX_ROOT); the
// manifest covers everything that is policy rather than deployment.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	APIVersion string  `yaml:"apiVersion"`
	Runtime    Runtime `yaml:"runtime"`
	Limits     Limits  `yaml:"limits"`
	// Images overrides the per-language sandbox image tags.
	Images map[string]string `yaml:"images,omitempty"`
}

type Runtime struct {
	Bind                    string `yaml:"bind,omitempty"`
	Port                    int    `yaml:"port,omitempty"`
	MaxConcurrentJudgements int    `yaml:"max_concurrent_judgements,omitempty"`
	DBPath                  string `yaml:"db_path,omitempty"`
	TraceDir                string `yaml:"trace_dir,omitempty"`
}

type Limits struct {
	Memory                string `yaml:"memory,omitempty"`
	CPUs                  string `yaml:"cpus,omitempty"`
	Pids                  string `yaml:"pids,omitempty"`
	Nofile                string `yaml:"nofile,omitempty"`
	SleepSeconds          int    `yaml:"sleep_seconds,omitempty"`
	CompileTimeoutSeconds int    `yaml:"compile_timeout_seconds,omitempty"`
	ExecTimeoutSeconds    int    `yaml:"exec_timeout_seconds,omitempty"`
	MaxStdoutBytes        int    `yaml:"max_stdout_bytes,omitempty"`
}

// ValidationError carries enough context to point at the offending field.
type ValidationError struct {
	File       string
	Field      string
	Reason     string
	Suggestion string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(e.File)
		sb.WriteString(": ")
	}
	if e.Field != "" {
		sb.WriteString(e.Field)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Reason)
	if e.Suggestion != "" {
		sb.WriteString("\n  Hint: ")
		sb.WriteString(e.Suggestion)
	}
	return sb.String()
}

// Default returns the configuration used when no manifest is present.
func Default() *Config {
	return &Config{
		APIVersion: "arbiter/v1",
		Runtime: Runtime{
			Bind:                    "127.0.0.1",
			Port:                    8080,
			MaxConcurrentJudgements: 4,
			DBPath:                  ".arbiter/state.db",
			TraceDir:                ".arbiter/traces",
		},
	}
}

// Load reads and validates a manifest file. A missing file yields the
// defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &ValidationError{File: path, Reason: fmt.Sprintf("invalid YAML: %v", err)}
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate(path string) error {
	if c.APIVersion != "" && c.APIVersion != "arbiter/v1" {
		return &ValidationError{
			File:       path,
			Field:      "apiVersion",
			Reason:     fmt.Sprintf("unsupported version %q", c.APIVersion),
			Suggestion: "use apiVersion: arbiter/v1",
		}
	}
	if c.Runtime.MaxConcurrentJudgements < 0 {
		return &ValidationError{
			File:   path,
			Field:  "runtime.max_concurrent_judgements",
			Reason: "must not be negative",
		}
	}
	if c.Runtime.Port < 0 || c.Runtime.Port > 65535 {
		return &ValidationError{
			File:   path,
			Field:  "runtime.port",
			Reason: "must be a valid TCP port",
		}
	}
	for _, field := range []struct {
		name  string
		value int
	}{
		{"limits.sleep_seconds", c.Limits.SleepSeconds},
		{"limits.compile_timeout_seconds", c.Limits.CompileTimeoutSeconds},
		{"limits.exec_timeout_seconds", c.Limits.ExecTimeoutSeconds},
		{"limits.max_stdout_bytes", c.Limits.MaxStdoutBytes},
	} {
		if field.value < 0 {
			return &ValidationError{File: path, Field: field.name, Reason: "must not be negative"}
		}
	}
	return nil
}

// CompileTimeout and ExecTimeout return zero when unset; Policy() then keeps
// the sandbox policy's default for that timeout.
func (l Limits) CompileTimeout() time.Duration {
	if l.CompileTimeoutSeconds > 0 {
		return time.Duration(l.CompileTimeoutSeconds) * time.Second
	}
	return 0
}

func (l Limits) ExecTimeout() time.Duration {
	if l.ExecTimeoutSeconds > 0 {
		return time.Duration(l.ExecTimeoutSeconds) * time.Second
	}
	return 0
}
