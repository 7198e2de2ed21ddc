package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "arbiter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Runtime.Bind)
	assert.Equal(t, 8080, cfg.Runtime.Port)
	assert.Equal(t, 4, cfg.Runtime.MaxConcurrentJudgements)
}

func TestLoadParsesManifest(t *testing.T) {
	path := writeConfig(t, `
apiVersion: arbiter/v1
runtime:
  port: 9090
  max_concurrent_judgements: 8
limits:
  memory: 512m
  exec_timeout_seconds: 10
images:
  python: registry.local/python-sandbox:v2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Runtime.Port)
	assert.Equal(t, 8, cfg.Runtime.MaxConcurrentJudgements)
	assert.Equal(t, "512m", cfg.Limits.Memory)
	assert.Equal(t, "registry.local/python-sandbox:v2", cfg.Images["python"])
}

func TestLoadRejectsUnknownAPIVersion(t *testing.T) {
	path := writeConfig(t, "apiVersion: arbiter/v9\n")

	_, err := Load(path)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "apiVersion", validationErr.Field)
	assert.Contains(t, err.Error(), "Hint")
}

func TestLoadRejectsNegativeLimits(t *testing.T) {
	path := writeConfig(t, `
limits:
  exec_timeout_seconds: -1
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "runtime: [not a mapping\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestPolicyProjection(t *testing.T) {
	cfg := Default()
	cfg.Limits = Limits{
		Memory:                "512m",
		CPUs:                  "1",
		SleepSeconds:          60,
		CompileTimeoutSeconds: 15,
		ExecTimeoutSeconds:    3,
		MaxStdoutBytes:        1024,
	}

	p := cfg.Policy()
	assert.Equal(t, "512m", p.Memory)
	assert.Equal(t, "1", p.CPUs)
	assert.Equal(t, 60, p.SleepSecs)
	assert.Equal(t, 15*time.Second, p.CompileTimeout)
	assert.Equal(t, 3*time.Second, p.ExecTimeout)
	assert.Equal(t, 1024, p.MaxStdoutBytes)

	// Unset fields keep policy defaults
	assert.Equal(t, "128", p.PidsLimit)
}
