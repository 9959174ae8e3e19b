package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_OnMissingFile_ShouldUseDefaults(t *testing.T) {
	conf, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2, conf.App().CategoryHintDistance())
	assert.Equal(t, "prod", conf.Log().Env())
	assert.Equal(t, "warn", conf.Log().Level())
	assert.Equal(t, []string{"stderr"}, conf.Log().OutputPaths())
	assert.Equal(t, "", conf.Metrics().Addr())
	assert.False(t, conf.Tracing().Enabled())
	assert.Equal(t, "expense-tracker", conf.Tracing().ServiceName())
	assert.Equal(t, "localhost:6831", conf.Tracing().AgentHostPort())
}

func Test_OnYAMLFile_ShouldOverrideDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  category-hint-distance: 0
log:
  env: dev
  level: debug
  outputs: [stdout, /tmp/expenses.log]
metrics:
  addr: ":9100"
tracing:
  enabled: true
  agent: jaeger:6831
`)

	conf, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, 0, conf.App().CategoryHintDistance())
	assert.Equal(t, "dev", conf.Log().Env())
	assert.Equal(t, "debug", conf.Log().Level())
	assert.Equal(t, []string{"stdout", "/tmp/expenses.log"}, conf.Log().OutputPaths())
	assert.Equal(t, ":9100", conf.Metrics().Addr())
	assert.True(t, conf.Tracing().Enabled())
	assert.Equal(t, "expense-tracker", conf.Tracing().ServiceName())
	assert.Equal(t, "jaeger:6831", conf.Tracing().AgentHostPort())
}

func Test_OnEnvironment_ShouldOverrideFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
metrics:
  addr: ":9100"
`)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("METRICS_ADDR", "127.0.0.1:9200")
	t.Setenv("CATEGORY_HINT_DISTANCE", "3")
	t.Setenv("TRACING_ENABLED", "true")

	conf, err := New(path)
	require.NoError(t, err)

	assert.Equal(t, "error", conf.Log().Level())
	assert.Equal(t, "127.0.0.1:9200", conf.Metrics().Addr())
	assert.Equal(t, 3, conf.App().CategoryHintDistance())
	assert.True(t, conf.Tracing().Enabled())
}

func Test_OnMalformedYAML_ShouldFail(t *testing.T) {
	path := writeConfig(t, "log: [unterminated")

	_, err := New(path)
	assert.Error(t, err)
}

func Test_OnMalformedEnv_ShouldFail(t *testing.T) {
	t.Setenv("CATEGORY_HINT_DISTANCE", "many")

	_, err := New(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
