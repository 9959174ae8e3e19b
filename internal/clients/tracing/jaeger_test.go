package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	enabled bool
}

func (c testConfig) Enabled() bool         { return c.enabled }
func (c testConfig) ServiceName() string   { return "expense-tracker-test" }
func (c testConfig) AgentHostPort() string { return "127.0.0.1:6831" }

func Test_OnDisabledTracing_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(testConfig{enabled: false})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())

	_, isNoop := opentracing.GlobalTracer().(opentracing.NoopTracer)
	assert.True(t, isNoop)
}

func Test_OnEnabledTracing_ShouldRegisterGlobalTracer(t *testing.T) {
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	closer, err := Init(testConfig{enabled: true})
	require.NoError(t, err)
	defer closer.Close()

	assert.True(t, opentracing.IsGlobalTracerRegistered())
	_, isNoop := opentracing.GlobalTracer().(opentracing.NoopTracer)
	assert.False(t, isNoop)
}
