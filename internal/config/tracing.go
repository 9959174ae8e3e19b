package config

const (
	defaultServiceName  = "expense-tracker"
	defaultTracingAgent = "localhost:6831"
)

type TracingConfig struct {
	On      bool   `yaml:"enabled" env:"TRACING_ENABLED"`
	Service string `yaml:"service-name" env:"TRACING_SERVICE_NAME"`
	Agent   string `yaml:"agent" env:"TRACING_AGENT"`
}

func (s *TracingConfig) Enabled() bool {
	return s.On
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}

func (s *TracingConfig) AgentHostPort() string {
	return s.Agent
}
