package config

import (
	"os"

	"github.com/caarlos0/env/v9"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "data/config.yaml"

type config struct {
	App     AppConfig     `yaml:"app"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

type Service struct {
	config config
}

func defaults() config {
	return config{
		App: AppConfig{
			HintDistance: defaultHintDistance,
		},
		Log: LogConfig{
			Environment: defaultLogEnv,
			LogLevel:    defaultLogLevel,
			Outputs:     []string{defaultLogOutput},
		},
		Tracing: TracingConfig{
			Service: defaultServiceName,
			Agent:   defaultTracingAgent,
		},
	}
}

// New reads the YAML file at path and applies environment overrides on top.
// A missing file is not an error: defaults are used instead.
func New(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.Wrap(err, "reading config file")
	default:
		if err = yaml.Unmarshal(rawYAML, &s.config); err != nil {
			return nil, errors.Wrap(err, "parsing yaml")
		}
	}

	if err = env.Parse(&s.config); err != nil {
		return nil, errors.Wrap(err, "parsing env")
	}
	return s, nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Log() *LogConfig {
	return &s.config.Log
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}
