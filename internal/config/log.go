package config

const (
	defaultLogEnv    = "prod"
	defaultLogLevel  = "warn"
	defaultLogOutput = "stderr"
)

type LogConfig struct {
	Environment string   `yaml:"env" env:"LOG_ENV"`
	LogLevel    string   `yaml:"level" env:"LOG_LEVEL"`
	Outputs     []string `yaml:"outputs" env:"LOG_OUTPUTS" envSeparator:","`
}

func (s *LogConfig) Env() string {
	return s.Environment
}

func (s *LogConfig) Level() string {
	return s.LogLevel
}

func (s *LogConfig) OutputPaths() []string {
	return s.Outputs
}
