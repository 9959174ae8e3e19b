package config

type MetricsConfig struct {
	ListenAddr string `yaml:"addr" env:"METRICS_ADDR"`
}

// Addr is empty when the metrics listener is disabled.
func (s *MetricsConfig) Addr() string {
	return s.ListenAddr
}
