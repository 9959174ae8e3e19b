package config

const defaultHintDistance = 2

type AppConfig struct {
	HintDistance int `yaml:"category-hint-distance" env:"CATEGORY_HINT_DISTANCE"`
}

// CategoryHintDistance is the largest edit distance at which a new category is
// reported as similar to a recorded one. Zero turns the hint off.
func (s *AppConfig) CategoryHintDistance() int {
	return s.HintDistance
}
