package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Dictionary.Dir == "" {
		return fmt.Errorf("dictionary.dir must be set")
	}

	if err := c.Matcher.validate(); err != nil {
		return fmt.Errorf("matcher: %w", err)
	}

	if c.Pipeline.Workers <= 0 {
		return fmt.Errorf("pipeline.workers must be > 0 (got %d)", c.Pipeline.Workers)
	}
	if c.Pipeline.KnownIntervalDays <= 0 {
		return fmt.Errorf("pipeline.known_interval_days must be > 0 (got %d)", c.Pipeline.KnownIntervalDays)
	}

	return nil
}

func (m *MatcherConfig) validate() error {
	for name, v := range map[string]float64{
		"threshold": m.Threshold,
		"high":      m.High,
		"medium":    m.Medium,
		"low":       m.Low,
	} {
		if v <= 0 || v > 1 {
			return fmt.Errorf("%s must be in (0,1] (got %v)", name, v)
		}
	}
	if m.High < m.Medium || m.Medium < m.Low {
		return fmt.Errorf("confidence values must be ordered high >= medium >= low (got %v, %v, %v)",
			m.High, m.Medium, m.Low)
	}
	return nil
}
