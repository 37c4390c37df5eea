package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Anki       AnkiConfig       `yaml:"anki"`
	Matcher    MatcherConfig    `yaml:"matcher"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DictionaryConfig holds frequency-dictionary settings.
type DictionaryConfig struct {
	Dir string `yaml:"dir" env:"DICT_DIR" env-default:"./dictionaries"`
}

// ModelConfig names the fields of one Anki note model that hold the term
// and its reading.
type ModelConfig struct {
	TermField    string `yaml:"term_field"`
	ReadingField string `yaml:"reading_field"`
}

// AnkiConfig holds AnkiConnect settings. Models maps note-model name to
// its field layout; an empty map disables the vocabulary source.
type AnkiConfig struct {
	URL     string                 `yaml:"url"     env:"ANKI_URL"     env-default:"http://127.0.0.1:8765"`
	Timeout time.Duration          `yaml:"timeout" env:"ANKI_TIMEOUT" env-default:"30s"`
	Models  map[string]ModelConfig `yaml:"models"`
}

// MatcherConfig holds the vocabulary matcher's confidence values.
type MatcherConfig struct {
	Threshold float64 `yaml:"threshold" env:"MATCHER_THRESHOLD" env-default:"0.60"`
	High      float64 `yaml:"high"      env:"MATCHER_HIGH"      env-default:"0.85"`
	Medium    float64 `yaml:"medium"    env:"MATCHER_MEDIUM"    env-default:"0.70"`
	Low       float64 `yaml:"low"       env:"MATCHER_LOW"       env-default:"0.55"`
}

// PipelineConfig holds mining-run settings.
type PipelineConfig struct {
	Workers           int    `yaml:"workers"             env:"PIPELINE_WORKERS"        env-default:"4"`
	KnownIntervalDays int    `yaml:"known_interval_days" env:"PIPELINE_KNOWN_INTERVAL" env-default:"21"`
	IgnoreListPath    string `yaml:"ignore_list_path"    env:"PIPELINE_IGNORE_LIST"`
}
