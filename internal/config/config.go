// Package config loads settings for the textmetrics command from defaults,
// an optional YAML file, a .env file and TEXTMETRICS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/seokit/textmetrics"
	"github.com/seokit/textmetrics/internal/logging"
)

// envPrefix prefixes every environment variable the loader reads.
const envPrefix = "TEXTMETRICS"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Sentence splitters.
const (
	SplitterTerminal = "terminal"
	SplitterPunkt    = "punkt"
)

// Config holds the settings of the textmetrics command.
type Config struct {
	Locale         string `yaml:"locale"`
	Format         string `yaml:"format"`
	LogLevel       string `yaml:"log_level"`
	LogDevelopment bool   `yaml:"log_development"`
	LogFile        string `yaml:"log_file"`
	DBPath         string `yaml:"db_path"`
	WordsPerMinute int    `yaml:"words_per_minute"`
	Splitter       string `yaml:"splitter"`
	// Languages whose library stop words are added to the LSI list.
	StopWordLocales []string `yaml:"stop_word_locales"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Locale:         string(textmetrics.English),
		Format:         FormatText,
		LogLevel:       "warn",
		DBPath:         defaultDBPath(),
		WordsPerMinute: textmetrics.DefaultWordsPerMinute,
		Splitter:       SplitterTerminal,
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "textmetrics", "drafts.db")
}

// Load builds a Config. A non-empty configPath must name a readable YAML
// file; TEXTMETRICS_* variables from the environment or ./.env override it.
func Load(configPath string) (*Config, error) {
	return load(configPath, ".env")
}

func load(configPath, envFile string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// godotenv never overrides variables already set in the process.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	var env envOverrides
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}
	env.apply(cfg)

	return cfg, nil
}

// envOverrides holds the TEXTMETRICS_* variables that are set. Nil means unset.
// Keys come from the split field names; an envconfig tag would also match the
// unprefixed variable.
type envOverrides struct {
	Locale          *string  `split_words:"true"`
	Format          *string  `split_words:"true"`
	LogLevel        *string  `split_words:"true"`
	LogDevelopment  *bool    `split_words:"true"`
	LogFile         *string  `split_words:"true"`
	DBPath          *string  `split_words:"true"`
	WordsPerMinute  *int     `split_words:"true"`
	Splitter        *string  `split_words:"true"`
	StopWordLocales []string `split_words:"true"`
}

func (e envOverrides) apply(c *Config) {
	set := func(dst *string, v *string) {
		if v != nil && *v != "" {
			*dst = *v
		}
	}
	set(&c.Locale, e.Locale)
	set(&c.Format, e.Format)
	set(&c.LogLevel, e.LogLevel)
	set(&c.LogFile, e.LogFile)
	set(&c.DBPath, e.DBPath)
	set(&c.Splitter, e.Splitter)

	if e.LogDevelopment != nil {
		c.LogDevelopment = *e.LogDevelopment
	}
	if e.WordsPerMinute != nil {
		c.WordsPerMinute = *e.WordsPerMinute
	}
	if len(e.StopWordLocales) > 0 {
		c.StopWordLocales = nil
		for _, l := range e.StopWordLocales {
			if l = strings.TrimSpace(l); l != "" {
				c.StopWordLocales = append(c.StopWordLocales, l)
			}
		}
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q: must be one of %s, %s, %s", c.Format, FormatText, FormatJSON, FormatYAML)
	}
	if _, err := textmetrics.ParseLanguage(c.Locale); err != nil {
		return fmt.Errorf("invalid locale: %w", err)
	}
	for _, l := range c.StopWordLocales {
		if _, err := textmetrics.ParseLanguage(l); err != nil {
			return fmt.Errorf("invalid stop word locale: %w", err)
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.WordsPerMinute <= 0 {
		return fmt.Errorf("words_per_minute must be positive, got %d", c.WordsPerMinute)
	}
	switch c.Splitter {
	case SplitterTerminal, SplitterPunkt:
	default:
		return fmt.Errorf("invalid splitter %q: must be %s or %s", c.Splitter, SplitterTerminal, SplitterPunkt)
	}
	if strings.TrimSpace(c.DBPath) == "" {
		return errors.New("db_path must not be empty")
	}
	return nil
}

// Language returns the validated locale as a textmetrics.Language.
func (c *Config) Language() textmetrics.Language {
	lang, err := textmetrics.ParseLanguage(c.Locale)
	if err != nil {
		return textmetrics.English
	}
	return lang
}

// StopWordLanguages returns the parsed StopWordLocales, skipping invalid entries.
func (c *Config) StopWordLanguages() []textmetrics.Language {
	var langs []textmetrics.Language
	for _, l := range c.StopWordLocales {
		if lang, err := textmetrics.ParseLanguage(l); err == nil {
			langs = append(langs, lang)
		}
	}
	return langs
}

// LoggingConfig maps the logging settings onto logging.Config. LogLevel
// applies to both the default and the development profile.
func (c *Config) LoggingConfig() logging.Config {
	lc := logging.DefaultConfig()
	if c.LogDevelopment {
		lc = logging.DevelopmentConfig()
	}
	lc.Level = c.LogLevel
	if c.LogFile != "" {
		lc.OutputPaths = []string{c.LogFile}
	}
	return lc
}
