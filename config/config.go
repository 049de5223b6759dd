package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the shell and the HTTP server.
type Config struct {
	// Addr is the HTTP listen address used by "serve".
	Addr string `yaml:"addr"`

	// AllowDuplicates lets a book hold several contacts with the same name.
	AllowDuplicates bool `yaml:"allow_duplicates"`

	Redis   RedisConfig   `yaml:"redis"`
	Elastic ElasticConfig `yaml:"elastic"`
	Logging LoggingConfig `yaml:"logging"`
}

// RedisConfig configures the activity cache. An empty URL keeps the activity
// log in memory.
type RedisConfig struct {
	URL             string `yaml:"url"`
	MaxNumberCached int    `yaml:"max_number_cached"`
}

// ElasticConfig configures the search mirror. An empty URL disables it.
type ElasticConfig struct {
	URL   string `yaml:"url"`
	Index string `yaml:"index"`
}

type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

func DefaultConfig() *Config {
	return &Config{
		Addr: ":8080",
		Redis: RedisConfig{
			MaxNumberCached: 3,
		},
		Elastic: ElasticConfig{
			Index: "contacts",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the YAML file at path over the defaults and applies environment
// overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if addr := os.Getenv("ADDRESSBOOK_ADDR"); addr != "" {
		c.Addr = addr
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		c.Redis.URL = url
	}
	if url := os.Getenv("ELASTIC_URL"); url != "" {
		c.Elastic.URL = url
	}
	if index := os.Getenv("ELASTIC_INDEX"); index != "" {
		c.Elastic.Index = index
	}
	if level := os.Getenv("ADDRESSBOOK_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if allow := os.Getenv("ADDRESSBOOK_ALLOW_DUPLICATES"); allow != "" {
		v, err := strconv.ParseBool(allow)
		if err != nil {
			return fmt.Errorf("invalid ADDRESSBOOK_ALLOW_DUPLICATES %q: %w", allow, err)
		}
		c.AllowDuplicates = v
	}
	return nil
}
