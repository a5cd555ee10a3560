package config

import (
	"fmt"
	"net/url"
)

type Config struct {
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	UI         UIConfig       `mapstructure:"ui"`
	Failures   FailureConfig  `mapstructure:"failures"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type ServerConfig struct {
	// BaseURL is where the client sends its requests.
	BaseURL string `mapstructure:"base_url"`
	// Listen is the address `bills serve` binds to.
	Listen         string   `mapstructure:"listen"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type UIConfig struct {
	Prompt string `mapstructure:"prompt"`
	Format string `mapstructure:"format"`
}

type FailureConfig struct {
	Policy string `mapstructure:"policy"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

func NewDefault() *Config {
	return &Config{
		Server: ServerConfig{
			BaseURL:        "http://127.0.0.1:8000",
			Listen:         "127.0.0.1:8000",
			AllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{Path: ""},
		UI:       UIConfig{Prompt: "huh", Format: "table"},
		Failures: FailureConfig{Policy: "log"},
		Log:      LogConfig{Level: "info", Format: "text"},
	}
}

func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server.base_url %q is not an absolute URL", c.Server.BaseURL)
	}

	if err := oneOf("ui.prompt", c.UI.Prompt, "huh", "survey"); err != nil {
		return err
	}
	if err := oneOf("ui.format", c.UI.Format, "table", "html"); err != nil {
		return err
	}
	if err := oneOf("failures.policy", c.Failures.Policy, "silent", "log", "notify"); err != nil {
		return err
	}
	if err := oneOf("log.level", c.Log.Level, "trace", "debug", "info", "warn", "error"); err != nil {
		return err
	}
	if err := oneOf("log.format", c.Log.Format, "text", "json"); err != nil {
		return err
	}

	return nil
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s '%s' (must be one of %v)", key, value, allowed)
}
