package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kelseyhightower/envconfig"
)

const (
	defaultBaseURL   = "https://api.open-meteo.com/v1"
	defaultUserAgent = "weather-app/1.0"
	defaultTimeout   = 30
)

type Config struct {
	AppName    string          `envconfig:"APP_NAME" default:"weather-mcp"`
	AppVersion string          `envconfig:"APP_VERSION" default:"1.0.0"`
	Port       string          `envconfig:"PORT" default:"8080"`
	SSLVerify  string          `envconfig:"SSL_VERIFY" yaml:"ssl_verify"`
	OpenMeteo  OpenMeteoConfig `yaml:"open_meteo"`
}

// OpenMeteoConfig fields are yaml-backed and must not carry envconfig
// `default` tags: envconfig applies a default whenever the env var is unset,
// which would overwrite the value loaded from config.yaml. Fallbacks are
// applied after the env overlay instead.
type OpenMeteoConfig struct {
	BaseURL   string `envconfig:"OPENMETEO_BASE_URL" yaml:"base_url"`
	UserAgent string `envconfig:"OPENMETEO_USER_AGENT" yaml:"user_agent"`
	Timeout   int    `envconfig:"OPENMETEO_TIMEOUT" yaml:"timeout"`
}

func NewConfig() *Config {
	return newConfigFromFile("config/config.yaml")
}

func newConfigFromFile(path string) *Config {
	var cnf Config

	// Read from YAML file first
	if yamlData, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(yamlData, &cnf); err != nil {
			panic(fmt.Sprintf("Warning: failed to parse YAML config: %v\n", err))
		}
	}

	// Override with environment variables
	if err := envconfig.Process("", &cnf); err != nil {
		panic(fmt.Errorf("error environment variable parsing: %w", err))
	}

	if cnf.OpenMeteo.BaseURL == "" {
		cnf.OpenMeteo.BaseURL = defaultBaseURL
	}
	if cnf.OpenMeteo.UserAgent == "" {
		cnf.OpenMeteo.UserAgent = defaultUserAgent
	}
	if cnf.OpenMeteo.Timeout == 0 {
		cnf.OpenMeteo.Timeout = defaultTimeout
	}

	return &cnf
}

// TLSVerify reports whether outbound TLS certificate verification is enabled.
// Only an explicit SSL_VERIFY=false (any casing) disables it; unset or any
// other value keeps verification on. The toggle exists for corporate proxies
// that re-sign TLS traffic.
func (c *Config) TLSVerify() bool {
	return !strings.EqualFold(c.SSLVerify, "false")
}
