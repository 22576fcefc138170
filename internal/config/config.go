package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPort        = 8080
	DefaultBearerToken = "default-token"

	DefaultPingTarget          = "8.8.8.8"
	DefaultIPEchoURL           = "https://api.ipify.org"
	DefaultSensorsCommand      = "sensors"
	DefaultSpeedtestCommand    = "speedtest-cli"
	DefaultCommandTimeoutSec   = 5
	DefaultSpeedtestTimeoutSec = 90
	DefaultHTTPTimeoutSec      = 5
)

// Probes configures the external collaborators of the probe pipeline.
type Probes struct {
	PingTarget          string `yaml:"ping_target"`
	IPEchoURL           string `yaml:"ip_echo_url"`
	SensorsCommand      string `yaml:"sensors_command"`
	SpeedtestCommand    string `yaml:"speedtest_command"`
	CommandTimeoutSec   int    `yaml:"command_timeout_sec"`
	SpeedtestTimeoutSec int    `yaml:"speedtest_timeout_sec"`
	HTTPTimeoutSec      int    `yaml:"http_timeout_sec"`
}

// Config holds the full process configuration. It is built once at
// startup and read-only afterwards.
type Config struct {
	Port        int    `yaml:"port"`
	BearerToken string `yaml:"bearer_token"`
	Probes      Probes `yaml:"probes"`
}

// WithDefaults fills unset probe fields with their defaults.
func (p Probes) WithDefaults() Probes {
	if p.PingTarget == "" {
		p.PingTarget = DefaultPingTarget
	}
	if p.IPEchoURL == "" {
		p.IPEchoURL = DefaultIPEchoURL
	}
	if p.SensorsCommand == "" {
		p.SensorsCommand = DefaultSensorsCommand
	}
	if p.SpeedtestCommand == "" {
		p.SpeedtestCommand = DefaultSpeedtestCommand
	}
	if p.CommandTimeoutSec <= 0 {
		p.CommandTimeoutSec = DefaultCommandTimeoutSec
	}
	if p.SpeedtestTimeoutSec <= 0 {
		p.SpeedtestTimeoutSec = DefaultSpeedtestTimeoutSec
	}
	if p.HTTPTimeoutSec <= 0 {
		p.HTTPTimeoutSec = DefaultHTTPTimeoutSec
	}
	return p
}

// ApplyDefaults fills all unset fields with their defaults.
func ApplyDefaults(cfg *Config) {
	if cfg.Port <= 0 {
		cfg.Port = DefaultPort
	}
	if cfg.BearerToken == "" {
		cfg.BearerToken = DefaultBearerToken
	}
	cfg.Probes = cfg.Probes.WithDefaults()
}

// LoadFile reads and parses a YAML config file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load builds the process configuration: an optional YAML file named by
// CONFIG_FILE, overridden by the PORT and BEARER_TOKEN environment
// variables, with defaults for everything left unset.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p <= 0 {
			log.Printf("Warning: ignoring invalid PORT value %q", port)
		} else {
			cfg.Port = p
		}
	}
	if token := os.Getenv("BEARER_TOKEN"); token != "" {
		cfg.BearerToken = token
	}

	ApplyDefaults(cfg)

	if cfg.BearerToken == DefaultBearerToken {
		log.Printf("[SECURITY] Warning: BEARER_TOKEN is unset; the endpoint is protected only by the placeholder token")
	}

	return cfg, nil
}
