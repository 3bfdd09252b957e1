// Package config provides configuration loading and structs for the Quantaflow server.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug      bool             `yaml:"debug"`
	Server     ServerConfig     `yaml:"server"`
	Simulation SimulationConfig `yaml:"simulation"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// SimulationConfig holds the artificial delays that stand in for real work.
// All values are in milliseconds so they stay plain YAML integers.
type SimulationConfig struct {
	// AuthDelayMS is the pause before a login response.
	AuthDelayMS int `yaml:"auth_delay_ms"`
	// RetrievalDelayMS is the pause before a query produces results.
	RetrievalDelayMS int `yaml:"retrieval_delay_ms"`
	// StageDelaysMS are offsets from upload time for the file processing
	// stage transitions, one per stage.
	StageDelaysMS []int `yaml:"stage_delays_ms"`
}

// AuthDelay returns the login delay as a duration.
func (s *SimulationConfig) AuthDelay() time.Duration {
	return time.Duration(s.AuthDelayMS) * time.Millisecond
}

// RetrievalDelay returns the query delay as a duration.
func (s *SimulationConfig) RetrievalDelay() time.Duration {
	return time.Duration(s.RetrievalDelayMS) * time.Millisecond
}

// StageDelays returns the stage transition offsets as durations.
func (s *SimulationConfig) StageDelays() []time.Duration {
	delays := make([]time.Duration, 0, len(s.StageDelaysMS))
	for _, ms := range s.StageDelaysMS {
		delays = append(delays, time.Duration(ms)*time.Millisecond)
	}
	return delays
}

// Load reads and parses the config file at path and applies defaults.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)
	return &cfg, nil
}
