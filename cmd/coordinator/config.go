package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration for the coordinator. Values come
// from an optional YAML file, overridden by environment variables, overridden
// by command line flags.
type Config struct {
	RegistryRPCURL     string `yaml:"registry_rpc_url"`
	RegistryContractID string `yaml:"registry_contract_id"`
	BlockStreamerURL   string `yaml:"block_streamer_url"`
	RunnerURL          string `yaml:"runner_url"`
	DataDir            string `yaml:"data_dir"`
	MetricsAddr        string `yaml:"metrics_addr"`
	LogLevel           string `yaml:"log_level"`
	LogJSON            bool   `yaml:"log_json"`
}

// DefaultConfig returns a Config with development-friendly defaults.
func DefaultConfig() *Config {
	return &Config{
		RegistryContractID: "queryapi.dataplatform.near",
		BlockStreamerURL:   "localhost:7001",
		RunnerURL:          "localhost:7002",
		DataDir:            "./coordinator-data",
		MetricsAddr:        ":9180",
		LogLevel:           "info",
		LogJSON:            true,
	}
}

// LoadConfig builds the effective configuration. path may be empty, in which
// case only defaults and environment variables apply.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.RegistryRPCURL, "REGISTRY_RPC_URL")
	setFromEnv(&cfg.RegistryContractID, "REGISTRY_CONTRACT_ID")
	setFromEnv(&cfg.BlockStreamerURL, "BLOCK_STREAMER_URL")
	setFromEnv(&cfg.RunnerURL, "RUNNER_URL")
	setFromEnv(&cfg.DataDir, "DATA_DIR")
	setFromEnv(&cfg.MetricsAddr, "METRICS_ADDR")
	setFromEnv(&cfg.LogLevel, "LOG_LEVEL")
}

func setFromEnv(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.RegistryRPCURL == "" {
		return fmt.Errorf("registry RPC URL is required (--rpc-url or REGISTRY_RPC_URL)")
	}
	if c.RegistryContractID == "" {
		return fmt.Errorf("registry contract ID is required (--contract-id or REGISTRY_CONTRACT_ID)")
	}
	if c.BlockStreamerURL == "" {
		return fmt.Errorf("block streamer URL is required (--block-streamer-url or BLOCK_STREAMER_URL)")
	}
	if c.RunnerURL == "" {
		return fmt.Errorf("runner URL is required (--runner-url or RUNNER_URL)")
	}
	return nil
}
