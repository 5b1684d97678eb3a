// Package config loads the Westmarch configuration file and overlays
// provider credentials from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/titanous/json5"
)

// Config is the whole configuration document.
type Config struct {
	Gateway   GatewayConfig   `json:"gateway"`
	Providers ProvidersConfig `json:"providers"`
	Memory    MemoryConfig    `json:"memory"`
	Debug     bool            `json:"debug"`
}

// GatewayConfig configures the chat gateway.
type GatewayConfig struct {
	Host            string `json:"host"`
	Port            int    `json:"port"`
	Token           string `json:"token"`
	RateLimitPerMin int    `json:"rateLimitPerMin"`
}

// ProvidersConfig holds one block per model provider.
type ProvidersConfig struct {
	Gemini ProviderConfig `json:"gemini"`
	OpenAI ProviderConfig `json:"openai"`
}

// ProviderConfig configures a single model provider. A missing APIKey does
// not fail startup; the provider reports a credential error when invoked.
type ProviderConfig struct {
	APIKey  string `json:"apiKey"`
	APIBase string `json:"apiBase"`
	Model   string `json:"model"`
}

// MemoryConfig locates the household's memory ledger.
type MemoryConfig struct {
	Path string `json:"path"`
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(dataDir(), "config.json5")
}

// DefaultLedgerPath returns the default memory ledger location.
func DefaultLedgerPath() string {
	return filepath.Join(dataDir(), "memory.json")
}

func dataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".westmarch"
	}
	return filepath.Join(home, ".westmarch")
}

// Defaults returns the configuration used when no file exists.
func Defaults() *Config {
	return &Config{
		Gateway: GatewayConfig{
			Host:            "127.0.0.1",
			Port:            8710,
			RateLimitPerMin: 60,
		},
		Providers: ProvidersConfig{
			Gemini: ProviderConfig{Model: "gemini-2.5-flash-lite"},
			OpenAI: ProviderConfig{Model: "gpt-4.1"},
		},
		Memory: MemoryConfig{Path: DefaultLedgerPath()},
	}
}

// Load reads the config file at path (JSON5), applies defaults for unset
// fields, and overlays credentials from the environment. A missing file is
// not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to env overlay
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json5.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyDefaults(cfg)
	applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	d := Defaults()
	if cfg.Gateway.Host == "" {
		cfg.Gateway.Host = d.Gateway.Host
	}
	if cfg.Gateway.Port == 0 {
		cfg.Gateway.Port = d.Gateway.Port
	}
	if cfg.Gateway.RateLimitPerMin == 0 {
		cfg.Gateway.RateLimitPerMin = d.Gateway.RateLimitPerMin
	}
	if cfg.Providers.Gemini.Model == "" {
		cfg.Providers.Gemini.Model = d.Providers.Gemini.Model
	}
	if cfg.Providers.OpenAI.Model == "" {
		cfg.Providers.OpenAI.Model = d.Providers.OpenAI.Model
	}
	if cfg.Memory.Path == "" {
		cfg.Memory.Path = d.Memory.Path
	}
}

// applyEnv overlays provider credentials from the process environment.
// Environment variables win over the config file.
func applyEnv(cfg *Config) {
	if key := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")); key != "" {
		cfg.Providers.Gemini.APIKey = key
	}
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		cfg.Providers.OpenAI.APIKey = key
	}
}
