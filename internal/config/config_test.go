package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json5"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gateway.Port != 8710 {
		t.Errorf("default port = %d, want 8710", cfg.Gateway.Port)
	}
	if cfg.Providers.Gemini.Model == "" || cfg.Providers.OpenAI.Model == "" {
		t.Error("default provider models not applied")
	}
	if cfg.Memory.Path == "" {
		t.Error("default ledger path not applied")
	}
}

func TestLoad_JSON5WithComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	content := `{
  // the gateway block
  gateway: { port: 9999 },
  providers: { openai: { model: "gpt-4o-mini" } },
}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Gateway.Port != 9999 {
		t.Errorf("port = %d, want 9999", cfg.Gateway.Port)
	}
	if cfg.Providers.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model = %q, want gpt-4o-mini", cfg.Providers.OpenAI.Model)
	}
	// Unset fields still get defaults.
	if cfg.Gateway.Host != "127.0.0.1" {
		t.Errorf("host = %q, want default", cfg.Gateway.Host)
	}
}

func TestLoad_EnvOverlay(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json5"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Providers.Gemini.APIKey != "g-key" {
		t.Errorf("gemini key = %q, want g-key", cfg.Providers.Gemini.APIKey)
	}
	if cfg.Providers.OpenAI.APIKey != "o-key" {
		t.Errorf("openai key = %q, want o-key", cfg.Providers.OpenAI.APIKey)
	}
}

func TestLoad_EnvWinsOverFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json5")
	content := `{ providers: { openai: { apiKey: "file-key" } } }`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OPENAI_API_KEY", "env-key")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Providers.OpenAI.APIKey != "env-key" {
		t.Errorf("openai key = %q, want env-key", cfg.Providers.OpenAI.APIKey)
	}
}
