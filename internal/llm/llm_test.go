package llm

import "testing"

func TestNewConfig(t *testing.T) {
	t.Setenv(EnvAPIKey, "test-key-123")

	cfg := NewConfig()
	if cfg.Model != "gemini-3-pro" {
		t.Errorf("Model = %q, want %q", cfg.Model, "gemini-3-pro")
	}
	if cfg.Temperature != 0.0 {
		t.Errorf("Temperature = %v, want 0", cfg.Temperature)
	}
	if cfg.APIKey != "test-key-123" {
		t.Errorf("APIKey = %q, want value from %s", cfg.APIKey, EnvAPIKey)
	}
}

func TestNewConfigWithoutCredential(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	// Construction must still succeed so the failure, if any, happens at
	// the remote call rather than here.
	cfg := NewConfig()
	if cfg.APIKey != "" {
		t.Errorf("APIKey = %q, want empty", cfg.APIKey)
	}
	if cfg.Model != ModelName || cfg.Temperature != Temperature {
		t.Errorf("fixed fields changed: %+v", cfg)
	}
}
