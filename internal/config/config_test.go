package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("SEGURYMAT_DATA_DIR", "")
	t.Setenv("SEGURYMAT_DB_PATH", "")
	t.Setenv("SEGURYMAT_CLIENT_MATCH_THRESHOLD_AUTO", "")
	t.Setenv("SEGURYMAT_OPENAI_API_KEY", "")

	cfg := FromEnv()
	if cfg.ClientMatchThresholdAuto != 85 || cfg.ClientMatchThresholdConfirm != 70 || cfg.ClientMatchMaxCandidates != 3 {
		t.Fatalf("unexpected matching defaults: %+v", cfg)
	}
	if cfg.AssistEnabled() {
		t.Fatal("assist must be disabled without an API key")
	}
	if cfg.OpenAIModel != "gpt-4o-mini" || cfg.OpenAITimeoutSec != 30 {
		t.Fatalf("unexpected openai defaults: %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SEGURYMAT_DB_PATH", "/tmp/other.db")
	t.Setenv("SEGURYMAT_CLIENT_MATCH_THRESHOLD_AUTO", "90")
	t.Setenv("SEGURYMAT_CLIENT_MATCH_THRESHOLD_CONFIRM", "notanumber")
	t.Setenv("SEGURYMAT_OPENAI_API_KEY", "sk-test")

	cfg := FromEnv()
	if cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("db path override ignored: %q", cfg.DBPath)
	}
	if cfg.ClientMatchThresholdAuto != 90 {
		t.Fatalf("threshold override ignored: %d", cfg.ClientMatchThresholdAuto)
	}
	if cfg.ClientMatchThresholdConfirm != 70 {
		t.Fatalf("invalid int must fall back to default, got %d", cfg.ClientMatchThresholdConfirm)
	}
	if !cfg.AssistEnabled() {
		t.Fatal("assist must be enabled with an API key")
	}
}
