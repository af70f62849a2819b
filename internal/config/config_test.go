package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Port)
	}
	if cfg.MinLoadingDuration != 4*time.Second {
		t.Errorf("min loading = %s, want 4s", cfg.MinLoadingDuration)
	}
	if cfg.CRMEnabled() {
		t.Error("CRM enabled without credentials")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RADARPME_PORT", "9090")
	t.Setenv("RADARPME_PIPEDRIVE_BASE_URL", "https://acme.pipedrive.com/api/v1")
	t.Setenv("RADARPME_PIPEDRIVE_API_TOKEN", "tok")
	t.Setenv("RADARPME_PIPEDRIVE_PIPELINE_ID", "3")
	t.Setenv("RADARPME_MIN_LOADING", "250ms")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if !cfg.CRMEnabled() {
		t.Error("CRM should be enabled")
	}
	if cfg.PipedrivePipeline != 3 {
		t.Errorf("pipeline = %d, want 3", cfg.PipedrivePipeline)
	}
	if cfg.MinLoadingDuration != 250*time.Millisecond {
		t.Errorf("min loading = %s, want 250ms", cfg.MinLoadingDuration)
	}
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RADARPME_PIPEDRIVE_PIPELINE_ID", "not-a-number")
	t.Setenv("RADARPME_MIN_LOADING", "soon")

	cfg := Load()
	if cfg.PipedrivePipeline != 0 {
		t.Errorf("pipeline = %d, want 0", cfg.PipedrivePipeline)
	}
	if cfg.MinLoadingDuration != 4*time.Second {
		t.Errorf("min loading = %s, want default", cfg.MinLoadingDuration)
	}
}
