package config

import (
	"testing"

	"github.com/user/vidseek/pkg/mocks"
	"github.com/user/vidseek/pkg/pipeline"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("", mocks.NewFileSystem())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if len(cfg.Extensions) == 0 {
		t.Error("expected default extensions")
	}
	if cfg.TieBreakPolicy() != pipeline.TieBreakLatestStart {
		t.Error("expected latest-start default tie-break")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	fs := mocks.NewFileSystem()
	if err := fs.WriteFile("vidseek.yaml", []byte(`
extensions: [".mp4"]
adjust_for_duration: true
tie_break: earliest-start
cache: true
cache_path: /tmp/cache.json
log_level: debug
`)); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("vidseek.yaml", fs)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".mp4" {
		t.Errorf("extensions not overridden: %v", cfg.Extensions)
	}
	if !cfg.AdjustForDuration || !cfg.CacheEnabled {
		t.Error("boolean overrides not applied")
	}
	if cfg.TieBreakPolicy() != pipeline.TieBreakEarliestStart {
		t.Error("tie-break override not applied")
	}
	if cfg.CachePath != "/tmp/cache.json" || cfg.LogLevel != "debug" {
		t.Error("string overrides not applied")
	}
	// Unset keys keep their defaults.
	if cfg.FFmpegPath != "" || cfg.FFprobePath != "" {
		t.Errorf("expected default binary paths, got %q/%q", cfg.FFmpegPath, cfg.FFprobePath)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := Load("nope.yaml", mocks.NewFileSystem()); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
