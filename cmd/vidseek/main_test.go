package main

import (
	"testing"

	"github.com/user/vidseek/pkg/adapters/logger"
	"github.com/user/vidseek/pkg/adapters/nullsink"
	"github.com/user/vidseek/pkg/config"
	"github.com/user/vidseek/pkg/pipeline"
)

func TestBuildOrchestrator_ConfigFileEnablesCache(t *testing.T) {
	cfg := config.Defaults()
	cfg.CacheEnabled = true

	orch, oc := buildOrchestrator(commonFlags{Dir: "/videos"}, cfg, logger.NewNoop(), nullsink.New())
	if orch == nil {
		t.Fatal("expected an orchestrator")
	}
	if !oc.CacheEnabled {
		t.Error("cache: true in the config file must enable caching without the flag")
	}
}

func TestBuildOrchestrator_FlagOverridesConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.TieBreak = "earliest-start"
	cfg.Extensions = []string{".avi"}

	flags := commonFlags{
		Dir:      "/videos",
		TieBreak: "latest-start",
		Ext:      []string{".mp4"},
		Cache:    true,
	}
	_, oc := buildOrchestrator(flags, cfg, logger.NewNoop(), nullsink.New())
	if oc.TieBreak != pipeline.TieBreakLatestStart {
		t.Error("tie-break flag must override the config file")
	}
	if len(oc.Extensions) != 1 || oc.Extensions[0] != ".mp4" {
		t.Errorf("extensions flag must override the config file, got %v", oc.Extensions)
	}
	if !oc.CacheEnabled {
		t.Error("cache flag must enable caching")
	}
}

func TestArtifactDir(t *testing.T) {
	cfg := config.Defaults()
	cfg.OutDir = "/from-config"

	tests := []struct {
		name    string
		flagDir string
		cfg     config.Config
		want    string
	}{
		{"flag wins", "/from-flag", cfg, "/from-flag"},
		{"config fallback", "", cfg, "/from-config"},
		{"neither set", "", config.Defaults(), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := artifactDir(tt.flagDir, tt.cfg); got != tt.want {
				t.Errorf("artifactDir(%q) = %q, want %q", tt.flagDir, got, tt.want)
			}
		})
	}
}
