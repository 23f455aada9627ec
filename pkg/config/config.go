// Package config provides configuration loading and management.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/user/vidseek/pkg/pipeline"
	"github.com/user/vidseek/pkg/ports"
	"github.com/user/vidseek/pkg/stages/scan"
)

// Config represents the full configuration for vidseek. CLI flags override
// whatever the file sets.
type Config struct {
	// Scanning
	Extensions []string `yaml:"extensions"`

	// Creation-time semantics: subtract the duration from the raw
	// timestamp when the metadata source reports the end of recording.
	AdjustForDuration bool `yaml:"adjust_for_duration"`

	// Tie-break policy for overlapping recordings:
	// "latest-start" (default) or "earliest-start".
	TieBreak string `yaml:"tie_break"`

	// Metadata cache
	CacheEnabled bool   `yaml:"cache"`
	CachePath    string `yaml:"cache_path"`

	// External binaries
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`

	// Output. An empty OutDir disables the artifact sink unless the CLI
	// names a directory.
	OutDir      string `yaml:"out_dir"`
	CaptionFont string `yaml:"caption_font"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Extensions: scan.DefaultExtensions,
		TieBreak:   "latest-start",
		CachePath:  "video_metadata_cache.json",
		LogLevel:   "info",
	}
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string, fs ports.FileSystem) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// TieBreakPolicy returns the configured tie-break as a pipeline policy.
func (c Config) TieBreakPolicy() pipeline.TieBreak {
	return pipeline.ParseTieBreak(c.TieBreak)
}
