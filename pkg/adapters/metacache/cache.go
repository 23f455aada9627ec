// Package metacache persists scanned catalog metadata between runs as a
// JSON file, so repeated queries against a large directory skip the scan.
//
// Entries store the raw, pre-normalization metadata: the duration adjustment
// is a per-invocation flag and must still apply to cached catalogs.
package metacache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/user/vidseek/pkg/pipeline"
	"github.com/user/vidseek/pkg/ports"
)

// DefaultFileName is the cache file created next to the working directory
// when no explicit path is configured.
const DefaultFileName = "video_metadata_cache.json"

// Cache reads and writes the catalog cache file.
type Cache struct {
	path string
	fs   ports.FileSystem
}

// New creates a Cache at the given path.
func New(path string, fs ports.FileSystem) *Cache {
	if path == "" {
		path = DefaultFileName
	}
	return &Cache{path: path, fs: fs}
}

type entry struct {
	Path            string     `json:"path"`
	RawCreationTime *time.Time `json:"creation_time,omitempty"`
	DurationSeconds *float64   `json:"duration_seconds,omitempty"`
	FrameRate       float64    `json:"frame_rate,omitempty"`
	FrameCount      int64      `json:"frame_count,omitempty"`
	TimeSource      string     `json:"time_source"`
}

// Load reads the cached catalog. A missing cache file is a miss, not an
// error: it returns (nil, nil).
func (c *Cache) Load() ([]pipeline.VideoRecord, error) {
	exists, err := c.fs.Exists(c.path)
	if err != nil {
		return nil, fmt.Errorf("check cache %s: %w", c.path, err)
	}
	if !exists {
		return nil, nil
	}

	data, err := c.fs.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read cache %s: %w", c.path, err)
	}
	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse cache %s: %w", c.path, err)
	}

	records := make([]pipeline.VideoRecord, 0, len(entries))
	for _, e := range entries {
		rec := pipeline.VideoRecord{
			Path:            e.Path,
			RawCreationTime: e.RawCreationTime,
			FrameRate:       e.FrameRate,
			FrameCount:      e.FrameCount,
			Source:          pipeline.TimeSource(e.TimeSource),
		}
		if rec.Source == "" {
			rec.Source = pipeline.TimeSourceNone
		}
		if e.DurationSeconds != nil {
			d := time.Duration(*e.DurationSeconds * float64(time.Second))
			rec.Duration = &d
		}
		records = append(records, rec)
	}
	return records, nil
}

// Save writes the catalog's raw metadata to the cache file.
func (c *Cache) Save(records []pipeline.VideoRecord) error {
	entries := make([]entry, 0, len(records))
	for _, rec := range records {
		e := entry{
			Path:            rec.Path,
			RawCreationTime: rec.RawCreationTime,
			FrameRate:       rec.FrameRate,
			FrameCount:      rec.FrameCount,
			TimeSource:      string(rec.Source),
		}
		if rec.Duration != nil {
			secs := rec.Duration.Seconds()
			e.DurationSeconds = &secs
		}
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache: %w", err)
	}
	if err := c.fs.WriteFile(c.path, data); err != nil {
		return fmt.Errorf("write cache %s: %w", c.path, err)
	}
	return nil
}
