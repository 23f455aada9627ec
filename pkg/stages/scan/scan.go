// Package scan implements the catalog building stage.
package scan

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/vidseek/pkg/pipeline"
	"github.com/user/vidseek/pkg/ports"
)

// DefaultExtensions are the video extensions recognized when the caller
// does not supply a set.
var DefaultExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".flv", ".wmv"}

// Stage walks a directory and builds a VideoRecord per recognized video
// file. Metadata failures are per-file warnings, never batch failures.
type Stage struct {
	fs      ports.FileSystem
	meta    ports.MetadataExtractor
	grabber ports.FrameGrabber
	logger  ports.Logger
}

// New creates a new scan stage. The grabber supplies frame rate and count
// for containers whose metadata omits them (fragmented MP4s keep their
// samples in moof boxes); it may be nil.
func New(fs ports.FileSystem, meta ports.MetadataExtractor, grabber ports.FrameGrabber, logger ports.Logger) *Stage {
	return &Stage{
		fs:      fs,
		meta:    meta,
		grabber: grabber,
		logger:  logger.WithComponent("scan"),
	}
}

// Execute builds the catalog for input.Dir.
func (s *Stage) Execute(ctx context.Context, input pipeline.ScanInput) (pipeline.ScanResult, error) {
	files, err := s.fs.ListFiles(input.Dir)
	if err != nil {
		return pipeline.ScanResult{}, fmt.Errorf("list %s: %w", input.Dir, err)
	}

	extensions := input.Extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	recognized := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		recognized[strings.ToLower(ext)] = true
	}

	var records []pipeline.VideoRecord
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return pipeline.ScanResult{}, err
		}
		if !recognized[strings.ToLower(filepath.Ext(path))] {
			continue
		}
		records = append(records, s.buildRecord(ctx, path))
	}

	s.logger.Debug("Found %d video files in %s", len(records), input.Dir)
	return pipeline.ScanResult{Records: records}, nil
}

// buildRecord extracts metadata for one file. Extraction failure leaves the
// record incomplete so the listing mode can still show it as unknown.
func (s *Stage) buildRecord(ctx context.Context, path string) pipeline.VideoRecord {
	rec := pipeline.VideoRecord{
		Path:   path,
		Source: pipeline.TimeSourceNone,
	}

	meta, err := s.meta.Extract(ctx, path)
	if err != nil {
		s.logger.Warn("Cannot read metadata from %s: %s", path, err)
	} else {
		rec.Duration = meta.Duration
		rec.FrameRate = meta.FrameRate
		rec.FrameCount = meta.FrameCount
		if meta.CreationTime != nil {
			rec.RawCreationTime = meta.CreationTime
			rec.Source = pipeline.TimeSourceContainer
		}
		s.backfillFrameInfo(ctx, &rec)
	}

	// Containers without a creation timestamp (or with the known invalid
	// zero value, which the extractor reports as nil) fall back to the
	// file's last-modified time.
	if rec.RawCreationTime == nil {
		if mtime, err := s.fs.ModTime(path); err == nil {
			rec.RawCreationTime = &mtime
			rec.Source = pipeline.TimeSourceFilesystem
		} else {
			s.logger.Warn("Cannot stat %s: %s", path, err)
		}
	}

	return rec
}

// backfillFrameInfo fills frame rate and count from the decoder when the
// container metadata left them unknown. A record with a known recording
// interval must not drop out of resolution just because the extractor could
// not see the sample table.
func (s *Stage) backfillFrameInfo(ctx context.Context, rec *pipeline.VideoRecord) {
	if s.grabber == nil {
		return
	}
	if rec.FrameRate <= 0 {
		if fps, err := s.grabber.FrameRate(ctx, rec.Path); err == nil && fps > 0 {
			rec.FrameRate = fps
			s.logger.Debug("Decoder supplied %.2f fps for %s", fps, rec.Path)
		}
	}
	if rec.FrameCount == 0 {
		if count, err := s.grabber.FrameCount(ctx, rec.Path); err == nil && count > 0 {
			rec.FrameCount = count
		}
	}
}

var _ pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult] = (*Stage)(nil)
