// Package orchestrator coordinates the pipeline stages for both modes.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"time"

	"github.com/ideamans/go-l10n"

	"github.com/user/vidseek/pkg/listing"
	"github.com/user/vidseek/pkg/pipeline"
	"github.com/user/vidseek/pkg/ports"
	"github.com/user/vidseek/pkg/stages/resolve"
)

// timeLayout is the wall-clock format used in captions and reports.
const timeLayout = "2006-01-02 15:04:05"

// Config contains all configuration for one invocation.
type Config struct {
	// Catalog
	Dir               string
	Extensions        []string
	AdjustForDuration bool

	// Resolution
	Target      time.Time
	FrameOffset int64
	TieBreak    pipeline.TieBreak

	// Output
	SavePath    string
	ShowWindow  bool
	Caption     bool
	CaptionFont string

	// Diagnostics
	ShowTimings bool

	// Cache
	CacheEnabled bool
	Rescan       bool
}

// Cache persists raw catalog metadata between runs.
type Cache interface {
	// Load returns the cached catalog, or (nil, nil) on a miss.
	Load() ([]pipeline.VideoRecord, error)

	// Save writes the catalog.
	Save(records []pipeline.VideoRecord) error
}

// SeekResult is the outcome of a seek invocation.
type SeekResult struct {
	Record     pipeline.VideoRecord
	FrameIndex int64
	Match      pipeline.MatchKind
	SavedTo    string
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	scanStage      pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult]
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult]
	resolveStage   pipeline.Stage[pipeline.ResolveInput, pipeline.ResolveResult]
	grabStage      pipeline.Stage[pipeline.GrabInput, pipeline.GrabResult]
	cache          Cache // nil disables caching
	fs             ports.FileSystem
	sink           ports.ArtifactSink
	viewer         ports.FrameViewer
	renderer       ports.Renderer
	formatter      listing.Formatter
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	scanStage pipeline.Stage[pipeline.ScanInput, pipeline.ScanResult],
	normalizeStage pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult],
	resolveStage pipeline.Stage[pipeline.ResolveInput, pipeline.ResolveResult],
	grabStage pipeline.Stage[pipeline.GrabInput, pipeline.GrabResult],
	cache Cache,
	fs ports.FileSystem,
	sink ports.ArtifactSink,
	viewer ports.FrameViewer,
	renderer ports.Renderer,
	formatter listing.Formatter,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		scanStage:      scanStage,
		normalizeStage: normalizeStage,
		resolveStage:   resolveStage,
		grabStage:      grabStage,
		cache:          cache,
		fs:             fs,
		sink:           sink,
		viewer:         viewer,
		renderer:       renderer,
		formatter:      formatter,
		logger:         logger,
	}
}

// List runs the metadata display mode and returns the formatted listing.
func (o *Orchestrator) List(ctx context.Context, config Config) (string, error) {
	records, err := o.catalog(ctx, config)
	if err != nil {
		return "", err
	}

	normalized, err := o.normalizeStage.Execute(ctx, pipeline.NormalizeInput{
		Records:           records,
		AdjustForDuration: config.AdjustForDuration,
	})
	if err != nil {
		return "", fmt.Errorf("normalize: %w", err)
	}

	return o.formatter.Format(normalized.Records), nil
}

// Seek runs the search-and-process mode: locate the frame recorded at the
// target instant, then save and/or display it.
func (o *Orchestrator) Seek(ctx context.Context, config Config) (SeekResult, error) {
	records, err := o.catalog(ctx, config)
	if err != nil {
		return SeekResult{}, err
	}

	normalized, err := o.normalizeStage.Execute(ctx, pipeline.NormalizeInput{
		Records:           records,
		AdjustForDuration: config.AdjustForDuration,
	})
	if err != nil {
		return SeekResult{}, fmt.Errorf("normalize: %w", err)
	}

	stopResolve := o.stopwatch(config.ShowTimings, "Resolved frame")
	resolved, err := o.resolveStage.Execute(ctx, pipeline.ResolveInput{
		Records:     normalized.Records,
		Target:      config.Target,
		FrameOffset: config.FrameOffset,
		TieBreak:    config.TieBreak,
	})
	stopResolve()
	if err != nil {
		return SeekResult{}, fmt.Errorf("resolve: %w", err)
	}

	if resolved.Match == pipeline.MatchBestEffort {
		o.logger.Warn(l10n.F("Target instant is outside every recording; nearest is %s (%s away)",
			resolved.Record.Path, resolved.BoundaryDistance))
	} else {
		o.logger.Info(l10n.F("Frame %d of %s covers the target instant", resolved.FrameIndex, resolved.Record.Path))
	}

	o.saveResolutionReport(config, resolved)

	stopGrab := o.stopwatch(config.ShowTimings, "Decoded frame")
	grabbed, err := o.grabStage.Execute(ctx, pipeline.GrabInput{
		Record:     resolved.Record,
		FrameIndex: resolved.FrameIndex,
	})
	stopGrab()
	if err != nil {
		return SeekResult{}, err
	}

	img := grabbed.Image
	if config.Caption {
		img = o.annotate(img, config, resolved, grabbed.FrameIndex)
	}

	result := SeekResult{
		Record:     resolved.Record,
		FrameIndex: grabbed.FrameIndex,
		Match:      resolved.Match,
	}

	if config.SavePath != "" {
		data, err := o.renderer.EncodeImage(img, ports.FormatPNG, 0)
		if err != nil {
			return SeekResult{}, fmt.Errorf("encode frame: %w", err)
		}
		if err := o.fs.WriteFile(config.SavePath, data); err != nil {
			return SeekResult{}, fmt.Errorf("save frame: %w", err)
		}
		result.SavedTo = config.SavePath
		o.logger.Info(l10n.F("Frame saved to %s", config.SavePath))
	}

	if o.sink.Enabled() {
		name := fmt.Sprintf("frame-%06d.png", grabbed.FrameIndex)
		if err := o.sink.SaveFrame(name, img); err != nil {
			o.logger.Warn(l10n.F("Cannot save frame artifact: %s", err))
		}
	}

	if config.ShowWindow {
		title := fmt.Sprintf("%s - frame %d", filepath.Base(resolved.Record.Path), grabbed.FrameIndex)
		if err := o.viewer.Show(img, title); err != nil {
			return SeekResult{}, fmt.Errorf("display frame: %w", err)
		}
	}

	return result, nil
}

// catalog returns the raw records, from the cache when enabled or by
// scanning the directory. Cache problems degrade to a rescan, never fail
// the invocation.
func (o *Orchestrator) catalog(ctx context.Context, config Config) ([]pipeline.VideoRecord, error) {
	if config.CacheEnabled && !config.Rescan && o.cache != nil {
		stop := o.stopwatch(config.ShowTimings, "Loaded cached catalog")
		records, err := o.cache.Load()
		stop()
		if err != nil {
			o.logger.Warn(l10n.F("Metadata cache unreadable, rescanning: %s", err))
		} else if records != nil {
			o.logger.Debug("Catalog of %d records loaded from cache", len(records))
			return records, nil
		}
	}

	stop := o.stopwatch(config.ShowTimings, "Scanned directory")
	scanned, err := o.scanStage.Execute(ctx, pipeline.ScanInput{
		Dir:        config.Dir,
		Extensions: config.Extensions,
	})
	stop()
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	if o.sink.Enabled() {
		if data, err := json.MarshalIndent(scanned.Records, "", "  "); err == nil {
			o.sink.SaveCatalogJSON(data)
		}
	}
	if config.CacheEnabled && o.cache != nil {
		if err := o.cache.Save(scanned.Records); err != nil {
			o.logger.Warn(l10n.F("Cannot write metadata cache: %s", err))
		}
	}

	return scanned.Records, nil
}

// resolutionReport is the JSON artifact describing a resolution outcome.
type resolutionReport struct {
	Path             string `json:"path"`
	FrameIndex       int64  `json:"frame_index"`
	Match            string `json:"match"`
	Target           string `json:"target"`
	EffectiveStart   string `json:"effective_start,omitempty"`
	BoundaryDistance string `json:"boundary_distance,omitempty"`
}

func (o *Orchestrator) saveResolutionReport(config Config, resolved pipeline.ResolveResult) {
	if !o.sink.Enabled() {
		return
	}
	report := resolutionReport{
		Path:       resolved.Record.Path,
		FrameIndex: resolved.FrameIndex,
		Match:      resolved.Match.String(),
		Target:     config.Target.Format(timeLayout),
	}
	if resolved.Record.EffectiveStart != nil {
		report.EffectiveStart = resolved.Record.EffectiveStart.Format(timeLayout)
	}
	if resolved.Match == pipeline.MatchBestEffort {
		report.BoundaryDistance = resolved.BoundaryDistance.String()
	}
	if data, err := json.MarshalIndent(report, "", "  "); err == nil {
		o.sink.SaveResolutionJSON(data)
	}
}

// annotate burns a caption strip with the target instant and frame index
// into the bottom of the frame. The strip is sized to the rendered text.
func (o *Orchestrator) annotate(img image.Image, config Config, resolved pipeline.ResolveResult, index int64) image.Image {
	bounds := img.Bounds()
	caption := fmt.Sprintf("%s  %s  frame %d",
		config.Target.Format(timeLayout), filepath.Base(resolved.Record.Path), index)
	style := ports.TextStyle{
		FontSize: 12,
		FontPath: config.CaptionFont,
		Color:    color.White,
	}

	canvas := o.renderer.CreateCanvas(bounds.Dx(), bounds.Dy(), color.Black)
	canvas.DrawImage(img, 0, 0)

	_, textHeight := canvas.MeasureText(caption, style)
	stripHeight := int(textHeight) + 8
	canvas.DrawRect(0, bounds.Dy()-stripHeight, bounds.Dx(), stripHeight, color.RGBA{A: 200})
	canvas.DrawText(caption, 4, bounds.Dy()-5, style)
	return canvas.ToImage()
}

// stopwatch returns a func that logs the elapsed time under the given label
// when timing diagnostics are enabled.
func (o *Orchestrator) stopwatch(enabled bool, label string) func() {
	start := time.Now()
	return func() {
		if enabled {
			o.logger.Info(l10n.F("%s in %.3f seconds", label, time.Since(start).Seconds()))
		}
	}
}

// IsNoEligibleVideos reports whether err is the resolver's definitive
// "nothing usable in this directory" failure.
func IsNoEligibleVideos(err error) bool {
	return errors.Is(err, resolve.ErrNoEligibleVideos)
}
