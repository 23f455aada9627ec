package pipeline

import (
	"image"
	"math"
	"time"
)

// TimeSource records where a VideoRecord's raw creation time came from.
type TimeSource string

const (
	// TimeSourceContainer means the timestamp was read from container metadata.
	TimeSourceContainer TimeSource = "container"
	// TimeSourceFilesystem means the file's last-modified time was used.
	TimeSourceFilesystem TimeSource = "filesystem"
	// TimeSourceNone means no timestamp could be determined.
	TimeSourceNone TimeSource = "none"
)

// VideoRecord is one discovered video file with its timing metadata.
// Records with missing fields stay in the catalog so the listing mode can
// show them as unknown; only complete records take part in resolution.
type VideoRecord struct {
	Path string

	// RawCreationTime is the timestamp as reported by the metadata source,
	// nil when extraction failed. Depending on the source it may mark the
	// start or the end of the recording.
	RawCreationTime *time.Time

	// Duration is the playback time, nil when unknown.
	Duration *time.Duration

	// FrameRate is frames per second, 0 when unknown.
	FrameRate float64

	// FrameCount is the authoritative sample count from the container,
	// 0 when unknown.
	FrameCount int64

	// Source identifies where RawCreationTime came from.
	Source TimeSource

	// EffectiveStart is the derived instant recording began. Set exactly
	// once by the normalize stage.
	EffectiveStart *time.Time
}

// EffectiveEnd returns the derived instant recording ended, or nil when
// either the start or the duration is unknown.
func (r *VideoRecord) EffectiveEnd() *time.Time {
	if r.EffectiveStart == nil || r.Duration == nil {
		return nil
	}
	end := r.EffectiveStart.Add(*r.Duration)
	return &end
}

// Eligible reports whether the record can take part in frame resolution.
func (r *VideoRecord) Eligible() bool {
	return r.EffectiveStart != nil && r.Duration != nil && r.FrameRate > 0
}

// TotalFrames returns the container's frame count when known, otherwise
// floor(duration * fps). Returns 0 when neither can be computed.
func (r *VideoRecord) TotalFrames() int64 {
	if r.FrameCount > 0 {
		return r.FrameCount
	}
	if r.Duration == nil || r.FrameRate <= 0 {
		return 0
	}
	return int64(math.Floor(r.Duration.Seconds() * r.FrameRate))
}

// TieBreak selects the winner when several recordings contain the target
// instant (overlapping clips).
type TieBreak int

const (
	// TieBreakLatestStart picks the most recently started recording. This
	// models a newer clip superseding an older one covering the same window.
	TieBreakLatestStart TieBreak = iota
	// TieBreakEarliestStart picks the recording that started first.
	TieBreakEarliestStart
)

// ParseTieBreak parses a tie-break policy name, defaulting to latest-start.
func ParseTieBreak(s string) TieBreak {
	if s == "earliest-start" {
		return TieBreakEarliestStart
	}
	return TieBreakLatestStart
}

// MatchKind distinguishes how the resolver located a record.
type MatchKind int

const (
	// MatchExact means the target instant lies inside the record's interval.
	MatchExact MatchKind = iota
	// MatchBestEffort means the target lies outside every interval and the
	// nearest record was returned instead.
	MatchBestEffort
)

// String returns the string representation of the match kind.
func (k MatchKind) String() string {
	if k == MatchBestEffort {
		return "best-effort"
	}
	return "exact"
}

// ScanInput is the input to the catalog scanning stage.
type ScanInput struct {
	Dir        string
	Extensions []string
}

// ScanResult is the scanned catalog. The record order carries no meaning.
type ScanResult struct {
	Records []VideoRecord
}

// NormalizeInput is the input to the creation-time normalization stage.
type NormalizeInput struct {
	Records []VideoRecord

	// AdjustForDuration subtracts the duration from the raw creation time,
	// compensating for metadata sources that report the end of recording
	// (file close time) rather than the start.
	AdjustForDuration bool
}

// NormalizeResult is the catalog with effective start times populated.
type NormalizeResult struct {
	Records []VideoRecord
}

// ResolveInput is the input to the frame resolution stage.
type ResolveInput struct {
	Records []VideoRecord
	Target  time.Time

	// FrameOffset is a caller-supplied nudge, in frames, applied after the
	// time-based index computation. May be negative.
	FrameOffset int64

	TieBreak TieBreak
}

// ResolveResult identifies the frame that corresponds to the target instant.
type ResolveResult struct {
	Record     VideoRecord
	FrameIndex int64
	Match      MatchKind

	// BoundaryDistance is the distance from the target to the nearest
	// interval boundary for best-effort matches, 0 for exact matches.
	BoundaryDistance time.Duration
}

// GrabInput is the input to the frame materialization stage.
type GrabInput struct {
	Record     VideoRecord
	FrameIndex int64
}

// GrabResult holds the decoded frame. FrameIndex is the index actually
// decoded, which may differ from the requested one after re-clamping
// against the decoder's own frame count.
type GrabResult struct {
	Image      image.Image
	FrameIndex int64
}
