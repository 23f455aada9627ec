// Package listing formats the catalog for the metadata display mode.
package listing

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/user/vidseek/pkg/pipeline"
)

// Formatter defines the interface for formatting a catalog listing.
type Formatter interface {
	// Format converts the catalog to a formatted string.
	Format(records []pipeline.VideoRecord) string
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(records []pipeline.VideoRecord) string

// Format implements the Formatter interface.
func (f FormatFunc) Format(records []pipeline.VideoRecord) string {
	return f(records)
}

// timeLayout matches the CLI's target datetime format.
const timeLayout = "2006-01-02 15:04:05"

// Text returns the plain-text formatter: one line per record, sorted by
// effective start time with unknown-start records last.
func Text() Formatter {
	return FormatFunc(formatText)
}

func formatText(records []pipeline.VideoRecord) string {
	sorted := make([]pipeline.VideoRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		si, sj := sorted[i].EffectiveStart, sorted[j].EffectiveStart
		switch {
		case si == nil && sj == nil:
			return sorted[i].Path < sorted[j].Path
		case si == nil:
			return false
		case sj == nil:
			return true
		case si.Equal(*sj):
			return sorted[i].Path < sorted[j].Path
		default:
			return si.Before(*sj)
		}
	})

	var b strings.Builder
	for _, rec := range sorted {
		fmt.Fprintf(&b, "%s  start=%s  duration=%s  fps=%s  source=%s\n",
			rec.Path,
			formatStart(rec.EffectiveStart),
			formatDuration(rec.Duration),
			formatRate(rec.FrameRate),
			rec.Source,
		)
	}
	return b.String()
}

func formatStart(t *time.Time) string {
	if t == nil {
		return "unknown"
	}
	return t.Format(timeLayout)
}

func formatDuration(d *time.Duration) string {
	if d == nil {
		return "unknown"
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func formatRate(fps float64) string {
	if fps <= 0 {
		return "unknown"
	}
	return fmt.Sprintf("%.2f", fps)
}
