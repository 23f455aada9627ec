// Package resolve implements the timestamp-to-frame resolution stage.
package resolve

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/user/vidseek/pkg/pipeline"
	"github.com/user/vidseek/pkg/ports"
)

// ErrNoEligibleVideos is returned when no record in the catalog has enough
// metadata to resolve a frame. Distinct from a target that falls outside
// every recording, which yields a best-effort match instead.
var ErrNoEligibleVideos = errors.New("no videos with usable metadata")

// Stage selects the record whose recording interval contains the target
// instant and computes the frame index closest to it.
type Stage struct {
	logger ports.Logger
}

// New creates a new resolve stage.
func New(logger ports.Logger) *Stage {
	return &Stage{
		logger: logger.WithComponent("resolve"),
	}
}

// Execute resolves the target instant to a (record, frame index) pair.
func (s *Stage) Execute(ctx context.Context, input pipeline.ResolveInput) (pipeline.ResolveResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ResolveResult{}, err
	}

	eligible := make([]pipeline.VideoRecord, 0, len(input.Records))
	for _, rec := range input.Records {
		if rec.Eligible() {
			eligible = append(eligible, rec)
		}
	}
	if len(eligible) == 0 {
		return pipeline.ResolveResult{}, ErrNoEligibleVideos
	}

	// The catalog carries no ordering guarantee; establish one here so the
	// tie-break rules below are deterministic.
	sort.Slice(eligible, func(i, j int) bool {
		si, sj := *eligible[i].EffectiveStart, *eligible[j].EffectiveStart
		if si.Equal(sj) {
			return eligible[i].Path < eligible[j].Path
		}
		return si.Before(sj)
	})

	chosen, match, distance := selectRecord(eligible, input.Target, input.TieBreak)
	s.logger.Debug("Selected %s (%s match)", chosen.Path, match)

	index := frameIndex(chosen, input.Target, input.FrameOffset)

	return pipeline.ResolveResult{
		Record:           chosen,
		FrameIndex:       index,
		Match:            match,
		BoundaryDistance: distance,
	}, nil
}

// selectRecord picks the owning record among eligible, sorted records.
// Containment wins; otherwise the record with the smallest distance from the
// target to the nearer interval boundary is returned as a best-effort match.
func selectRecord(sorted []pipeline.VideoRecord, target time.Time, tieBreak pipeline.TieBreak) (pipeline.VideoRecord, pipeline.MatchKind, time.Duration) {
	var candidates []pipeline.VideoRecord
	for _, rec := range sorted {
		start, end := *rec.EffectiveStart, *rec.EffectiveEnd()
		if !target.Before(start) && !target.After(end) {
			candidates = append(candidates, rec)
		}
	}

	if len(candidates) > 0 {
		// Input is sorted by start ascending, so the policy reduces to
		// picking one end of the candidate slice.
		switch tieBreak {
		case pipeline.TieBreakEarliestStart:
			return candidates[0], pipeline.MatchExact, 0
		default:
			return candidates[len(candidates)-1], pipeline.MatchExact, 0
		}
	}

	best := sorted[0]
	bestDist := boundaryDistance(best, target)
	for _, rec := range sorted[1:] {
		dist := boundaryDistance(rec, target)
		// On equal distance the later start wins, consistent with the
		// containment tie-break.
		if dist < bestDist || (dist == bestDist && rec.EffectiveStart.After(*best.EffectiveStart)) {
			best, bestDist = rec, dist
		}
	}
	return best, pipeline.MatchBestEffort, bestDist
}

// boundaryDistance returns the absolute distance from the target to the
// nearer of the record's interval boundaries.
func boundaryDistance(rec pipeline.VideoRecord, target time.Time) time.Duration {
	toStart := absDuration(target.Sub(*rec.EffectiveStart))
	toEnd := absDuration(target.Sub(*rec.EffectiveEnd()))
	if toEnd < toStart {
		return toEnd
	}
	return toStart
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// frameIndex converts the elapsed time within the record into a zero-based
// frame index. The caller's frame offset may push the index past either end
// of the file; the result is clamped, never rejected.
func frameIndex(rec pipeline.VideoRecord, target time.Time, offset int64) int64 {
	elapsed := target.Sub(*rec.EffectiveStart)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > *rec.Duration {
		elapsed = *rec.Duration
	}

	index := int64(math.Round(elapsed.Seconds()*rec.FrameRate)) + offset

	total := rec.TotalFrames()
	if index > total-1 {
		index = total - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

var _ pipeline.Stage[pipeline.ResolveInput, pipeline.ResolveResult] = (*Stage)(nil)
