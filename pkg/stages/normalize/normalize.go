// Package normalize implements the creation-time normalization stage.
//
// Some containers and filesystems only expose the instant recording ended
// (the file close time). With adjustment enabled the stage subtracts the
// duration from the raw timestamp to recover the instant recording began.
package normalize

import (
	"context"

	"github.com/user/vidseek/pkg/pipeline"
)

// Stage derives each record's effective start time from its raw metadata.
type Stage struct{}

// New creates a new normalize stage.
func New() *Stage {
	return &Stage{}
}

// Execute populates EffectiveStart on every record that has enough metadata.
// Records are copied; the input is not mutated. A record whose adjustment
// cannot be computed (no duration) keeps an unset start and simply drops out
// of resolution, it is not an error.
func (s *Stage) Execute(ctx context.Context, input pipeline.NormalizeInput) (pipeline.NormalizeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.NormalizeResult{}, err
	}

	records := make([]pipeline.VideoRecord, len(input.Records))
	for i, rec := range input.Records {
		records[i] = normalize(rec, input.AdjustForDuration)
	}
	return pipeline.NormalizeResult{Records: records}, nil
}

func normalize(rec pipeline.VideoRecord, adjust bool) pipeline.VideoRecord {
	rec.EffectiveStart = nil
	if rec.RawCreationTime == nil {
		return rec
	}
	if !adjust {
		start := *rec.RawCreationTime
		rec.EffectiveStart = &start
		return rec
	}
	if rec.Duration == nil {
		// Adjustment requested but nothing to subtract; the record stays
		// ineligible rather than using a timestamp of the wrong meaning.
		return rec
	}
	start := rec.RawCreationTime.Add(-*rec.Duration)
	rec.EffectiveStart = &start
	return rec
}

var _ pipeline.Stage[pipeline.NormalizeInput, pipeline.NormalizeResult] = (*Stage)(nil)
