package normalize

import (
	"context"
	"testing"
	"time"

	"github.com/user/vidseek/pkg/pipeline"
)

func run(t *testing.T, records []pipeline.VideoRecord, adjust bool) []pipeline.VideoRecord {
	t.Helper()
	result, err := New().Execute(context.Background(), pipeline.NormalizeInput{
		Records:           records,
		AdjustForDuration: adjust,
	})
	if err != nil {
		t.Fatalf("normalize: unexpected error: %v", err)
	}
	return result.Records
}

func TestExecute_AdjustmentOff(t *testing.T) {
	raw := time.Date(2024, 6, 19, 19, 10, 0, 0, time.UTC)
	duration := 10 * time.Minute
	records := run(t, []pipeline.VideoRecord{
		{Path: "a.mp4", RawCreationTime: &raw, Duration: &duration},
	}, false)

	if records[0].EffectiveStart == nil {
		t.Fatal("expected effective start to be set")
	}
	if !records[0].EffectiveStart.Equal(raw) {
		t.Errorf("expected start %s, got %s", raw, records[0].EffectiveStart)
	}
}

func TestExecute_AdjustmentOn(t *testing.T) {
	raw := time.Date(2024, 6, 19, 19, 10, 0, 0, time.UTC)
	duration := 10 * time.Minute
	records := run(t, []pipeline.VideoRecord{
		{Path: "a.mp4", RawCreationTime: &raw, Duration: &duration},
	}, true)

	want := raw.Add(-duration)
	if records[0].EffectiveStart == nil {
		t.Fatal("expected effective start to be set")
	}
	if !records[0].EffectiveStart.Equal(want) {
		t.Errorf("expected start %s, got %s", want, records[0].EffectiveStart)
	}
	end := records[0].EffectiveEnd()
	if end == nil || !end.Equal(raw) {
		t.Errorf("expected end to equal the raw (close) time %s, got %v", raw, end)
	}
}

func TestExecute_SoftFailures(t *testing.T) {
	raw := time.Date(2024, 6, 19, 19, 10, 0, 0, time.UTC)

	tests := []struct {
		name   string
		record pipeline.VideoRecord
		adjust bool
	}{
		{
			name:   "no raw creation time",
			record: pipeline.VideoRecord{Path: "a.mp4"},
			adjust: false,
		},
		{
			name:   "adjustment without duration",
			record: pipeline.VideoRecord{Path: "b.mp4", RawCreationTime: &raw},
			adjust: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := run(t, []pipeline.VideoRecord{tt.record}, tt.adjust)
			if records[0].EffectiveStart != nil {
				t.Errorf("expected effective start to stay unset, got %s", records[0].EffectiveStart)
			}
		})
	}
}

func TestExecute_DoesNotMutateInput(t *testing.T) {
	raw := time.Date(2024, 6, 19, 19, 10, 0, 0, time.UTC)
	duration := 10 * time.Minute
	input := []pipeline.VideoRecord{
		{Path: "a.mp4", RawCreationTime: &raw, Duration: &duration},
	}
	run(t, input, true)
	if input[0].EffectiveStart != nil {
		t.Error("normalize mutated its input catalog")
	}
}
