package listing

import (
	"strings"
	"testing"
	"time"

	"github.com/user/vidseek/pkg/pipeline"
)

func TestText_SortsKnownFirstUnknownLast(t *testing.T) {
	early := time.Date(2024, 6, 19, 9, 0, 0, 0, time.UTC)
	late := time.Date(2024, 6, 19, 19, 0, 0, 0, time.UTC)
	duration := 600 * time.Second

	records := []pipeline.VideoRecord{
		{Path: "/v/unknown.avi", Source: pipeline.TimeSourceNone},
		{Path: "/v/late.mp4", EffectiveStart: &late, Duration: &duration, FrameRate: 30, Source: pipeline.TimeSourceContainer},
		{Path: "/v/early.mp4", EffectiveStart: &early, Duration: &duration, FrameRate: 29.97, Source: pipeline.TimeSourceFilesystem},
	}

	out := Text().Format(records)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "/v/early.mp4") {
		t.Errorf("expected earliest first, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "/v/late.mp4") {
		t.Errorf("expected later clip second, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "/v/unknown.avi") {
		t.Errorf("expected unknown-start record last, got %q", lines[2])
	}
}

func TestText_UnknownFields(t *testing.T) {
	out := Text().Format([]pipeline.VideoRecord{
		{Path: "/v/broken.mp4", Source: pipeline.TimeSourceNone},
	})
	for _, want := range []string{"start=unknown", "duration=unknown", "fps=unknown"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in listing, got %q", want, out)
		}
	}
}

func TestText_FormatsValues(t *testing.T) {
	start := time.Date(2024, 6, 19, 19, 0, 0, 0, time.UTC)
	duration := 600 * time.Second
	out := Text().Format([]pipeline.VideoRecord{
		{Path: "/v/a.mp4", EffectiveStart: &start, Duration: &duration, FrameRate: 30, Source: pipeline.TimeSourceContainer},
	})
	for _, want := range []string{"2024-06-19 19:00:00", "600.0s", "30.00", "source=container"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in listing, got %q", want, out)
		}
	}
}
