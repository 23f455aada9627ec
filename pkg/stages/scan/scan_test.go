package scan

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/user/vidseek/pkg/mocks"
	"github.com/user/vidseek/pkg/pipeline"
	"github.com/user/vidseek/pkg/ports"
)

func TestExecute_FiltersByExtension(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.ListFilesFunc = func(dir string) ([]string, error) {
		return []string{
			"/videos/a.mp4",
			"/videos/b.MOV",
			"/videos/notes.txt",
			"/videos/thumb.jpg",
		}, nil
	}

	meta := mocks.NewMetadataExtractor()
	created := time.Date(2024, 6, 19, 19, 0, 0, 0, time.UTC)
	duration := 10 * time.Minute
	for _, path := range []string{"/videos/a.mp4", "/videos/b.MOV"} {
		meta.Meta[path] = ports.ContainerMeta{
			CreationTime: &created,
			Duration:     &duration,
			FrameRate:    30,
		}
	}

	stage := New(fs, meta, nil, mocks.NewLogger())
	result, err := stage.Execute(context.Background(), pipeline.ScanInput{Dir: "/videos"})
	if err != nil {
		t.Fatalf("scan: unexpected error: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(result.Records))
	}
	for _, rec := range result.Records {
		if rec.Source != pipeline.TimeSourceContainer {
			t.Errorf("%s: expected container time source, got %s", rec.Path, rec.Source)
		}
		if rec.Duration == nil || *rec.Duration != duration {
			t.Errorf("%s: duration not carried over", rec.Path)
		}
	}
}

func TestExecute_MetadataFailureKeepsRecord(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.ListFilesFunc = func(dir string) ([]string, error) {
		return []string{"/videos/broken.mp4", "/videos/ok.mp4"}, nil
	}
	mtime := time.Date(2024, 6, 19, 18, 0, 0, 0, time.UTC)
	fs.SetModTime("/videos/broken.mp4", mtime)

	meta := mocks.NewMetadataExtractor()
	meta.Errs["/videos/broken.mp4"] = errors.New("moov box missing")
	created := time.Date(2024, 6, 19, 19, 0, 0, 0, time.UTC)
	duration := time.Minute
	meta.Meta["/videos/ok.mp4"] = ports.ContainerMeta{
		CreationTime: &created,
		Duration:     &duration,
		FrameRate:    25,
	}

	logger := mocks.NewLogger()
	stage := New(fs, meta, nil, logger)
	result, err := stage.Execute(context.Background(), pipeline.ScanInput{Dir: "/videos"})
	if err != nil {
		t.Fatalf("scan: unexpected error: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("broken file must stay in the catalog; got %d records", len(result.Records))
	}
	if len(logger.WarnMsgs) == 0 {
		t.Error("expected a warning for the broken file")
	}

	for _, rec := range result.Records {
		switch rec.Path {
		case "/videos/broken.mp4":
			if rec.Duration != nil {
				t.Error("broken record should have unknown duration")
			}
			if rec.Source != pipeline.TimeSourceFilesystem {
				t.Errorf("expected filesystem fallback, got %s", rec.Source)
			}
			if rec.RawCreationTime == nil || !rec.RawCreationTime.Equal(mtime) {
				t.Errorf("expected mtime fallback %s, got %v", mtime, rec.RawCreationTime)
			}
		case "/videos/ok.mp4":
			if rec.Source != pipeline.TimeSourceContainer {
				t.Errorf("expected container source, got %s", rec.Source)
			}
		}
	}
}

func TestExecute_NoTimestampAnywhere(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.ListFilesFunc = func(dir string) ([]string, error) {
		return []string{"/videos/ghost.mp4"}, nil
	}
	// No mod time registered: the stat fallback fails too.

	meta := mocks.NewMetadataExtractor()
	meta.Errs["/videos/ghost.mp4"] = errors.New("unreadable")

	stage := New(fs, meta, nil, mocks.NewLogger())
	result, err := stage.Execute(context.Background(), pipeline.ScanInput{Dir: "/videos"})
	if err != nil {
		t.Fatalf("scan: unexpected error: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result.Records))
	}
	rec := result.Records[0]
	if rec.RawCreationTime != nil || rec.Source != pipeline.TimeSourceNone {
		t.Errorf("expected record with no timestamp, got source %s", rec.Source)
	}
}

func TestExecute_DecoderBackfillsFrameInfo(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.ListFilesFunc = func(dir string) ([]string, error) {
		return []string{"/videos/fragmented.mp4"}, nil
	}

	// Fragmented MP4: the container carries timing but no sample table, so
	// the extractor reports neither frame rate nor count.
	meta := mocks.NewMetadataExtractor()
	created := time.Date(2024, 6, 19, 19, 0, 0, 0, time.UTC)
	duration := 10 * time.Minute
	meta.Meta["/videos/fragmented.mp4"] = ports.ContainerMeta{
		CreationTime: &created,
		Duration:     &duration,
	}

	grabber := mocks.NewFrameGrabber()
	grabber.Rate = 29.97
	grabber.Count = 17982

	stage := New(fs, meta, grabber, mocks.NewLogger())
	result, err := stage.Execute(context.Background(), pipeline.ScanInput{Dir: "/videos"})
	if err != nil {
		t.Fatalf("scan: unexpected error: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result.Records))
	}
	rec := result.Records[0]
	if rec.FrameRate != 29.97 {
		t.Errorf("expected decoder frame rate 29.97, got %f", rec.FrameRate)
	}
	if rec.FrameCount != 17982 {
		t.Errorf("expected decoder frame count 17982, got %d", rec.FrameCount)
	}
	if !rec.Eligible() {
		t.Error("record with known interval and decoder frame rate must be eligible")
	}
}

func TestExecute_ExtractorFrameInfoWins(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.ListFilesFunc = func(dir string) ([]string, error) {
		return []string{"/videos/a.mp4"}, nil
	}

	meta := mocks.NewMetadataExtractor()
	created := time.Date(2024, 6, 19, 19, 0, 0, 0, time.UTC)
	duration := 10 * time.Minute
	meta.Meta["/videos/a.mp4"] = ports.ContainerMeta{
		CreationTime: &created,
		Duration:     &duration,
		FrameRate:    30,
		FrameCount:   18000,
	}

	grabber := mocks.NewFrameGrabber()
	grabber.Rate = 25
	grabber.Count = 15000

	stage := New(fs, meta, grabber, mocks.NewLogger())
	result, err := stage.Execute(context.Background(), pipeline.ScanInput{Dir: "/videos"})
	if err != nil {
		t.Fatalf("scan: unexpected error: %v", err)
	}
	rec := result.Records[0]
	if rec.FrameRate != 30 || rec.FrameCount != 18000 {
		t.Errorf("container metadata must not be overwritten, got %f/%d", rec.FrameRate, rec.FrameCount)
	}
}

func TestExecute_UnreadableDirectoryFails(t *testing.T) {
	fs := mocks.NewFileSystem()
	fs.ListFilesFunc = func(dir string) ([]string, error) {
		return nil, errors.New("permission denied")
	}

	stage := New(fs, mocks.NewMetadataExtractor(), nil, mocks.NewLogger())
	_, err := stage.Execute(context.Background(), pipeline.ScanInput{Dir: "/videos"})
	if err == nil {
		t.Fatal("expected an error for an unreadable directory")
	}
}
