package grab

import (
	"context"
	"errors"
	"testing"

	"github.com/user/vidseek/pkg/mocks"
	"github.com/user/vidseek/pkg/pipeline"
)

func TestExecute_GrabsRequestedFrame(t *testing.T) {
	grabber := mocks.NewFrameGrabber()
	stage := New(grabber, mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.GrabInput{
		Record:     pipeline.VideoRecord{Path: "/videos/a.mp4"},
		FrameIndex: 42,
	})
	if err != nil {
		t.Fatalf("grab: unexpected error: %v", err)
	}
	if result.FrameIndex != 42 {
		t.Errorf("expected frame 42, got %d", result.FrameIndex)
	}
	if result.Image == nil {
		t.Error("expected a decoded image")
	}
	if grabber.Grabbed != "/videos/a.mp4" {
		t.Errorf("grabbed wrong file: %s", grabber.Grabbed)
	}
}

func TestExecute_ReclampsAgainstDecoderCount(t *testing.T) {
	grabber := mocks.NewFrameGrabber()
	grabber.Count = 100
	stage := New(grabber, mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.GrabInput{
		Record:     pipeline.VideoRecord{Path: "/videos/a.mp4"},
		FrameIndex: 500,
	})
	if err != nil {
		t.Fatalf("grab: unexpected error: %v", err)
	}
	if result.FrameIndex != 99 {
		t.Errorf("expected re-clamped frame 99, got %d", result.FrameIndex)
	}
}

func TestExecute_DecodeErrorSurfaced(t *testing.T) {
	grabber := mocks.NewFrameGrabber()
	grabber.Err = errors.New("file became unreadable")
	stage := New(grabber, mocks.NewLogger())

	_, err := stage.Execute(context.Background(), pipeline.GrabInput{
		Record:     pipeline.VideoRecord{Path: "/videos/a.mp4"},
		FrameIndex: 0,
	})
	if err == nil {
		t.Fatal("expected the decode error to surface")
	}
	if len(grabber.Grabs) != 1 {
		t.Errorf("expected exactly one grab attempt (no retries), got %d", len(grabber.Grabs))
	}
}
