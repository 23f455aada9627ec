package ports

import (
	"context"
	"image"
)

// FrameGrabber seeks into a video file and decodes a single frame.
type FrameGrabber interface {
	// Grab decodes the frame at the zero-based index.
	Grab(ctx context.Context, path string, index int64) (image.Image, error)

	// FrameRate returns the file's frames per second.
	FrameRate(ctx context.Context, path string) (float64, error)

	// FrameCount returns the total number of frames in the file.
	// Used to validate and clamp indices before seeking.
	FrameCount(ctx context.Context, path string) (int64, error)
}
