package ports

import (
	"context"
	"time"
)

// ContainerMeta is everything a metadata extractor can learn about a video
// file without decoding any frames. Pointer fields are nil when the container
// does not carry the value.
type ContainerMeta struct {
	// CreationTime is the recording timestamp stored in the container.
	// Whether it marks the start or the end of the recording depends on the
	// camera; the normalizer decides how to interpret it.
	CreationTime *time.Time

	// Duration is the total playback time.
	Duration *time.Duration

	// FrameRate is the average frames per second, 0 when unknown.
	FrameRate float64

	// FrameCount is the number of video samples, 0 when unknown.
	FrameCount int64
}

// MetadataExtractor reads timing metadata from a video container.
type MetadataExtractor interface {
	// Extract parses the file at path and returns its container metadata.
	// A file that cannot be parsed returns an error; callers are expected
	// to treat that as non-fatal for the file's catalog entry.
	Extract(ctx context.Context, path string) (ContainerMeta, error)
}
