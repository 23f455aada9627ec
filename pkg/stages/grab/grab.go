// Package grab implements the frame materialization stage.
package grab

import (
	"context"
	"fmt"

	"github.com/user/vidseek/pkg/pipeline"
	"github.com/user/vidseek/pkg/ports"
)

// Stage decodes the resolved frame from its file.
type Stage struct {
	grabber ports.FrameGrabber
	logger  ports.Logger
}

// New creates a new grab stage.
func New(grabber ports.FrameGrabber, logger ports.Logger) *Stage {
	return &Stage{
		grabber: grabber,
		logger:  logger.WithComponent("grab"),
	}
}

// Execute decodes the frame at input.FrameIndex. The index is re-clamped
// against the decoder's own frame count first; container metadata and the
// actual file can disagree.
func (s *Stage) Execute(ctx context.Context, input pipeline.GrabInput) (pipeline.GrabResult, error) {
	index := input.FrameIndex

	if count, err := s.grabber.FrameCount(ctx, input.Record.Path); err == nil && count > 0 {
		if index > count-1 {
			s.logger.Debug("Clamping frame %d to decoder count %d", index, count)
			index = count - 1
		}
	}
	if index < 0 {
		index = 0
	}

	img, err := s.grabber.Grab(ctx, input.Record.Path, index)
	if err != nil {
		return pipeline.GrabResult{}, fmt.Errorf("grab frame %d from %s: %w", index, input.Record.Path, err)
	}
	return pipeline.GrabResult{Image: img, FrameIndex: index}, nil
}

var _ pipeline.Stage[pipeline.GrabInput, pipeline.GrabResult] = (*Stage)(nil)
