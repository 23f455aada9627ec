package mocks

import (
	"context"
	"image"

	"github.com/user/vidseek/pkg/ports"
)

// FrameGrabber is a mock implementation of ports.FrameGrabber.
type FrameGrabber struct {
	Img     image.Image
	Rate    float64
	Count   int64
	Err     error
	Grabs   []int64 // indices requested, in order
	Grabbed string  // last path requested

	GrabFunc func(ctx context.Context, path string, index int64) (image.Image, error)
}

// NewFrameGrabber creates a mock grabber returning a 1x1 image.
func NewFrameGrabber() *FrameGrabber {
	return &FrameGrabber{
		Img:  image.NewRGBA(image.Rect(0, 0, 1, 1)),
		Rate: 30,
	}
}

func (m *FrameGrabber) Grab(ctx context.Context, path string, index int64) (image.Image, error) {
	m.Grabs = append(m.Grabs, index)
	m.Grabbed = path
	if m.GrabFunc != nil {
		return m.GrabFunc(ctx, path, index)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Img, nil
}

func (m *FrameGrabber) FrameRate(ctx context.Context, path string) (float64, error) {
	return m.Rate, nil
}

func (m *FrameGrabber) FrameCount(ctx context.Context, path string) (int64, error) {
	return m.Count, nil
}

var _ ports.FrameGrabber = (*FrameGrabber)(nil)
