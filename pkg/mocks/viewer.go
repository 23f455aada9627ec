package mocks

import (
	"image"

	"github.com/user/vidseek/pkg/ports"
)

// FrameViewer records Show calls for test verification.
type FrameViewer struct {
	Shown  []image.Image
	Titles []string
	Err    error
}

// NewFrameViewer creates a new mock FrameViewer.
func NewFrameViewer() *FrameViewer {
	return &FrameViewer{}
}

func (m *FrameViewer) Show(img image.Image, title string) error {
	m.Shown = append(m.Shown, img)
	m.Titles = append(m.Titles, title)
	return m.Err
}

var _ ports.FrameViewer = (*FrameViewer)(nil)
