// Package nullsink provides an artifact sink that discards everything.
package nullsink

import (
	"image"

	"github.com/user/vidseek/pkg/ports"
)

// Sink discards all artifacts.
type Sink struct{}

// New creates a new null sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as nothing is stored.
func (s *Sink) Enabled() bool {
	return false
}

// SaveCatalogJSON discards the data.
func (s *Sink) SaveCatalogJSON(data []byte) error {
	return nil
}

// SaveResolutionJSON discards the data.
func (s *Sink) SaveResolutionJSON(data []byte) error {
	return nil
}

// SaveFrame discards the frame.
func (s *Sink) SaveFrame(name string, img image.Image) error {
	return nil
}

var _ ports.ArtifactSink = (*Sink)(nil)
