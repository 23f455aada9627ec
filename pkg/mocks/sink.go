package mocks

import (
	"image"

	"github.com/user/vidseek/pkg/ports"
)

// ArtifactSink records saved artifacts for test verification.
type ArtifactSink struct {
	CatalogJSON    [][]byte
	ResolutionJSON [][]byte
	Frames         map[string]image.Image
	On             bool
}

// NewArtifactSink creates a new enabled mock sink.
func NewArtifactSink() *ArtifactSink {
	return &ArtifactSink{
		Frames: make(map[string]image.Image),
		On:     true,
	}
}

func (m *ArtifactSink) Enabled() bool {
	return m.On
}

func (m *ArtifactSink) SaveCatalogJSON(data []byte) error {
	m.CatalogJSON = append(m.CatalogJSON, data)
	return nil
}

func (m *ArtifactSink) SaveResolutionJSON(data []byte) error {
	m.ResolutionJSON = append(m.ResolutionJSON, data)
	return nil
}

func (m *ArtifactSink) SaveFrame(name string, img image.Image) error {
	m.Frames[name] = img
	return nil
}

var _ ports.ArtifactSink = (*ArtifactSink)(nil)
