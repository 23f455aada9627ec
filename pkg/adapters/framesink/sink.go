// Package framesink provides a file-based artifact sink implementation.
package framesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/vidseek/pkg/ports"
)

// Sink saves seek artifacts under a base directory.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveCatalogJSON saves the scanned catalog as JSON.
func (s *Sink) SaveCatalogJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "catalog.json"), data)
}

// SaveResolutionJSON saves the resolution outcome as JSON.
func (s *Sink) SaveResolutionJSON(data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, "resolution.json"), data)
}

// SaveFrame saves a decoded frame as PNG.
func (s *Sink) SaveFrame(name string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return s.fs.WriteFile(filepath.Join(s.baseDir, name), data)
}

// Ensure Sink implements ports.ArtifactSink
var _ ports.ArtifactSink = (*Sink)(nil)
