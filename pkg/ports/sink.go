package ports

import "image"

// ArtifactSink receives the artifacts produced by a seek invocation.
// Implementations may write them to a directory or discard them.
type ArtifactSink interface {
	// Enabled returns true if the sink stores output.
	Enabled() bool

	// SaveCatalogJSON saves the scanned catalog as JSON.
	SaveCatalogJSON(data []byte) error

	// SaveResolutionJSON saves the resolution outcome as JSON.
	SaveResolutionJSON(data []byte) error

	// SaveFrame saves a decoded frame under the given file name.
	SaveFrame(name string, img image.Image) error
}
