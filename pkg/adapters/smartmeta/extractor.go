// Package smartmeta provides a metadata extractor that picks the right
// backend per file: the native MP4 parser for MP4-family containers, with
// ffprobe as the fallback and as the handler for everything else.
package smartmeta

import (
	"context"

	"github.com/user/vidseek/pkg/adapters/ffprobemeta"
	"github.com/user/vidseek/pkg/adapters/mp4meta"
	"github.com/user/vidseek/pkg/ports"
)

// Extractor implements ports.MetadataExtractor by delegation.
type Extractor struct {
	mp4    *mp4meta.Extractor
	probe  *ffprobemeta.Extractor
	logger ports.Logger
}

// New creates a new Extractor.
func New(probe *ffprobemeta.Extractor, logger ports.Logger) *Extractor {
	return &Extractor{
		mp4:    mp4meta.New(),
		probe:  probe,
		logger: logger.WithComponent("meta"),
	}
}

// Extract tries the native parser first for MP4-family paths; any parse
// failure falls through to ffprobe, which also handles the other formats.
func (e *Extractor) Extract(ctx context.Context, path string) (ports.ContainerMeta, error) {
	if e.mp4.Supports(path) {
		meta, err := e.mp4.Extract(ctx, path)
		if err == nil {
			return meta, nil
		}
		e.logger.Debug("Native MP4 parse of %s failed, trying ffprobe: %s", path, err)
	}
	return e.probe.Extract(ctx, path)
}

var _ ports.MetadataExtractor = (*Extractor)(nil)
