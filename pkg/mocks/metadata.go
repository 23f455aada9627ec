package mocks

import (
	"context"
	"fmt"

	"github.com/user/vidseek/pkg/ports"
)

// MetadataExtractor is a mock implementation of ports.MetadataExtractor.
type MetadataExtractor struct {
	Meta map[string]ports.ContainerMeta
	Errs map[string]error

	ExtractFunc func(ctx context.Context, path string) (ports.ContainerMeta, error)
}

// NewMetadataExtractor creates a new mock MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{
		Meta: make(map[string]ports.ContainerMeta),
		Errs: make(map[string]error),
	}
}

func (m *MetadataExtractor) Extract(ctx context.Context, path string) (ports.ContainerMeta, error) {
	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, path)
	}
	if err, ok := m.Errs[path]; ok {
		return ports.ContainerMeta{}, err
	}
	if meta, ok := m.Meta[path]; ok {
		return meta, nil
	}
	return ports.ContainerMeta{}, fmt.Errorf("no metadata registered for %s", path)
}

var _ ports.MetadataExtractor = (*MetadataExtractor)(nil)
