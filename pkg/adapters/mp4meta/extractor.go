// Package mp4meta extracts timing metadata from MP4-family containers by
// parsing the moov box directly, without decoding any media.
package mp4meta

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/vidseek/pkg/ports"
)

// mp4Epoch is the QuickTime/MP4 epoch: creation times are stored as seconds
// since 1904-01-01 UTC. A stored value of zero is the well-known "not set"
// sentinel and is reported as an absent creation time.
var mp4Epoch = time.Date(1904, 1, 1, 0, 0, 0, 0, time.UTC)

// Extractor implements ports.MetadataExtractor for MP4-family files.
type Extractor struct{}

// New creates a new Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Supports reports whether the path looks like a container this extractor
// can parse.
func (e *Extractor) Supports(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp4", ".m4v", ".mov":
		return true
	}
	return false
}

// Extract parses the file's moov box and returns its timing metadata.
func (e *Extractor) Extract(ctx context.Context, path string) (ports.ContainerMeta, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.ContainerMeta{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	mp4File, err := mp4.DecodeFile(f)
	if err != nil {
		return ports.ContainerMeta{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil || moov.Mvhd == nil {
		return ports.ContainerMeta{}, fmt.Errorf("no movie header in %s", path)
	}

	return metaFromMoov(moov), nil
}

// metaFromMoov derives ContainerMeta from a parsed moov box.
func metaFromMoov(moov *mp4.MoovBox) ports.ContainerMeta {
	var meta ports.ContainerMeta

	mvhd := moov.Mvhd
	if mvhd.Timescale > 0 && mvhd.Duration > 0 {
		d := time.Duration(float64(mvhd.Duration) / float64(mvhd.Timescale) * float64(time.Second))
		meta.Duration = &d
	}
	if t, ok := creationTime(mvhd.CreationTime); ok {
		meta.CreationTime = &t
	}

	if trak := videoTrak(moov); trak != nil {
		if stbl := sampleTable(trak); stbl != nil && stbl.Stsz != nil {
			meta.FrameCount = int64(stbl.Stsz.SampleNumber)
		}
		mdhd := trak.Mdia.Mdhd
		if meta.FrameCount > 0 && mdhd != nil && mdhd.Timescale > 0 && mdhd.Duration > 0 {
			seconds := float64(mdhd.Duration) / float64(mdhd.Timescale)
			meta.FrameRate = float64(meta.FrameCount) / seconds
		}
	}

	return meta
}

// creationTime converts an MP4 creation timestamp to wall-clock time.
// The zero sentinel yields ok=false.
func creationTime(since1904 uint64) (time.Time, bool) {
	if since1904 == 0 {
		return time.Time{}, false
	}
	return mp4Epoch.Add(time.Duration(since1904) * time.Second), true
}

// videoTrak returns the first track with a "vide" handler, or nil.
func videoTrak(moov *mp4.MoovBox) *mp4.TrakBox {
	for _, trak := range moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			return trak
		}
	}
	return nil
}

// sampleTable returns the track's stbl box, or nil when any link is missing.
// Fragmented files keep their samples in moof boxes instead; their frame
// count stays unknown here and the frame grabber fills it in later.
func sampleTable(trak *mp4.TrakBox) *mp4.StblBox {
	if trak.Mdia == nil || trak.Mdia.Minf == nil {
		return nil
	}
	return trak.Mdia.Minf.Stbl
}

var _ ports.MetadataExtractor = (*Extractor)(nil)
