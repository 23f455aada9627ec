// Package ffmpeggrabber seeks and decodes single frames by shelling out to
// ffmpeg. The select filter addresses frames by index, matching the
// resolver's zero-based frame numbering exactly.
package ffmpeggrabber

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math"
	"os/exec"
	"strings"

	"github.com/user/vidseek/pkg/adapters/ffprobemeta"
	"github.com/user/vidseek/pkg/ports"
)

// DefaultBinary is the ffmpeg executable looked up on PATH.
const DefaultBinary = "ffmpeg"

// Grabber implements ports.FrameGrabber using the ffmpeg CLI, with ffprobe
// supplying frame rate and count.
type Grabber struct {
	binary string
	probe  *ffprobemeta.Extractor
}

// New creates a Grabber using the default ffmpeg/ffprobe binaries.
func New() *Grabber {
	return NewWithBinaries(DefaultBinary, "")
}

// NewWithBinaries creates a Grabber with custom ffmpeg and ffprobe paths.
func NewWithBinaries(ffmpeg, ffprobe string) *Grabber {
	if ffmpeg == "" {
		ffmpeg = DefaultBinary
	}
	return &Grabber{
		binary: ffmpeg,
		probe:  ffprobemeta.NewWithBinary(ffprobe),
	}
}

// Grab decodes the frame at the zero-based index as PNG via stdout.
func (g *Grabber) Grab(ctx context.Context, path string, index int64) (image.Image, error) {
	cmd := exec.CommandContext(ctx, g.binary,
		"-v", "error",
		"-i", path,
		"-vf", fmt.Sprintf("select=eq(n\\,%d)", index),
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"pipe:1",
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg %s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("ffmpeg produced no frame for index %d of %s", index, path)
	}

	img, err := png.Decode(&stdout)
	if err != nil {
		return nil, fmt.Errorf("decode frame %d of %s: %w", index, path, err)
	}
	return img, nil
}

// FrameRate returns the file's frames per second via ffprobe.
func (g *Grabber) FrameRate(ctx context.Context, path string) (float64, error) {
	meta, err := g.probe.Extract(ctx, path)
	if err != nil {
		return 0, err
	}
	if meta.FrameRate <= 0 {
		return 0, fmt.Errorf("no frame rate reported for %s", path)
	}
	return meta.FrameRate, nil
}

// FrameCount returns the total frame count via ffprobe. Containers that
// don't carry nb_frames fall back to floor(duration * fps).
func (g *Grabber) FrameCount(ctx context.Context, path string) (int64, error) {
	meta, err := g.probe.Extract(ctx, path)
	if err != nil {
		return 0, err
	}
	if meta.FrameCount > 0 {
		return meta.FrameCount, nil
	}
	if meta.Duration != nil && meta.FrameRate > 0 {
		return int64(math.Floor(meta.Duration.Seconds() * meta.FrameRate)), nil
	}
	return 0, fmt.Errorf("no frame count available for %s", path)
}

var _ ports.FrameGrabber = (*Grabber)(nil)
