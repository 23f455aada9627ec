// Package ffprobemeta extracts timing metadata by shelling out to ffprobe.
// It covers the container formats the native MP4 parser cannot read
// (AVI, MKV, FLV, WMV and friends).
package ffprobemeta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/user/vidseek/pkg/ports"
)

// DefaultBinary is the ffprobe executable looked up on PATH.
const DefaultBinary = "ffprobe"

// Extractor implements ports.MetadataExtractor using the ffprobe CLI.
type Extractor struct {
	binary string
}

// New creates an Extractor using the default ffprobe binary.
func New() *Extractor {
	return NewWithBinary(DefaultBinary)
}

// NewWithBinary creates an Extractor with a custom ffprobe path.
func NewWithBinary(binary string) *Extractor {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Extractor{binary: binary}
}

// Extract probes the file and returns its timing metadata.
func (e *Extractor) Extract(ctx context.Context, path string) (ports.ContainerMeta, error) {
	cmd := exec.CommandContext(ctx, e.binary,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=r_frame_rate,avg_frame_rate,nb_frames,duration:stream_tags=creation_time",
		"-show_entries", "format=duration:format_tags=creation_time",
		"-of", "json",
		path,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return ports.ContainerMeta{}, fmt.Errorf("ffprobe %s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
	}

	var probe probeOutput
	if err := json.Unmarshal(stdout.Bytes(), &probe); err != nil {
		return ports.ContainerMeta{}, fmt.Errorf("parse ffprobe output: %w", err)
	}
	return probe.meta(), nil
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	RFrameRate   string            `json:"r_frame_rate"`
	AvgFrameRate string            `json:"avg_frame_rate"`
	NbFrames     string            `json:"nb_frames"`
	Duration     string            `json:"duration"`
	Tags         map[string]string `json:"tags"`
}

type probeFormat struct {
	Duration string            `json:"duration"`
	Tags     map[string]string `json:"tags"`
}

// meta converts the raw probe fields into ContainerMeta. Stream-level values
// win over format-level ones; every field is optional.
func (p probeOutput) meta() ports.ContainerMeta {
	var meta ports.ContainerMeta

	var stream probeStream
	if len(p.Streams) > 0 {
		stream = p.Streams[0]
	}

	if d, ok := parseSeconds(stream.Duration); ok {
		meta.Duration = &d
	} else if d, ok := parseSeconds(p.Format.Duration); ok {
		meta.Duration = &d
	}

	// avg_frame_rate reflects actual samples; r_frame_rate is the nominal
	// rate and serves as the fallback.
	if fps, ok := parseRational(stream.AvgFrameRate); ok {
		meta.FrameRate = fps
	} else if fps, ok := parseRational(stream.RFrameRate); ok {
		meta.FrameRate = fps
	}

	if n, err := strconv.ParseInt(stream.NbFrames, 10, 64); err == nil && n > 0 {
		meta.FrameCount = n
	}

	if t, ok := parseCreationTime(stream.Tags["creation_time"]); ok {
		meta.CreationTime = &t
	} else if t, ok := parseCreationTime(p.Format.Tags["creation_time"]); ok {
		meta.CreationTime = &t
	}

	return meta
}

// parseRational parses ffprobe rationals like "30000/1001" or "25/1".
func parseRational(s string) (float64, bool) {
	if s == "" || s == "0/0" {
		return 0, false
	}
	num, den, found := strings.Cut(s, "/")
	if !found {
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil && f > 0
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, false
	}
	fps := n / d
	if fps <= 0 || math.IsInf(fps, 0) || math.IsNaN(fps) {
		return 0, false
	}
	return fps, true
}

func parseSeconds(s string) (time.Duration, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return time.Duration(f * float64(time.Second)), true
}

// parseCreationTime parses the creation_time tag, which ffprobe emits in a
// handful of near-ISO layouts.
func parseCreationTime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05.000000Z",
		"2006-01-02 15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var _ ports.MetadataExtractor = (*Extractor)(nil)
