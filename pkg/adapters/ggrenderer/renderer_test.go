package ggrenderer

import (
	"image"
	"image/color"
	"testing"

	"github.com/user/vidseek/pkg/ports"
)

func TestEncodeDecodePNG(t *testing.T) {
	r := New()
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 40), B: 128, A: 255})
		}
	}

	data, err := r.EncodeImage(src, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := r.DecodeImage(data, ports.FormatPNG)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != src.Bounds() {
		t.Errorf("bounds changed: %v -> %v", src.Bounds(), decoded.Bounds())
	}
}

func TestResizeImage(t *testing.T) {
	r := New()
	src := image.NewRGBA(image.Rect(0, 0, 100, 80))
	dst := r.ResizeImage(src, 50, 40)
	if dst.Bounds().Dx() != 50 || dst.Bounds().Dy() != 40 {
		t.Errorf("expected 50x40, got %dx%d", dst.Bounds().Dx(), dst.Bounds().Dy())
	}
}

func TestCanvasCaptionStrip(t *testing.T) {
	r := New()
	base := image.NewRGBA(image.Rect(0, 0, 64, 48))

	canvas := r.CreateCanvas(64, 48, color.White)
	canvas.DrawImage(base, 0, 0)
	canvas.DrawRect(0, 36, 64, 12, color.Black)
	canvas.DrawText("19:00:00", 2, 46, ports.TextStyle{FontSize: 10, Color: color.White})

	out := canvas.ToImage()
	if out.Bounds().Dx() != 64 || out.Bounds().Dy() != 48 {
		t.Fatalf("unexpected canvas size %v", out.Bounds())
	}
	// The strip must actually darken the bottom rows; sample to the right
	// of the drawn text.
	red, g, b, _ := out.At(62, 42).RGBA()
	if red > 0x2000 && g > 0x2000 && b > 0x2000 {
		t.Error("expected a dark caption strip at the bottom")
	}
}
