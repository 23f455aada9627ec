// Package fyneviewer displays frames in a desktop window using Fyne.
package fyneviewer

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/user/vidseek/pkg/ports"
)

// Viewer implements ports.FrameViewer with a Fyne window.
type Viewer struct{}

// New creates a new Viewer.
func New() *Viewer {
	return &Viewer{}
}

// Show opens a window sized to the frame and blocks until it is closed.
// Must be called from the main goroutine; Fyne owns the event loop while
// the window is open.
func (v *Viewer) Show(img image.Image, title string) error {
	a := app.New()
	w := a.NewWindow(title)

	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain

	bounds := img.Bounds()
	w.Resize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy())))
	w.SetContent(ci)
	w.ShowAndRun()
	return nil
}

var _ ports.FrameViewer = (*Viewer)(nil)
