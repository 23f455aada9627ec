package ports

import "image"

// FrameViewer presents a resolved frame to the user.
type FrameViewer interface {
	// Show displays the image in a window with the given title and blocks
	// until the user closes it.
	Show(img image.Image, title string) error
}
