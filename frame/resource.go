package frame

import "github.com/hajimehoshi/ebiten/v2"

// ImageResource is a resource owner holding a GPU image, such as a
// shape's baked texture or an offscreen target. Attach it with
// Graph.SetResourceOwner; the manager deallocates the image once the
// node stops being live and the frame that might draw it is over.
type ImageResource struct {
	image    *ebiten.Image
	released int
}

// NewImageResource wraps img.
func NewImageResource(img *ebiten.Image) *ImageResource {
	return &ImageResource{image: img}
}

// Image returns the wrapped image, or nil after release.
func (r *ImageResource) Image() *ebiten.Image { return r.image }

// Released reports whether the image was deallocated.
func (r *ImageResource) Released() bool { return r.released > 0 }

// ReleaseResources deallocates the image. Later calls do nothing.
func (r *ImageResource) ReleaseResources() {
	if r.image == nil {
		return
	}
	r.image.Deallocate()
	r.image = nil
	r.released++
}
