package st7789v

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/KaidRommel/atk-md0240/pixel"
)

// Framebuffer is an in-memory copy of the panel's frame, 2 bytes per pixel in
// row-major order, big-endian 5-6-5 RGB. It is mutated by the caller and
// streamed to controller memory with [Device.FlushFrame].
//
// The rotation field only changes how coordinates map to buffer offsets for
// subsequent writes; it never transforms existing buffer contents. Only
// [NoRotation] has an implemented coordinate mapping: pixel access under any
// other rotation fails with [ErrRotation] instead of corrupting the buffer.
type Framebuffer struct {
	img      *pixel.RGB565Image
	rotation Rotation
}

// NewFramebuffer allocates a full-frame buffer filled with the given color.
func NewFramebuffer(c pixel.RGB565) *Framebuffer {
	fb := &Framebuffer{
		img: pixel.NewRGB565Image(Width, Height),
	}
	fb.img.Fill(c)
	return fb
}

// NewFramebufferWithStorage is like [NewFramebuffer] but uses pix as backing
// storage. The storage must hold exactly [FrameSize] bytes or ErrBufferSize
// is returned.
func NewFramebufferWithStorage(pix []byte, c pixel.RGB565) (*Framebuffer, error) {
	img := pixel.NewRGB565ImageWithStorage(Width, Height, pix)
	if img == nil {
		return nil, ErrBufferSize
	}
	img.Fill(c)
	return &Framebuffer{img: img}, nil
}

// Clear overwrites every pixel with the given color.
func (fb *Framebuffer) Clear(c pixel.RGB565) {
	fb.img.Fill(c)
}

// PixOffset returns the buffer offset of the first byte of the pixel at
// (x, y) under the current rotation.
func (fb *Framebuffer) PixOffset(x, y int) (int, error) {
	switch fb.rotation {
	case NoRotation:
		return (y*Width + x) * 2, nil
	default:
		return 0, ErrRotation
	}
}

// SetPixel sets the pixel at (x, y) under the current rotation. Coordinates
// outside the panel are ignored.
func (fb *Framebuffer) SetPixel(x, y int, c pixel.RGB565) error {
	if _, err := fb.PixOffset(x, y); err != nil {
		return err
	}
	fb.img.Set(x, y, c)
	return nil
}

// At returns the color of the pixel at (x, y) under the current rotation.
func (fb *Framebuffer) At(x, y int) (pixel.RGB565, error) {
	if _, err := fb.PixOffset(x, y); err != nil {
		return pixel.RGB565{}, err
	}
	c, _ := fb.img.At(x, y).(pixel.RGB565)
	return c, nil
}

// Size reports the logical panel dimensions: width and height are swapped
// under Rotate90 and Rotate270.
func (fb *Framebuffer) Size() (w, h int) {
	switch fb.rotation {
	case Rotate90, Rotate270:
		return Height, Width
	default:
		return Width, Height
	}
}

// Rotation returns the current rotation.
func (fb *Framebuffer) Rotation() Rotation {
	return fb.rotation
}

// SetRotation changes the coordinate mapping for subsequent pixel access.
// Existing buffer contents are not transformed.
func (fb *Framebuffer) SetRotation(rotation Rotation) {
	fb.rotation = rotation
}

// Pix exposes the raw pixel buffer. The device borrows it for the duration of
// a frame flush.
func (fb *Framebuffer) Pix() []byte {
	return fb.img.Pix
}

// TextStyle selects the glyph face and foreground color for [Framebuffer.DrawText].
type TextStyle struct {
	// Face is the glyph source. A nil Face selects [basicfont.Face7x13].
	Face font.Face

	// Color is the foreground color. Background pixels are left untouched.
	Color pixel.RGB565
}

// DrawText rasterizes text with its baseline origin at (x, y). Glyph coverage
// comes from the style's font face; covered pixels are blended over the
// current buffer contents.
func (fb *Framebuffer) DrawText(x, y int, text string, style TextStyle) error {
	if fb.rotation != NoRotation {
		return ErrRotation
	}
	face := style.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	d := font.Drawer{
		Dst:  fb.img,
		Src:  image.NewUniform(style.Color),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
	return nil
}

// DrawTextDefault draws text in the default face and black foreground.
func (fb *Framebuffer) DrawTextDefault(x, y int, text string) error {
	return fb.DrawText(x, y, text, TextStyle{Color: pixel.Black})
}
