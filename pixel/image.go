package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

// Image is a mutable image backed by a raw pixel buffer.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the raw pixel values.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// RGB565Image is a 16-bits per pixel 5-6-5-bit RGB image.
type RGB565Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewRGB565Image(w, h int) *RGB565Image {
	return &RGB565Image{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    make([]byte, w*2*h),
			Stride: w * 2,
		},
		Order: binary.BigEndian,
	}
}

// NewRGB565ImageWithStorage is like [NewRGB565Image] but uses pix as backing
// storage, which must hold exactly w*2*h bytes.
func NewRGB565ImageWithStorage(w, h int, pix []byte) *RGB565Image {
	if len(pix) != w*2*h {
		return nil
	}
	return &RGB565Image{
		Buffer: Buffer{
			Rect:   image.Rect(0, 0, w, h),
			Pix:    pix,
			Stride: w * 2,
		},
		Order: binary.BigEndian,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (p *RGB565Image) PixOffset(x, y int) int {
	return x*2 + y*p.Stride
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	v := p.Order.Uint16(p.Pix[p.PixOffset(x, y):])
	return RGB565{v}
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	v := rgb565Model(c).(RGB565).V
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y):], v)
}

func (p *RGB565Image) Fill(c color.Color) {
	value := rgb565Model(c).(RGB565).V
	bytes := make([]byte, 2)
	p.Order.PutUint16(bytes, value)
	for i, l := 0, len(p.Pix); i < l; i += 2 {
		copy(p.Pix[i:], bytes)
	}
}

// Interface checks.
var (
	_ Image = (*RGB565Image)(nil)
)
