package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestRGB565Image(t *testing.T) {
	testCases := []image.Point{
		image.Point{},
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(240, 32),
		image.Pt(240, 320),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewRGB565Image(test.X, test.Y)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != RGB565Model {
				it.Errorf("expected color model %T, got %T", RGB565Model, v)
			}

			if len(i.Pix) != test.X*test.Y*2 {
				it.Errorf("expected %d pixel bytes, got %d", test.X*test.Y*2, len(i.Pix))
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := RGB565Model.Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := RGB565Model.Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						return
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.At(x, y); v != Black {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func TestRGB565ImageByteOrder(t *testing.T) {
	i := NewRGB565Image(2, 1)
	i.Set(0, 0, RGB565{0xF800})
	if i.Pix[0] != 0xF8 || i.Pix[1] != 0x00 {
		t.Errorf("expected big-endian bytes f8 00, got %02x %02x", i.Pix[0], i.Pix[1])
	}

	i.Order = binary.LittleEndian
	i.Set(1, 0, RGB565{0xF800})
	if i.Pix[2] != 0x00 || i.Pix[3] != 0xF8 {
		t.Errorf("expected little-endian bytes 00 f8, got %02x %02x", i.Pix[2], i.Pix[3])
	}
}

func TestRGB565ImageWithStorage(t *testing.T) {
	pix := make([]byte, 4*2*2)
	if i := NewRGB565ImageWithStorage(4, 2, pix); i == nil {
		t.Fatal("expected image with matching storage")
	}
	if i := NewRGB565ImageWithStorage(4, 2, pix[:7]); i != nil {
		t.Fatal("expected nil image with short storage")
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
