// Package pixel implements the color and image types matching the wire
// format of the ATK-MD0240 panel: 16-bit 5/6/5-bit RGB, 2 bytes per pixel.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces.
package pixel
