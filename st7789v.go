// Package st7789v drives the ATK-MD0240 2.4″ LCD board, built around a
// Sitronix ST7789V single-chip 262K-color controller at a fixed 240x320
// resolution.
//
// The controller is connected over SPI with three additional control lines: a
// data/command select line (low for commands, high for parameters and pixel
// data), a hardware reset line and a power-enable line. All protocol
// exchanges are write-only; the driver never reads controller state back.
//
// The driver is fully synchronous and single-threaded. A device instance owns
// the bus and all three control lines exclusively; callers that need
// concurrent access must serialize externally.
package st7789v

import (
	"errors"
	"time"
)

// Panel geometry.
const (
	Width  = 240
	Height = 320

	// FrameSize is the size of one full frame in bytes, 2 bytes per pixel.
	FrameSize = Width * Height * 2
)

// Settle delays.
const (
	settleDelay     = 120 * time.Millisecond // after most commands
	resetPulseDelay = 12 * time.Microsecond  // reset line held low
	powerDelay      = 1 * time.Microsecond   // after toggling power enable
)

// Registers (from st7789v.pdf).
const (
	st7789vNOP     = 0x00
	st7789vSLPIN   = 0x10
	st7789vSLPOUT  = 0x11 // Sleep Out
	st7789vINVOFF  = 0x20
	st7789vINVON   = 0x21 // Display Inversion On
	st7789vDISPOFF = 0x28
	st7789vDISPON  = 0x29 // Display On
	st7789vCASET   = 0x2A // Column Address Set
	st7789vRASET   = 0x2B // Row Address Set
	st7789vRAMWR   = 0x2C // Memory Write
	st7789vMADCTL  = 0x36 // Memory Data Access Control
	st7789vCOLMOD  = 0x3A // Interface Pixel Format
)

// Memory Data Access Control (MADCTL) bit fields.
const (
	_                            byte = 1 << iota // D0: reserved
	_                                             // D1: reserved
	st7789vDisplayDataLatchOrder                  // D2: MH
	st7789vRGBOrder                               // D3: RGB
	st7789vLineAddressOrder                       // D4: ML
	st7789vPageColumnOrder                        // D5: MV
	st7789vColumnAddressOrder                     // D6: MX
	st7789vPageAddressOrder                       // D7: MY
)

// Interface Pixel Format (COLMOD) parameter: 262K RGB interface colors,
// 16-bit control interface pixels.
const st7789vPixelFormat16 = 0x65

// Errors.
var (
	// ErrControlLine is returned when setting one of the GPIO control lines
	// (data/command, reset or power enable) fails.
	ErrControlLine = errors.New("st7789v: control line fault")

	// ErrBusWrite is returned when a bus write or drain fails.
	ErrBusWrite = errors.New("st7789v: bus write fault")

	// ErrRotation is returned when pixel addressing is requested for a
	// rotation mode that has no implemented coordinate mapping.
	ErrRotation = errors.New("st7789v: unsupported rotation")

	// ErrBufferSize is returned when caller-supplied framebuffer storage does
	// not match the required frame size.
	ErrBufferSize = errors.New("st7789v: invalid framebuffer storage size")
)

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// Delay blocks the calling goroutine for the requested duration. It exists so
// the fixed settle delays of the bring-up sequence can be observed in tests;
// production code uses the default [time.Sleep] implementation.
type Delay interface {
	Sleep(d time.Duration)
}

type sleepDelay struct{}

func (sleepDelay) Sleep(d time.Duration) { time.Sleep(d) }
