package st7789v

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"

	"github.com/KaidRommel/atk-md0240/pixel"
)

// Device is an initialized ATK-MD0240 display.
type Device struct {
	iface *Interface
}

// Init wires the bus transport and drives the controller through the fixed
// bring-up sequence: hardware reset, sleep out, pixel format, display
// inversion on, display on, memory access control defaults, power enable.
// Each step is followed by a fixed settle delay. On return the controller is
// powered and displaying.
//
// A nil delay selects real blocking sleeps.
func Init(bus Bus, rst, dc, pwr gpio.PinOut, delay Delay) (*Device, error) {
	d := &Device{
		iface: NewInterface(bus, rst, dc, pwr, delay),
	}

	if err := d.iface.Reset(); err != nil {
		return nil, err
	}
	if err := d.SleepOut(); err != nil {
		return nil, err
	}
	if err := d.SetPixelFormat(st7789vPixelFormat16); err != nil {
		return nil, err
	}
	d.iface.delay.Sleep(settleDelay)
	if err := d.InversionOn(); err != nil {
		return nil, err
	}
	if err := d.DisplayOn(); err != nil {
		return nil, err
	}
	// Defaults: top to bottom, left to right, RGB order.
	if err := d.SetMemoryAccessControl(0x00); err != nil {
		return nil, err
	}
	d.iface.delay.Sleep(settleDelay)
	if err := d.iface.PowerOn(); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Device) String() string {
	return fmt.Sprintf("ST7789V %dx%d", Width, Height)
}

// command sends a command byte followed by its parameter bytes, if any.
func (d *Device) command(command byte, data ...byte) error {
	if err := d.iface.Command(command); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	return d.iface.Data(data...)
}

// SleepOut turns off sleep mode.
func (d *Device) SleepOut() error {
	if err := d.iface.Command(st7789vSLPOUT); err != nil {
		return err
	}
	d.iface.delay.Sleep(settleDelay)
	return nil
}

// InversionOn enables display inversion mode.
func (d *Device) InversionOn() error {
	if err := d.iface.Command(st7789vINVON); err != nil {
		return err
	}
	d.iface.delay.Sleep(settleDelay)
	return nil
}

// DisplayOn recovers from display-off mode.
func (d *Device) DisplayOn() error {
	if err := d.iface.Command(st7789vDISPON); err != nil {
		return err
	}
	d.iface.delay.Sleep(settleDelay)
	return nil
}

// SetMemoryAccessControl programs the MADCTL register. The parameter byte
// selects scan direction, page/column order, line refresh direction, RGB or
// BGR color order and data latch order; it is forwarded verbatim.
func (d *Device) SetMemoryAccessControl(param byte) error {
	return d.command(st7789vMADCTL, param)
}

// SetPixelFormat programs the COLMOD register. The high nibble selects the
// RGB interface color format, the low nibble the control interface format;
// the byte is forwarded verbatim.
func (d *Device) SetPixelFormat(param byte) error {
	return d.command(st7789vCOLMOD, param)
}

// SetFrameArea programs the addressable window that the next memory write
// targets. Coordinates are inclusive on both ends. The caller must ensure
// x0 ≤ x1, y0 ≤ y1 and that both are within panel bounds; no check is
// performed here.
func (d *Device) SetFrameArea(x0, y0, x1, y1 uint16) error {
	if err := d.command(st7789vCASET,
		byte(x0>>8), byte(x0),
		byte(x1>>8), byte(x1),
	); err != nil {
		return err
	}
	return d.command(st7789vRASET,
		byte(y0>>8), byte(y0),
		byte(y1>>8), byte(y1),
	)
}

// SetPixel writes a single pixel directly to controller memory through a 1x1
// addressable window. Useful for sparse updates; bulk drawing should mutate a
// [Framebuffer] and call [Device.FlushFrame] instead.
func (d *Device) SetPixel(x, y uint16, c pixel.RGB565) error {
	if err := d.SetFrameArea(x, y, x, y); err != nil {
		return err
	}
	return d.command(st7789vRAMWR, byte(c.V>>8), byte(c.V))
}

// FlushFrame sets the addressable window to the full panel and streams the
// entire framebuffer to controller memory as one data transmission.
func (d *Device) FlushFrame(fb *Framebuffer) error {
	if err := d.SetFrameArea(0, 0, Width-1, Height-1); err != nil {
		return err
	}
	if err := d.iface.Command(st7789vRAMWR); err != nil {
		return err
	}
	return d.iface.Data(fb.Pix()...)
}

// PowerOn raises the power-enable line. Sleep, inversion and display-on state
// are unaffected.
func (d *Device) PowerOn() error {
	return d.iface.PowerOn()
}

// PowerOff lowers the power-enable line. Sleep, inversion and display-on
// state are unaffected.
func (d *Device) PowerOff() error {
	return d.iface.PowerOff()
}
