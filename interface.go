package st7789v

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
)

// Bus is a synchronous byte-oriented bus. Write queues bytes for
// transmission; Flush blocks until every queued byte has physically drained.
type Bus interface {
	io.Writer

	// Flush blocks until all previously written bytes have been sent.
	Flush() error
}

// Interface frames bytes as commands or data on the bus using the
// data/command control line, and owns the reset and power-enable lines.
//
// The control line must not be toggled while a transmission for the other
// line state is still in flight. The synchronous Command and Data methods
// enforce this by draining the bus before returning; the asynchronous
// variants push that obligation onto the caller, who must call Flush before
// switching between commands and data.
type Interface struct {
	bus   Bus
	rst   gpio.PinOut // reset, active low
	dc    gpio.PinOut // data/command select, low for commands
	pwr   gpio.PinOut // power enable, high for on
	delay Delay
}

// NewInterface wires the bus and the three control lines. A nil delay selects
// real blocking sleeps.
func NewInterface(bus Bus, rst, dc, pwr gpio.PinOut, delay Delay) *Interface {
	if delay == nil {
		delay = sleepDelay{}
	}
	return &Interface{
		bus:   bus,
		rst:   rst,
		dc:    dc,
		pwr:   pwr,
		delay: delay,
	}
}

// Command sends a command byte and blocks until it has drained.
func (i *Interface) Command(command byte) error {
	if err := i.CommandAsync(command); err != nil {
		return err
	}
	return i.Flush()
}

// Data sends data bytes and blocks until they have drained.
func (i *Interface) Data(data ...byte) error {
	if err := i.DataAsync(data...); err != nil {
		return err
	}
	return i.Flush()
}

// CommandAsync sends a command byte without waiting for the bus to drain.
// The caller must Flush before sending data or toggling any control line.
func (i *Interface) CommandAsync(command byte) error {
	if err := i.dc.Out(gpio.Low); err != nil {
		return fmt.Errorf("%w: %v", ErrControlLine, err)
	}
	if _, err := i.bus.Write([]byte{command}); err != nil {
		return fmt.Errorf("%w: %v", ErrBusWrite, err)
	}
	return nil
}

// DataAsync sends data bytes without waiting for the bus to drain. The caller
// must Flush before sending a command or toggling any control line.
func (i *Interface) DataAsync(data ...byte) error {
	if err := i.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("%w: %v", ErrControlLine, err)
	}
	if _, err := i.bus.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrBusWrite, err)
	}
	return nil
}

// Flush blocks until all previously queued asynchronous writes have drained.
func (i *Interface) Flush() error {
	if err := i.bus.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrBusWrite, err)
	}
	return nil
}

// Reset pulses the reset line and waits for the controller to settle. After
// Reset the controller is in its power-on default state.
func (i *Interface) Reset() error {
	if err := i.rst.Out(gpio.Low); err != nil {
		return fmt.Errorf("%w: %v", ErrControlLine, err)
	}
	i.delay.Sleep(resetPulseDelay)
	if err := i.rst.Out(gpio.High); err != nil {
		return fmt.Errorf("%w: %v", ErrControlLine, err)
	}
	i.delay.Sleep(settleDelay)
	return nil
}

// PowerOn raises the power-enable line.
func (i *Interface) PowerOn() error {
	if err := i.pwr.Out(gpio.High); err != nil {
		return fmt.Errorf("%w: %v", ErrControlLine, err)
	}
	i.delay.Sleep(powerDelay)
	return nil
}

// PowerOff lowers the power-enable line. Controller state (sleep, inversion,
// display on) is unaffected.
func (i *Interface) PowerOff() error {
	if err := i.pwr.Out(gpio.Low); err != nil {
		return fmt.Errorf("%w: %v", ErrControlLine, err)
	}
	i.delay.Sleep(powerDelay)
	return nil
}
