// Command atkmd0240-demo drives an ATK-MD0240 panel connected to a spidev
// bus, animating a color gradient with a text overlay.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	st7789v "github.com/KaidRommel/atk-md0240"
	"github.com/KaidRommel/atk-md0240/conn"
	"github.com/KaidRommel/atk-md0240/pixel"
)

func main() {
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	speedFlag := flag.Int("speed", 40_000_000, "SPI speed in Hz")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	pwrPinFlag := flag.String("pwr", "GPIO19", "Power enable GPIO pin")
	fontFlag := flag.String("font", "", "TrueType font file (default: builtin 7x13 bitmap font)")
	fontSizeFlag := flag.Float64("font-size", 20, "TrueType font size in points")
	textFlag := flag.String("text", "ATK-MD0240", "Text overlay")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		rst = gpioreg.ByName(*resetPinFlag)
		dc  = gpioreg.ByName(*dcPinFlag)
		pwr = gpioreg.ByName(*pwrPinFlag)
	)
	for name, pin := range map[string]gpio.PinOut{
		*resetPinFlag: rst,
		*dcPinFlag:    dc,
		*pwrPinFlag:   pwr,
	} {
		if pin == nil {
			fatal(fmt.Errorf("unknown GPIO pin %q", name))
		}
	}

	bus, err := conn.OpenSPI(*spiBusFlag, *spiDeviceFlag)
	if err != nil {
		fatal(err)
	}
	defer bus.Close()

	if err = bus.SetMode(conn.SPIMode3); err != nil {
		fatal(err)
	}
	if err = bus.SetMaxSpeed(*speedFlag); err != nil {
		fatal(err)
	}
	fmt.Println("connected using", bus)

	style := st7789v.TextStyle{Color: pixel.White}
	if *fontFlag != "" {
		if style.Face, err = loadFace(*fontFlag, *fontSizeFlag); err != nil {
			fatal(err)
		}
	}

	device, err := st7789v.Init(bus, rst, dc, pwr, nil)
	if err != nil {
		fatal(err)
	}
	fmt.Println("using driver:", device)

	var (
		fb     = st7789v.NewFramebuffer(pixel.Black)
		w, h   = fb.Size()
		offset int
		ticker = time.NewTicker(50 * time.Millisecond)
	)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	for {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				c := pixel.New(uint8(x+offset), uint8(y+offset), uint8(x+y-offset))
				if err = fb.SetPixel(x, y, c); err != nil {
					fatal(err)
				}
			}
		}
		if err = fb.DrawText(10, 30, *textFlag, style); err != nil {
			fatal(err)
		}

		if err = device.FlushFrame(fb); err != nil {
			fatal(err)
		}

		offset++
		<-ticker.C
	}
}

func loadFace(name string, size float64) (font.Face, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
