// Package ssd1306 controls a SSD1306 monochrome OLED display controller over
// I²C or 4-wire SPI.
//
// The SSD1306 drives panels of up to 128×64 pixels. Common modules are
// 128×32 and 128×64; both are provided as Variant presets, and any other
// geometry with a height multiple of 8 can be described with a Variant.
//
// # Wire Protocol
//
// Every byte sent to the controller is preceded by a control byte that
// selects the command channel (0x00) or the display RAM (0x40). This driver
// sends each command byte, parameter byte and pixel byte as its own
// two-byte transaction. On SPI the control byte is not clocked out but
// drives the D/C line instead.
//
// Display RAM (GDDRAM) is organized in pages: horizontal bands 8 pixels
// tall, one byte per column with the top row in bit 0. The image1bit package
// converts bitmaps to and from that layout.
//
// # Hardware Connection
//
// I²C modules:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → I²C SCL
//	SDA         → I²C SDA
//
// The address is 0x3C, or 0x3D with SA0 tied high (Opts.SA0).
//
// SPI modules additionally need a GPIO for DC, and CS on a chip select.
//
// # Basic Usage
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/host/v3"
//
//		"github.com/flavioheleno/ssd1306"
//		"github.com/flavioheleno/ssd1306/image1bit"
//	)
//
//	func main() {
//		host.Init()
//
//		bus, _ := i2creg.Open("")
//		defer bus.Close()
//
//		dev, _ := ssd1306.NewI2C(bus, &ssd1306.Opts{Variant: ssd1306.Variant128x64})
//		if err := dev.Init(); err != nil {
//			panic(err)
//		}
//		defer dev.Halt()
//
//		img := image1bit.NewBitmap(128, 64)
//		for x := 0; x < 128; x++ {
//			img.SetBit(x, 32, true)
//		}
//		dev.Display(img)
//	}
//
// # Initialization
//
// New, NewI2C and NewSPI only bind the transport. Init opens it and runs the
// power-on sequence: display off, multiplex ratio, offset, start line,
// segment remap, COM scan direction, COM pins, contrast, normal display,
// charge pump, GDDRAM output, clear screen, display on. Init succeeds at most
// once per Dev.
//
// # Drawing
//
// Display sends a whole frame. Draw implements display.Drawer from
// periph.io: it keeps a copy of the last frame and only sends the page and
// column window that changed.
//
// # Errors
//
// Invalid arguments, a second Init and frame writes before Init return an
// error wrapping ErrPrecondition and send nothing. Bus failures are returned
// as is and wrap transport.ErrOpen, transport.ErrWrite or transport.ErrRead.
// After a failed frame write the controller's address pointers are unknown;
// the next Draw resends the whole frame.
//
// # Datasheet
//
// https://cdn-shop.adafruit.com/datasheets/SSD1306.pdf
package ssd1306
