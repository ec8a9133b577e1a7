package transport

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
)

// DefaultSPIFrequency is the clock used when none is given. SSD13xx
// controllers accept up to 10MHz; 3.3MHz leaves margin for long wires.
const DefaultSPIFrequency = 3300 * physic.KiloHertz

// dcBit is the D/C# selector of the control byte that leads every write.
const dcBit = 0x40

// SPI is a Transport to a 4-wire SPI peripheral with a separate
// Data/Command line.
//
// Every Write starts with a control byte, as on I²C. Instead of being
// clocked out, its D/C# bit (0x40) drives the dc pin: low for commands, high
// for display data. The remaining bytes are sent as one transaction.
//
// Serial mode controllers have no read path, so Read always fails.
type SPI struct {
	port   spi.Port
	name   string
	closer spi.PortCloser // set when Open opened the port itself
	dc     gpio.PinOut
	freq   physic.Frequency
	c      spi.Conn
}

// NewSPI returns a Transport on an already open port. A zero f selects
// DefaultSPIFrequency.
func NewSPI(p spi.Port, dc gpio.PinOut, f physic.Frequency) *SPI {
	return &SPI{port: p, dc: dc, freq: f}
}

// NewSPIByName returns a Transport on the port registered as name in
// spireg. The port is opened by Open.
func NewSPIByName(name string, dc gpio.PinOut, f physic.Frequency) *SPI {
	return &SPI{name: name, dc: dc, freq: f}
}

// Open implements Transport.
func (t *SPI) Open() error {
	if t.c != nil {
		return nil
	}
	if t.dc == nil || t.dc == gpio.INVALID {
		return fmt.Errorf("%w: spi requires a D/C pin", ErrOpen)
	}
	if t.freq == 0 {
		t.freq = DefaultSPIFrequency
	}
	if t.port == nil {
		p, err := spireg.Open(t.name)
		if err != nil {
			return fmt.Errorf("%w: spi port %q: %w", ErrOpen, t.name, err)
		}
		t.closer = p
		t.port = p
	}
	c, err := t.port.Connect(t.freq, spi.Mode0, 8)
	if err != nil {
		t.release()
		return fmt.Errorf("%w: spi connect: %w", ErrOpen, err)
	}
	if err := t.dc.Out(gpio.Low); err != nil {
		t.release()
		return fmt.Errorf("%w: dc pin %s: %w", ErrOpen, t.dc, err)
	}
	t.c = c
	return nil
}

// Write implements Transport.
func (t *SPI) Write(p []byte) error {
	if t.c == nil {
		return fmt.Errorf("%w: %s is not open", ErrWrite, t)
	}
	if len(p) == 0 {
		return nil
	}
	l := gpio.Low
	if p[0]&dcBit != 0 {
		l = gpio.High
	}
	if err := t.dc.Out(l); err != nil {
		return fmt.Errorf("%w: dc pin %s: %w", ErrWrite, t.dc, err)
	}
	if len(p) == 1 {
		return nil
	}
	if err := t.c.Tx(p[1:], nil); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, t, err)
	}
	return nil
}

// Read implements Transport.
func (t *SPI) Read(p []byte) error {
	return fmt.Errorf("%w: %s: %w", ErrRead, t, errSerialRead)
}

// Close implements Transport.
func (t *SPI) Close() error {
	t.c = nil
	return t.release()
}

func (t *SPI) release() error {
	if t.closer == nil {
		return nil
	}
	err := t.closer.Close()
	t.closer = nil
	t.port = nil
	return err
}

func (t *SPI) String() string {
	if t.c != nil {
		return fmt.Sprintf("spi(%s, %s)", t.c, t.dc)
	}
	return fmt.Sprintf("spi(%q, %s)", t.name, t.dc)
}

var errSerialRead = errors.New("reads are not supported in serial mode")

var _ Transport = &SPI{}
