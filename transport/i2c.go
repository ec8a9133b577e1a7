package transport

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// I2C is a Transport to a 7-bit addressed I²C slave.
type I2C struct {
	dev    i2c.Dev
	name   string
	closer i2c.BusCloser // set when Open opened the bus itself
}

// NewI2C returns a Transport to addr on an already open bus.
func NewI2C(b i2c.Bus, addr uint16) *I2C {
	return &I2C{dev: i2c.Dev{Bus: b, Addr: addr}}
}

// NewI2CByName returns a Transport to addr on the bus registered as name in
// i2creg. The bus is opened by Open. An empty name selects the first
// registered bus.
func NewI2CByName(name string, addr uint16) *I2C {
	return &I2C{dev: i2c.Dev{Addr: addr}, name: name}
}

// Open implements Transport.
func (t *I2C) Open() error {
	if t.dev.Addr > 0x7F {
		return fmt.Errorf("%w: i2c address %#x is not 7-bit", ErrOpen, t.dev.Addr)
	}
	if t.dev.Bus != nil {
		return nil
	}
	b, err := i2creg.Open(t.name)
	if err != nil {
		return fmt.Errorf("%w: i2c bus %q: %w", ErrOpen, t.name, err)
	}
	t.closer = b
	t.dev.Bus = b
	return nil
}

// Write implements Transport.
func (t *I2C) Write(p []byte) error {
	if t.dev.Bus == nil {
		return fmt.Errorf("%w: %s is not open", ErrWrite, t)
	}
	if err := t.dev.Tx(p, nil); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWrite, t, err)
	}
	return nil
}

// Read implements Transport.
func (t *I2C) Read(p []byte) error {
	if t.dev.Bus == nil {
		return fmt.Errorf("%w: %s is not open", ErrRead, t)
	}
	if err := t.dev.Tx(nil, p); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRead, t, err)
	}
	return nil
}

// Close implements Transport.
func (t *I2C) Close() error {
	if t.closer == nil {
		return nil
	}
	err := t.closer.Close()
	t.closer = nil
	t.dev.Bus = nil
	return err
}

// Addr returns the 7-bit slave address.
func (t *I2C) Addr() uint16 {
	return t.dev.Addr
}

func (t *I2C) String() string {
	if t.dev.Bus == nil {
		return fmt.Sprintf("i2c(%q)@%#02x", t.name, t.dev.Addr)
	}
	return fmt.Sprintf("i2c(%s)@%#02x", t.dev.Bus, t.dev.Addr)
}

var _ Transport = &I2C{}
