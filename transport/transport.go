// Package transport provides addressed byte channels to peripherals.
//
// A Transport is the only thing a display driver needs from the bus: once
// opened, every Write and Read already targets the right slave address or
// chip select. The I2C and SPI implementations sit on top of periph.io buses
// and can be built either from an already open bus or from a registry name,
// in which case the bus is opened by Open and released by Close.
package transport

import "errors"

// Transport is an addressed byte channel to a single peripheral.
//
// Implementations block until the underlying bus transaction completes. They
// do not retry and they do not lock; sharing one bus between several
// Transports is the caller's business.
type Transport interface {
	// Open prepares the channel. It must be called before Write or Read.
	Open() error
	// Write sends p in a single bus transaction.
	Write(p []byte) error
	// Read fills p in a single bus transaction.
	Read(p []byte) error
	// Close releases what Open acquired. It does not close buses that were
	// handed in already open.
	Close() error
}

// Failure kinds. Errors returned by the implementations in this package wrap
// exactly one of them, alongside the underlying bus error.
var (
	ErrOpen  = errors.New("transport: open failed")
	ErrWrite = errors.New("transport: write failed")
	ErrRead  = errors.New("transport: read failed")
)
