package ssd1306

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/ssd1306/image1bit"
	"github.com/flavioheleno/ssd1306/transport"
	"github.com/go-logr/logr"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/spi"
)

// BaseAddr is the I²C address of a controller with SA0 tied low.
const BaseAddr = 0x3C

// Variant describes a panel: its geometry and the parameter ranges and
// defaults its controller accepts.
type Variant struct {
	Name string
	W    int // columns, at most 128
	H    int // rows, a multiple of 8, at most 64

	// Addr is the 7-bit I²C address with SA0 low.
	Addr uint16

	// MinMultiplexRatio is the lowest ratio SetMultiplexRatio accepts.
	MinMultiplexRatio int
	// MaxClockDivider is the highest divider SetClock accepts.
	MaxClockDivider int
	// MultiplexRatio is applied by Init.
	MultiplexRatio int
	// Contrast is applied by Init.
	Contrast byte
}

// Panel variants.
var (
	Variant128x32 = Variant{
		Name:              "128x32",
		W:                 128,
		H:                 32,
		Addr:              BaseAddr,
		MinMultiplexRatio: 16,
		MaxClockDivider:   16,
		MultiplexRatio:    64,
		Contrast:          0x7F,
	}
	Variant128x64 = Variant{
		Name:              "128x64",
		W:                 128,
		H:                 64,
		Addr:              BaseAddr,
		MinMultiplexRatio: 1,
		MaxClockDivider:   16,
		MultiplexRatio:    64,
		Contrast:          0x7F,
	}
)

func (v *Variant) validate() error {
	if v.W < 1 || v.W > 128 {
		return precondition("%s: width %d must be between 1 and 128", v.Name, v.W)
	}
	if v.H < 8 || v.H > 64 || v.H%image1bit.PageHeight != 0 {
		return precondition("%s: height %d must be a multiple of 8 between 8 and 64", v.Name, v.H)
	}
	if v.Addr > 0x7F {
		return precondition("%s: i2c address %#x is not 7-bit", v.Name, v.Addr)
	}
	if err := checkRange("minimum multiplex ratio", v.MinMultiplexRatio, 1, 64); err != nil {
		return err
	}
	if err := checkRange("maximum clock divider", v.MaxClockDivider, 1, 16); err != nil {
		return err
	}
	return checkRange("default multiplex ratio", v.MultiplexRatio, v.MinMultiplexRatio, 64)
}

// Opts is the configuration of a Dev.
type Opts struct {
	// Variant defaults to Variant128x32 when left zero.
	Variant Variant
	// SA0 is the level of the SA0 pin, the low bit of the I²C address.
	SA0 bool
	// Logger receives init steps at V(1) and frame writes at V(2). It
	// defaults to a discarding logger.
	Logger logr.Logger
}

// Dev is a handle to one SSD1306 controller.
//
// A Dev is not safe for concurrent use. It borrows its transport: the
// transport must outlive the Dev and is closed by whoever created it.
type Dev struct {
	t    transport.Transport
	addr uint16
	v    Variant
	rect image.Rectangle
	log  logr.Logger

	initialized bool
	mode        AddressingMode
	mux         int

	// buffer mirrors GDDRAM in serialized form while synced is true.
	buffer []byte
	synced bool
	// next is lazily allocated on the first Draw.
	next *image1bit.Bitmap

	frame [2]byte
}

// New returns a Dev bound to t. The controller is not touched until Init.
//
// opts can be nil to use defaults (128x32 panel at 0x3C).
func New(t transport.Transport, opts *Opts) (*Dev, error) {
	if t == nil {
		return nil, precondition("nil transport")
	}
	if opts == nil {
		opts = &Opts{}
	}
	v := opts.Variant
	if v.W == 0 && v.H == 0 {
		v = Variant128x32
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	d := &Dev{
		t:      t,
		addr:   v.Addr | uint16(b2u(opts.SA0)),
		v:      v,
		rect:   image.Rect(0, 0, v.W, v.H),
		log:    log.WithValues("variant", v.Name),
		mode:   PageAddressing,
		mux:    64,
		buffer: make([]byte, v.W*v.H/image1bit.PageHeight),
	}
	return d, nil
}

// NewI2C returns a Dev talking to the controller over b. The address is
// derived from the variant and opts.SA0.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{}
	}
	v := opts.Variant
	if v.W == 0 && v.H == 0 {
		v = Variant128x32
	}
	addr := v.Addr | uint16(b2u(opts.SA0))
	return New(transport.NewI2C(b, addr), opts)
}

// NewSPI returns a Dev talking to the controller in 4-wire SPI mode, with dc
// as the Data/Command line.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	return New(transport.NewSPI(p, dc, 0), opts)
}

// Init opens the transport and runs the power-on sequence. It can only
// succeed once per Dev; if any step fails the Dev stays uninitialized and
// Init may be retried.
//
// The panel is kept off while it is being configured, and the charge pump is
// enabled before it is turned back on.
func (d *Dev) Init() error {
	if d.initialized {
		return precondition("device is already initialized")
	}
	if err := d.t.Open(); err != nil {
		return err
	}
	steps := []struct {
		name string
		fn   func() error
	}{
		{"display off", func() error { return d.EnableDisplay(false) }},
		{"multiplex ratio", func() error { return d.SetMultiplexRatio(d.v.MultiplexRatio) }},
		{"display offset", func() error { return d.SetDisplayOffset(0) }},
		{"start line", func() error { return d.SetDisplayStartLine(0) }},
		{"segment remap", func() error { return d.SetSegmentRemap(SegmentRemap0) }},
		{"com scan direction", func() error { return d.SetCOMOutputScanDirection(COMScanNormal) }},
		{"com pins", func() error { return d.SetCOMPinsConfig(COMPinsSequential, false) }},
		{"contrast", func() error { return d.SetContrast(d.v.Contrast) }},
		{"normal display", func() error { return d.SetInverseDisplay(false) }},
		{"charge pump", func() error { return d.EnableChargePump(true) }},
		{"use ram contents", func() error { return d.UseRAMContents(true) }},
		{"clear screen", func() error { return d.display(image1bit.NewBitmap(d.v.W, d.v.H)) }},
		{"display on", func() error { return d.EnableDisplay(true) }},
	}
	for _, s := range steps {
		d.log.V(1).Info("init", "step", s.name)
		if err := s.fn(); err != nil {
			d.log.Error(err, "init failed", "step", s.name)
			return err
		}
	}
	d.initialized = true
	return nil
}

// Initialized reports whether Init completed.
func (d *Dev) Initialized() bool {
	return d.initialized
}

// Display writes the whole bitmap to GDDRAM using horizontal addressing.
// b must have exactly the bounds of the display.
func (d *Dev) Display(b *image1bit.Bitmap) error {
	if !d.initialized {
		return errNotInitialized
	}
	return d.display(b)
}

// ClearScreen turns every pixel off.
func (d *Dev) ClearScreen() error {
	if !d.initialized {
		return errNotInitialized
	}
	return d.display(image1bit.NewBitmap(d.v.W, d.v.H))
}

func (d *Dev) display(b *image1bit.Bitmap) error {
	if b == nil || b.Bounds() != d.rect {
		return precondition("bitmap must be %dx%d", d.v.W, d.v.H)
	}
	pix, err := image1bit.Serialize(b)
	if err != nil {
		return precondition("%v", err)
	}
	return d.writeWindow(pix, 0, d.pages()-1, 0, d.v.W-1)
}

// Write writes a buffer of pixels in GDDRAM layout: Pages() bands of
// Bounds().Dx() bytes, one byte per column with the top row in bit 0.
//
// This function accepts the output of image1bit.Serialize.
func (d *Dev) Write(pixels []byte) (int, error) {
	if !d.initialized {
		return 0, errNotInitialized
	}
	if len(pixels) != len(d.buffer) {
		return 0, precondition("invalid pixel stream length; expected %d bytes, got %d bytes", len(d.buffer), len(pixels))
	}
	if err := d.writeWindow(pixels, 0, d.pages()-1, 0, d.v.W-1); err != nil {
		return 0, err
	}
	return len(pixels), nil
}

// Draw implements display.Drawer.
//
// It renders src onto a copy of the last frame sent and transmits only the
// smallest page and column window that changed. Nothing is sent when the
// frame is unchanged. After a failed write the next Draw sends the full
// frame.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if !d.initialized {
		return errNotInitialized
	}
	if d.next == nil {
		d.next = image1bit.NewBitmap(d.v.W, d.v.H)
	}
	if err := d.next.Load(d.buffer); err != nil {
		return err
	}
	draw.Src.Draw(d.next, r, src, sp)
	next, err := image1bit.Serialize(d.next)
	if err != nil {
		return err
	}
	startPage, endPage, startCol, endCol, changed := d.changedWindow(next)
	if !changed {
		return nil
	}
	return d.writeWindow(next, startPage, endPage, startCol, endCol)
}

// changedWindow returns the inclusive page and column window in which next
// differs from the frame last sent.
func (d *Dev) changedWindow(next []byte) (startPage, endPage, startCol, endCol int, changed bool) {
	w := d.v.W
	startPage, endPage = 0, d.pages()-1
	startCol, endCol = 0, w-1
	if !d.synced {
		return startPage, endPage, startCol, endCol, true
	}

	startPage, endPage = d.pages(), -1
	startCol, endCol = w, -1
	for i := range next {
		if next[i] == d.buffer[i] {
			continue
		}
		page, col := i/w, i%w
		startPage = min(startPage, page)
		endPage = max(endPage, page)
		startCol = min(startCol, col)
		endCol = max(endCol, col)
	}
	return startPage, endPage, startCol, endCol, endPage >= 0
}

// writeWindow sends the inclusive page and column window of pix, a full
// frame in GDDRAM layout.
func (d *Dev) writeWindow(pix []byte, startPage, endPage, startCol, endCol int) error {
	d.log.V(2).Info("frame", "pages", []int{startPage, endPage}, "columns", []int{startCol, endCol})
	d.synced = false
	if err := d.SetMemoryAddressingMode(HorizontalAddressing); err != nil {
		return err
	}
	if err := d.SetPageAddresses(startPage, endPage); err != nil {
		return err
	}
	if err := d.SetColumnAddresses(startCol, endCol); err != nil {
		return err
	}
	w := d.v.W
	for page := startPage; page <= endPage; page++ {
		if err := d.sendDataStream(pix[page*w+startCol : page*w+endCol+1]); err != nil {
			return err
		}
	}
	copy(d.buffer, pix)
	d.synced = true
	return nil
}

// ReadDisplayStatus reads the on/off state from the controller.
//
// Bit 6 of the status byte is set while the panel is off and clear while it
// is on; a driver that reads the bit as "on" gets the opposite answer.
//
// Controllers in serial (SPI) mode have no read path; the transport error
// is returned.
func (d *Dev) ReadDisplayStatus() (DisplayStatus, error) {
	s, err := d.readStatus()
	if err != nil {
		return DisplayOff, err
	}
	if s&statusDisplayOff != 0 {
		return DisplayOff, nil
	}
	return DisplayOn, nil
}

// ReadData returns the GDDRAM byte at the current address pointer.
func (d *Dev) ReadData() (byte, error) {
	return d.readData()
}

// ColorModel implements display.Drawer.
//
// It is a one bit color model, as implemented by image1bit.Bit.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Pages returns the number of 8-row GDDRAM pages of the panel.
func (d *Dev) Pages() int {
	return d.pages()
}

func (d *Dev) pages() int {
	return d.v.H / image1bit.PageHeight
}

// Addr returns the 7-bit I²C address derived from the variant and SA0.
func (d *Dev) Addr() uint16 {
	return d.addr
}

// AddressingMode returns the mode last set on the controller.
func (d *Dev) AddressingMode() AddressingMode {
	return d.mode
}

// Halt turns the display off. Any later EnableDisplay(true) turns it back on.
func (d *Dev) Halt() error {
	return d.EnableDisplay(false)
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1306.Dev{%s, %dx%d}", d.t, d.v.W, d.v.H)
}

var _ display.Drawer = &Dev{}
