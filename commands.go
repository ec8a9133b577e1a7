package ssd1306

// Opcodes. See the SSD1306 datasheet, section 9 (command table).
const (
	cmdSetLowColumn         = 0x00 // | low nibble, page addressing mode
	cmdSetHighColumn        = 0x10 // | high nibble, page addressing mode
	cmdMemoryMode           = 0x20
	cmdColumnAddr           = 0x21
	cmdPageAddr             = 0x22
	cmdHorizontalScroll     = 0x26 // | ScrollDirection
	cmdVertHorizontalScroll = 0x28 // | VerticalScrollDirection
	cmdDeactivateScroll     = 0x2E
	cmdActivateScroll       = 0x2F
	cmdSetStartLine         = 0x40 // | line
	cmdSetContrast          = 0x81
	cmdChargePump           = 0x8D
	cmdSegmentRemap         = 0xA0 // | SegmentRemap
	cmdVerticalScrollArea   = 0xA3
	cmdEntireDisplay        = 0xA4 // | 1 ignores GDDRAM
	cmdNormalInverse        = 0xA6 // | 1 inverts
	cmdSetMultiplex         = 0xA8
	cmdDisplay              = 0xAE // | 1 turns the panel on
	cmdPageStartAddr        = 0xB0 // | page
	cmdCOMScanDirection     = 0xC0 // | COMScanDirection
	cmdSetDisplayOffset     = 0xD3
	cmdSetDisplayClock      = 0xD5
	cmdSetPrecharge         = 0xD9
	cmdSetCOMPins           = 0xDA
	cmdSetVCOMHDeselect     = 0xDB
	cmdNOP                  = 0xE3
)

// Control bytes. Each command or data byte on the wire is preceded by one.
const (
	ctrlCommand = 0x00
	ctrlData    = 0x40
)

// statusDisplayOff is set in the status byte while the panel is off.
const statusDisplayOff = 0x40

// AddressingMode selects how the GDDRAM column and page pointers advance
// after each data byte.
type AddressingMode byte

// Addressing modes.
const (
	// HorizontalAddressing advances the column, then wraps to the next page.
	HorizontalAddressing AddressingMode = 0x00
	// VerticalAddressing advances the page, then wraps to the next column.
	VerticalAddressing AddressingMode = 0x01
	// PageAddressing advances the column and stays within the page.
	PageAddressing AddressingMode = 0x02
)

func (m AddressingMode) String() string {
	switch m {
	case HorizontalAddressing:
		return "horizontal"
	case VerticalAddressing:
		return "vertical"
	case PageAddressing:
		return "page"
	default:
		return "invalid"
	}
}

// ScrollDirection is the direction of a continuous horizontal scroll.
type ScrollDirection byte

// Horizontal scroll directions.
const (
	ScrollRight ScrollDirection = 0x00
	ScrollLeft  ScrollDirection = 0x01
)

// VerticalScrollDirection is the horizontal component of a continuous
// vertical and horizontal scroll.
type VerticalScrollDirection byte

// Vertical and horizontal scroll directions.
const (
	ScrollVerticalRight VerticalScrollDirection = 0x01
	ScrollVerticalLeft  VerticalScrollDirection = 0x02
)

// ScrollInterval is the number of frames between two scroll steps. The
// encoding is not monotonic.
type ScrollInterval byte

// Scroll intervals.
const (
	Interval2Frames   ScrollInterval = 0x07
	Interval3Frames   ScrollInterval = 0x04
	Interval4Frames   ScrollInterval = 0x05
	Interval5Frames   ScrollInterval = 0x00
	Interval25Frames  ScrollInterval = 0x06
	Interval64Frames  ScrollInterval = 0x01
	Interval128Frames ScrollInterval = 0x02
	Interval256Frames ScrollInterval = 0x03
)

// SegmentRemap maps GDDRAM column 0 to SEG0 or SEG127.
type SegmentRemap byte

// Segment remap modes.
const (
	SegmentRemap0   SegmentRemap = 0x00
	SegmentRemap127 SegmentRemap = 0x01
)

// COMScanDirection is the order in which COM outputs are scanned.
type COMScanDirection byte

// COM scan directions.
const (
	COMScanNormal   COMScanDirection = 0x00 // COM0 to COM[N-1]
	COMScanRemapped COMScanDirection = 0x08 // COM[N-1] to COM0
)

// COMPinsConfig is the COM pins hardware configuration of the panel.
type COMPinsConfig byte

// COM pins configurations.
const (
	COMPinsSequential  COMPinsConfig = 0x00
	COMPinsAlternative COMPinsConfig = 0x01
)

// VCOMHLevel is the VCOMH deselect level, as a fraction of VCC.
type VCOMHLevel byte

// VCOMH deselect levels.
const (
	VCOMH065 VCOMHLevel = 0x00 // ~0.65 x VCC
	VCOMH077 VCOMHLevel = 0x02 // ~0.77 x VCC, reset value
	VCOMH083 VCOMHLevel = 0x03 // ~0.83 x VCC
)

func (l VCOMHLevel) valid() bool {
	return l == VCOMH065 || l == VCOMH077 || l == VCOMH083
}

// DisplayStatus is the panel state reported by the controller.
type DisplayStatus byte

// Display states.
const (
	DisplayOff DisplayStatus = iota
	DisplayOn
)

func (s DisplayStatus) String() string {
	if s == DisplayOn {
		return "on"
	}
	return "off"
}

func b2u(b bool) byte {
	if b {
		return 1
	}
	return 0
}
