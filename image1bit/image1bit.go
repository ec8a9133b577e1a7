package image1bit

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// PageHeight is the number of pixel rows packed into one GDDRAM byte.
const PageHeight = 8

// ErrShape is returned when a bitmap or buffer does not fit the page layout.
var ErrShape = errors.New("image1bit: shape mismatch")

// Bit is a monochrome color: true is a lit pixel.
type Bit bool

// Colors.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA implements color.Color.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit using the luma of the color.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Bitmap is a row-major monochrome image whose origin is always {0, 0}.
type Bitmap struct {
	Pix  []bool // Pix[y*Rect.Dx()+x]
	Rect image.Rectangle
}

// NewBitmap returns a blank w×h bitmap.
func NewBitmap(w, h int) *Bitmap {
	if w < 0 || h < 0 {
		panic("image1bit: negative size")
	}
	return &Bitmap{Pix: make([]bool, w*h), Rect: image.Rect(0, 0, w, h)}
}

// FromRows builds a bitmap from a [row][column] matrix. All rows must have
// the same length.
func FromRows(rows [][]bool) (*Bitmap, error) {
	h := len(rows)
	if h == 0 {
		return NewBitmap(0, 0), nil
	}
	w := len(rows[0])
	b := NewBitmap(w, h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, y, len(row), w)
		}
		copy(b.Pix[y*w:], row)
	}
	return b, nil
}

// Width returns the number of columns.
func (b *Bitmap) Width() int {
	return b.Rect.Dx()
}

// Height returns the number of rows.
func (b *Bitmap) Height() int {
	return b.Rect.Dy()
}

// Pages returns the number of GDDRAM pages the bitmap covers.
func (b *Bitmap) Pages() int {
	return b.Rect.Dy() / PageHeight
}

// ColorModel implements image.Image.
func (b *Bitmap) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (b *Bitmap) Bounds() image.Rectangle {
	return b.Rect
}

// At implements image.Image.
func (b *Bitmap) At(x, y int) color.Color {
	return Bit(b.BitAt(x, y))
}

// BitAt returns the pixel at (x, y). Pixels outside the bitmap are off.
func (b *Bitmap) BitAt(x, y int) bool {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return false
	}
	return b.Pix[y*b.Rect.Dx()+x]
}

// Set implements draw.Image.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetBit(x, y, bool(BitModel.Convert(c).(Bit)))
}

// SetBit sets the pixel at (x, y). Pixels outside the bitmap are ignored.
func (b *Bitmap) SetBit(x, y int, v bool) {
	if !(image.Point{X: x, Y: y}.In(b.Rect)) {
		return
	}
	b.Pix[y*b.Rect.Dx()+x] = v
}

// Fill sets every pixel to v.
func (b *Bitmap) Fill(v bool) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// Serialize packs b into the controller's page-major layout: Pages() pages of
// Width() bytes, byte p*Width()+c holding rows p*8..p*8+7 of column c with
// the top row in bit 0.
func Serialize(b *Bitmap) ([]byte, error) {
	w, h := b.Rect.Dx(), b.Rect.Dy()
	if h%PageHeight != 0 {
		return nil, fmt.Errorf("%w: height %d is not a multiple of %d", ErrShape, h, PageHeight)
	}
	out := make([]byte, h/PageHeight*w)
	for page := 0; page < h/PageHeight; page++ {
		rows := b.Pix[page*PageHeight*w:]
		for col := 0; col < w; col++ {
			var v byte
			for bit := 0; bit < PageHeight; bit++ {
				if rows[bit*w+col] {
					v |= 1 << bit
				}
			}
			out[page*w+col] = v
		}
	}
	return out, nil
}

// Load overwrites b with a page-major buffer produced by Serialize.
func (b *Bitmap) Load(pix []byte) error {
	w, h := b.Rect.Dx(), b.Rect.Dy()
	if h%PageHeight != 0 || len(pix) != h/PageHeight*w {
		return fmt.Errorf("%w: %d bytes do not fill a %dx%d bitmap", ErrShape, len(pix), w, h)
	}
	for i, v := range pix {
		page, col := i/w, i%w
		for bit := 0; bit < PageHeight; bit++ {
			b.Pix[(page*PageHeight+bit)*w+col] = v&(1<<bit) != 0
		}
	}
	return nil
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("image1bit.Bitmap{%dx%d}", b.Rect.Dx(), b.Rect.Dy())
}
