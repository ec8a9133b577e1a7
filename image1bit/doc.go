// Package image1bit provides a 1-bit monochrome bitmap for SSD1306-class
// display controllers.
//
// A Bitmap is a plain row-major matrix of on/off pixels that carries its own
// geometry. It implements draw.Image, so anything from image/draw or
// golang.org/x/image/font can render onto it.
//
// The controller does not store pixels row by row. Its GDDRAM is split into
// pages, horizontal bands 8 pixels tall, and each byte of a page holds one
// column of that band with bit 0 at the top:
//
//	page 0, column c:  bit0 = row 0 ... bit7 = row 7
//	page 1, column c:  bit0 = row 8 ... bit7 = row 15
//
// Serialize converts a Bitmap into that page-major byte stream and Load
// converts it back.
//
// Example usage:
//
//	img := image1bit.NewBitmap(128, 32)
//	img.SetBit(10, 3, true)
//	draw.Draw(img, image.Rect(0, 8, 64, 16), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
//	pix, err := image1bit.Serialize(img) // 4 pages * 128 columns = 512 bytes
package image1bit
