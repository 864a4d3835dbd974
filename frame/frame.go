// Package frame provides a borrowed view over an NV21 buffer.
//
// The view encapsulates the stride and plane offset arithmetic once so that
// transforms address pixels through LumaAt and ChromaPairAt instead of
// repeating index formulas.
package frame

import (
	"fmt"
	"image"

	"github.com/opd-ai/nv21/limits"
)

// ChromaPair is one interleaved NV21 chroma sample covering a 2x2 luma block.
// V precedes U in memory. The pair is always read and written as a unit.
type ChromaPair struct {
	V byte
	U byte
}

// Neutral is the chroma pair of a colourless pixel.
var Neutral = ChromaPair{V: 128, U: 128}

// Frame describes an NV21 frame stored in Data.
//
// A Frame never owns its memory: Data is borrowed from the caller and
// mutating accessors write straight through to it. Width and Height are
// luma dimensions; Stride is the number of bytes per luma row and per
// chroma row.
type Frame struct {
	Width  int
	Height int
	Stride int
	Data   []byte
}

// Wrap returns a view over data after validating the geometry and the
// buffer size. Nothing is copied.
func Wrap(data []byte, width, height, stride int) (Frame, error) {
	if err := limits.ValidateNV21Buffer(data, width, height, stride); err != nil {
		return Frame{}, err
	}
	return Frame{Width: width, Height: height, Stride: stride, Data: data}, nil
}

// New allocates a tightly packed frame with neutral chroma.
func New(width, height int) (Frame, error) {
	if err := limits.ValidateDimensions(width, height); err != nil {
		return Frame{}, err
	}
	data := make([]byte, limits.NV21Size(width, height))
	f := Frame{Width: width, Height: height, Stride: width, Data: data}
	chroma := f.ChromaPlane()
	for i := 0; i < len(chroma); i += limits.ChromaPairBytes {
		chroma[i] = Neutral.V
		chroma[i+1] = Neutral.U
	}
	return f, nil
}

// Validate re-checks the view against its own geometry.
func (f Frame) Validate() error {
	return limits.ValidateNV21Buffer(f.Data, f.Width, f.Height, f.Stride)
}

// Size returns the number of bytes covered by the frame.
func (f Frame) Size() int {
	return limits.NV21Size(f.Stride, f.Height)
}

// Gap returns the padding bytes at the end of each row.
func (f Frame) Gap() int {
	return f.Stride - f.Width
}

// ChromaWidth returns the number of chroma pairs per row.
func (f Frame) ChromaWidth() int {
	return f.Width / limits.ChromaSubsampling
}

// ChromaHeight returns the number of chroma rows.
func (f Frame) ChromaHeight() int {
	return f.Height / limits.ChromaSubsampling
}

// LumaPlane returns the luma plane, including row padding.
func (f Frame) LumaPlane() []byte {
	return f.Data[:limits.LumaSize(f.Stride, f.Height)]
}

// ChromaPlane returns the interleaved chroma plane, including row padding.
func (f Frame) ChromaPlane() []byte {
	return f.Data[limits.LumaSize(f.Stride, f.Height):f.Size()]
}

// LumaOffset returns the index of luma pixel (x, y) in Data.
func (f Frame) LumaOffset(x, y int) int {
	return y*f.Stride + x
}

// LumaAt returns luma pixel (x, y).
func (f Frame) LumaAt(x, y int) byte {
	return f.Data[f.LumaOffset(x, y)]
}

// SetLuma writes luma pixel (x, y).
func (f Frame) SetLuma(x, y int, v byte) {
	f.Data[f.LumaOffset(x, y)] = v
}

// SwapLuma exchanges two luma pixels.
func (f Frame) SwapLuma(x1, y1, x2, y2 int) {
	a, b := f.LumaOffset(x1, y1), f.LumaOffset(x2, y2)
	f.Data[a], f.Data[b] = f.Data[b], f.Data[a]
}

// ChromaOffset returns the index of the V byte of chroma pair (cx, cy),
// where cx and cy are in chroma-pair units.
func (f Frame) ChromaOffset(cx, cy int) int {
	return limits.LumaSize(f.Stride, f.Height) + cy*f.Stride + cx*limits.ChromaPairBytes
}

// ChromaPairAt returns chroma pair (cx, cy).
func (f Frame) ChromaPairAt(cx, cy int) ChromaPair {
	i := f.ChromaOffset(cx, cy)
	return ChromaPair{V: f.Data[i], U: f.Data[i+1]}
}

// ChromaFor returns the chroma pair that covers luma pixel (x, y).
func (f Frame) ChromaFor(x, y int) ChromaPair {
	return f.ChromaPairAt(x/limits.ChromaSubsampling, y/limits.ChromaSubsampling)
}

// SetChromaPair writes chroma pair (cx, cy).
func (f Frame) SetChromaPair(cx, cy int, p ChromaPair) {
	i := f.ChromaOffset(cx, cy)
	f.Data[i] = p.V
	f.Data[i+1] = p.U
}

// SwapChromaPairs exchanges two chroma pairs, keeping V and U together.
func (f Frame) SwapChromaPairs(cx1, cy1, cx2, cy2 int) {
	a, b := f.ChromaPairAt(cx1, cy1), f.ChromaPairAt(cx2, cy2)
	f.SetChromaPair(cx1, cy1, b)
	f.SetChromaPair(cx2, cy2, a)
}

// Clone returns a tightly packed copy of the active region of f.
func (f Frame) Clone() Frame {
	dst := Frame{
		Width:  f.Width,
		Height: f.Height,
		Stride: f.Width,
		Data:   make([]byte, limits.NV21Size(f.Width, f.Height)),
	}
	for y := 0; y < f.Height; y++ {
		copy(dst.Data[dst.LumaOffset(0, y):], f.Data[f.LumaOffset(0, y):f.LumaOffset(f.Width, y)])
	}
	for cy := 0; cy < f.ChromaHeight(); cy++ {
		copy(dst.Data[dst.ChromaOffset(0, cy):], f.Data[f.ChromaOffset(0, cy):f.ChromaOffset(f.ChromaWidth(), cy)])
	}
	return dst
}

// YCbCr returns the frame as a 4:2:0 image.YCbCr.
// The luma plane is shared with f; chroma is de-interleaved into new planes.
func (f Frame) YCbCr() *image.YCbCr {
	cw, ch := f.ChromaWidth(), f.ChromaHeight()
	img := &image.YCbCr{
		Y:              f.LumaPlane(),
		Cb:             make([]byte, cw*ch),
		Cr:             make([]byte, cw*ch),
		YStride:        f.Stride,
		CStride:        cw,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           image.Rect(0, 0, f.Width, f.Height),
	}
	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < cw; cx++ {
			p := f.ChromaPairAt(cx, cy)
			img.Cr[cy*cw+cx] = p.V
			img.Cb[cy*cw+cx] = p.U
		}
	}
	return img
}

// String returns a short geometry description.
func (f Frame) String() string {
	return fmt.Sprintf("NV21 %dx%d stride %d", f.Width, f.Height, f.Stride)
}
