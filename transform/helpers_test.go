package transform

import (
	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/limits"
)

// createTestFrame builds a tightly packed frame with a position-dependent
// pattern in both planes.
func createTestFrame(width, height int) []byte {
	return createPaddedFrame(width, height, width, 0)
}

// createPaddedFrame builds a frame with the given stride. Padding bytes are
// set to pad so tests can detect writes outside the active region.
func createPaddedFrame(width, height, stride int, pad byte) []byte {
	data := make([]byte, limits.NV21Size(stride, height))
	for i := range data {
		data[i] = pad
	}
	f := frame.Frame{Width: width, Height: height, Stride: stride, Data: data}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			f.SetLuma(x, y, byte((x*7+y*13)%256))
		}
	}
	for cy := 0; cy < f.ChromaHeight(); cy++ {
		for cx := 0; cx < f.ChromaWidth(); cx++ {
			v := byte((cx*3 + cy*5 + 17) % 256)
			f.SetChromaPair(cx, cy, frame.ChromaPair{V: v, U: v + 100})
		}
	}
	return data
}

// sequentialFrame fills every byte with its index, which makes expected
// outputs easy to write by hand.
func sequentialFrame(width, height int) []byte {
	data := make([]byte, limits.NV21Size(width, height))
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func rotated(in []byte, width, height, degrees int) []byte {
	out := make([]byte, len(in))
	if err := Rotate(in, width, height, degrees, out); err != nil {
		panic(err)
	}
	return out
}
