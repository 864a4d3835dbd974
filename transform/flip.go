package transform

import (
	"fmt"

	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/limits"
	"github.com/sirupsen/logrus"
)

// Axis selects the direction of a flip.
type Axis int

const (
	// Vertical swaps rows top to bottom.
	Vertical Axis = iota
	// Horizontal swaps columns left to right.
	Horizontal
)

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Flip mirrors an NV21 buffer in place. width is derived as stride - gap;
// the gap bytes at the end of each row are never read or written.
func Flip(buf []byte, stride, height, gap int, vertical bool) error {
	if gap < 0 || gap >= stride {
		return reject("Flip", fmt.Errorf("%w: gap %d outside stride %d", limits.ErrInvalidGeometry, gap, stride),
			logrus.Fields{"stride": stride, "gap": gap})
	}
	f, err := frame.Wrap(buf, stride-gap, height, stride)
	if err != nil {
		return reject("Flip", err,
			logrus.Fields{"stride": stride, "height": height, "gap": gap, "size": len(buf)})
	}

	axis := Horizontal
	if vertical {
		axis = Vertical
	}
	return FlipInPlace(f, axis)
}

// FlipInPlace mirrors f along axis, writing into f.Data.
//
// The caller must hold exclusive access to f.Data for the duration of the
// call; the frame is read and written at the same time. Flipping twice on
// the same axis restores the original buffer.
func FlipInPlace(f frame.Frame, axis Axis) error {
	if err := f.Validate(); err != nil {
		return reject("FlipInPlace", err, logrus.Fields{"frame": f.String()})
	}

	switch axis {
	case Vertical:
		flipVertical(f)
	case Horizontal:
		flipHorizontal(f)
	default:
		return reject("FlipInPlace", fmt.Errorf("%w: unknown axis %v", limits.ErrInvalidGeometry, axis),
			logrus.Fields{"axis": int(axis)})
	}
	return nil
}

func flipVertical(f frame.Frame) {
	for y := 0; y < f.Height/2; y++ {
		for x := 0; x < f.Width; x++ {
			f.SwapLuma(x, y, x, f.Height-1-y)
		}
	}

	cw, ch := f.ChromaWidth(), f.ChromaHeight()
	for cy := 0; cy < ch/2; cy++ {
		for cx := 0; cx < cw; cx++ {
			f.SwapChromaPairs(cx, cy, cx, ch-1-cy)
		}
	}
}

func flipHorizontal(f frame.Frame) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width/2; x++ {
			f.SwapLuma(x, y, f.Width-1-x, y)
		}
	}

	cw, ch := f.ChromaWidth(), f.ChromaHeight()
	for cy := 0; cy < ch; cy++ {
		for cx := 0; cx < cw/2; cx++ {
			f.SwapChromaPairs(cx, cy, cw-1-cx, cy)
		}
	}
}
