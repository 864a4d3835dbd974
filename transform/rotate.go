package transform

import (
	"fmt"

	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/limits"
	"github.com/sirupsen/logrus"
)

// Supported rotation angles in degrees, clockwise.
const (
	Rotate90  = 90
	Rotate180 = 180
	Rotate270 = 270
)

// sourceFunc maps a destination coordinate to the source coordinate it is
// copied from, for a source plane of w x h samples.
type sourceFunc func(ox, oy, w, h int) (sx, sy int)

func sourceFor(degrees int) (sourceFunc, bool) {
	switch degrees {
	case Rotate90:
		return func(ox, oy, w, h int) (int, int) { return oy, h - 1 - ox }, true
	case Rotate180:
		return func(ox, oy, w, h int) (int, int) { return w - 1 - ox, h - 1 - oy }, true
	case Rotate270:
		return func(ox, oy, w, h int) (int, int) { return w - 1 - oy, ox }, true
	}
	return nil, false
}

// RotatedSize returns the output dimensions of a rotation by degrees.
func RotatedSize(width, height, degrees int) (int, int) {
	if degrees == Rotate90 || degrees == Rotate270 {
		return height, width
	}
	return width, height
}

// Rotate rotates a tightly packed NV21 frame of width x height clockwise by
// 90, 180 or 270 degrees and writes the complete rotated frame to out.
//
// The luma plane is written first, then the chroma plane starting at
// width*height. Chroma pairs follow the luma traversal at half resolution,
// so they stay aligned with their 2x2 luma blocks. out must hold
// width*height*3/2 bytes and must not overlap in. On error out is left
// untouched.
func Rotate(in []byte, width, height, degrees int, out []byte) error {
	if _, ok := sourceFor(degrees); !ok {
		return reject("Rotate", fmt.Errorf("%w: %d degrees", ErrUnsupportedAngle, degrees),
			logrus.Fields{"degrees": degrees})
	}

	src, err := frame.Wrap(in, width, height, width)
	if err != nil {
		return reject("Rotate", fmt.Errorf("input: %w", err),
			logrus.Fields{"width": width, "height": height, "in_size": len(in)})
	}

	ow, oh := RotatedSize(width, height, degrees)
	dst, err := frame.Wrap(out, ow, oh, ow)
	if err != nil {
		return reject("Rotate", fmt.Errorf("output: %w", err),
			logrus.Fields{"width": ow, "height": oh, "out_size": len(out)})
	}

	return RotateFrame(src, dst, degrees)
}

// RotateFrame rotates src into dst. Both frames must be tightly packed and
// dst must have the rotated dimensions reported by RotatedSize.
func RotateFrame(src, dst frame.Frame, degrees int) error {
	source, ok := sourceFor(degrees)
	if !ok {
		return reject("RotateFrame", fmt.Errorf("%w: %d degrees", ErrUnsupportedAngle, degrees),
			logrus.Fields{"degrees": degrees})
	}
	if err := validateRotation(src, dst, degrees); err != nil {
		return reject("RotateFrame", err, logrus.Fields{"src": src.String(), "dst": dst.String()})
	}

	// Luma pass
	for oy := 0; oy < dst.Height; oy++ {
		for ox := 0; ox < dst.Width; ox++ {
			sx, sy := source(ox, oy, src.Width, src.Height)
			dst.SetLuma(ox, oy, src.LumaAt(sx, sy))
		}
	}

	// Chroma pass, one whole (V,U) pair per step
	cw, ch := src.ChromaWidth(), src.ChromaHeight()
	for cy := 0; cy < dst.ChromaHeight(); cy++ {
		for cx := 0; cx < dst.ChromaWidth(); cx++ {
			sx, sy := source(cx, cy, cw, ch)
			dst.SetChromaPair(cx, cy, src.ChromaPairAt(sx, sy))
		}
	}

	return nil
}

func validateRotation(src, dst frame.Frame, degrees int) error {
	if err := src.Validate(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if src.Stride != src.Width || dst.Stride != dst.Width {
		return fmt.Errorf("%w: rotation requires tightly packed frames", limits.ErrInvalidGeometry)
	}
	ow, oh := RotatedSize(src.Width, src.Height, degrees)
	if dst.Width != ow || dst.Height != oh {
		return fmt.Errorf("%w: output %dx%d, rotation by %d needs %dx%d",
			limits.ErrInvalidGeometry, dst.Width, dst.Height, degrees, ow, oh)
	}
	if overlaps(src.Data[:src.Size()], dst.Data[:dst.Size()]) {
		return ErrAliasedBuffers
	}
	return nil
}
