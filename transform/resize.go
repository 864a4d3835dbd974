package transform

import (
	"fmt"

	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/limits"
	"github.com/sirupsen/logrus"
)

// Resize downscales an NV21 frame with a box filter and returns the box
// size R used on both axes.
//
// When the aspect ratios differ the source is cropped horizontally to the
// target aspect rather than letterboxed. Each destination luma pixel is the
// truncated mean of an R x R source block taken from the centred crop; each
// destination chroma pair averages V and U independently over R x R source
// pairs. dst is written tightly packed and must hold
// newWidth*newHeight*3/2 bytes.
//
// Upscaling is not supported. A target whose crop would reach outside the
// source is rejected before any pixel is read.
func Resize(old, dst []byte, oldWidth, oldHeight, oldStride, newWidth, newHeight int) (int, error) {
	fields := logrus.Fields{
		"old_width":  oldWidth,
		"old_height": oldHeight,
		"old_stride": oldStride,
		"new_width":  newWidth,
		"new_height": newHeight,
	}

	src, err := frame.Wrap(old, oldWidth, oldHeight, oldStride)
	if err != nil {
		return 0, reject("Resize", fmt.Errorf("source: %w", err), fields)
	}
	if err := limits.ValidateDimensions(newWidth, newHeight); err != nil {
		return 0, reject("Resize", fmt.Errorf("target: %w", err), fields)
	}
	if newWidth > oldWidth || newHeight > oldHeight {
		return 0, reject("Resize", fmt.Errorf("%w: %dx%d to %dx%d",
			ErrUpscaleNotSupported, oldWidth, oldHeight, newWidth, newHeight), fields)
	}

	r := boxRatio(adjustedWidth(oldWidth, oldHeight, newWidth, newHeight), oldHeight, newWidth, newHeight)
	wC := oldWidth - newWidth*r
	hC := oldHeight - newHeight*r
	if r < 1 || wC < 0 || hC < 0 {
		return 0, reject("Resize", fmt.Errorf("%w: box size %d needs %dx%d source pixels",
			limits.ErrInvalidGeometry, r, newWidth*r, newHeight*r), fields)
	}

	out, err := frame.Wrap(dst, newWidth, newHeight, newWidth)
	if err != nil {
		return 0, reject("Resize", fmt.Errorf("target: %w", err), fields)
	}
	if overlaps(src.Data[:src.Size()], out.Data[:out.Size()]) {
		return 0, reject("Resize", ErrAliasedBuffers, fields)
	}

	boxFilter(src, out, r, wC/2, hC/2)
	return r, nil
}

// adjustedWidth returns the source width cropped to the target aspect ratio.
// Both the aspect comparison and the product use float32.
func adjustedWidth(oldWidth, oldHeight, newWidth, newHeight int) int {
	target := float32(newWidth) / float32(newHeight)
	if float32(oldWidth)/float32(oldHeight) == target {
		return oldWidth
	}
	return int(target * float32(oldHeight))
}

// boxRatio picks the uniform box size. The smaller per-axis ratio is bumped
// by one when its remainder covers at least a quarter of the dimension.
func boxRatio(adjustedOldWidth, oldHeight, newWidth, newHeight int) int {
	wR := adjustedOldWidth / newWidth
	hR := oldHeight / newHeight
	if wR < hR && adjustedOldWidth-newWidth*wR >= adjustedOldWidth/4 {
		wR++
	}
	if hR < wR && oldHeight-newHeight*hR >= oldHeight/4 {
		hR++
	}
	return min(wR, hR)
}

// boxFilter averages r x r blocks of src starting at (x0, y0) into dst.
func boxFilter(src, dst frame.Frame, r, x0, y0 int) {
	n := r * r

	for j := 0; j < dst.Height; j++ {
		sy := y0 + j*r
		for i := 0; i < dst.Width; i++ {
			sx := x0 + i*r
			sum := 0
			for y := 0; y < r; y++ {
				for x := 0; x < r; x++ {
					sum += int(src.LumaAt(sx+x, sy+y))
				}
			}
			dst.SetLuma(i, j, byte(sum/n))
		}
	}

	// Chroma windows step two luma pixels per sample, i.e. one chroma pair.
	for cy := 0; cy < dst.ChromaHeight(); cy++ {
		sy := y0 + 2*r*cy
		for cx := 0; cx < dst.ChromaWidth(); cx++ {
			sx := x0 + 2*r*cx
			sumV, sumU := 0, 0
			for y := 0; y < r; y++ {
				for x := 0; x < r; x++ {
					p := src.ChromaFor(sx+2*x, sy+2*y)
					sumV += int(p.V)
					sumU += int(p.U)
				}
			}
			dst.SetChromaPair(cx, cy, frame.ChromaPair{V: byte(sumV / n), U: byte(sumU / n)})
		}
	}
}
