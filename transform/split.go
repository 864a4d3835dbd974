package transform

import (
	"fmt"

	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/limits"
	"github.com/sirupsen/logrus"
)

// SplitPlanes de-interleaves an NV21 buffer into a separate luma buffer and
// a separate chroma buffer.
//
// src rows are srcStride bytes apart; yOut and vuOut rows are dstStride
// bytes apart, which allows repacking a padded source into tight planes or
// the reverse. Only the first width bytes of each row are copied; padding
// in the destinations is left as it was. yOut must hold dstStride*height
// bytes and vuOut dstStride*height/2.
func SplitPlanes(src, yOut, vuOut []byte, width, height, srcStride, dstStride int) error {
	f, err := frame.Wrap(src, width, height, srcStride)
	if err != nil {
		return reject("SplitPlanes", fmt.Errorf("source: %w", err),
			logrus.Fields{"width": width, "height": height, "src_stride": srcStride, "src_size": len(src)})
	}
	if err := validatePlanes(yOut, vuOut, width, height, dstStride); err != nil {
		return reject("SplitPlanes", err,
			logrus.Fields{"dst_stride": dstStride, "y_size": len(yOut), "vu_size": len(vuOut)})
	}
	if overlaps(src, yOut) || overlaps(src, vuOut) || overlaps(yOut, vuOut) {
		return reject("SplitPlanes", ErrAliasedBuffers, logrus.Fields{})
	}

	for j := 0; j < height; j++ {
		copy(yOut[j*dstStride:j*dstStride+width], f.Data[f.LumaOffset(0, j):f.LumaOffset(width, j)])
	}
	for j := 0; j < f.ChromaHeight(); j++ {
		copy(vuOut[j*dstStride:j*dstStride+width], f.Data[f.ChromaOffset(0, j):f.ChromaOffset(f.ChromaWidth(), j)])
	}
	return nil
}

// MergePlanes is the inverse of SplitPlanes: it interleaves a luma buffer
// and a chroma buffer with rows srcStride bytes apart into a single NV21
// buffer with rows dstStride bytes apart.
func MergePlanes(yIn, vuIn, dst []byte, width, height, srcStride, dstStride int) error {
	f, err := frame.Wrap(dst, width, height, dstStride)
	if err != nil {
		return reject("MergePlanes", fmt.Errorf("destination: %w", err),
			logrus.Fields{"width": width, "height": height, "dst_stride": dstStride, "dst_size": len(dst)})
	}
	if err := validatePlanes(yIn, vuIn, width, height, srcStride); err != nil {
		return reject("MergePlanes", err,
			logrus.Fields{"src_stride": srcStride, "y_size": len(yIn), "vu_size": len(vuIn)})
	}
	if overlaps(dst, yIn) || overlaps(dst, vuIn) {
		return reject("MergePlanes", ErrAliasedBuffers, logrus.Fields{})
	}

	for j := 0; j < height; j++ {
		copy(f.Data[f.LumaOffset(0, j):f.LumaOffset(width, j)], yIn[j*srcStride:j*srcStride+width])
	}
	for j := 0; j < f.ChromaHeight(); j++ {
		copy(f.Data[f.ChromaOffset(0, j):f.ChromaOffset(f.ChromaWidth(), j)], vuIn[j*srcStride:j*srcStride+width])
	}
	return nil
}

func validatePlanes(y, vu []byte, width, height, stride int) error {
	if err := limits.ValidateStride(stride, width); err != nil {
		return fmt.Errorf("planes: %w", err)
	}
	if err := limits.ValidateBufferSize(y, limits.LumaSize(stride, height)); err != nil {
		return fmt.Errorf("luma plane: %w", err)
	}
	if err := limits.ValidateBufferSize(vu, limits.ChromaSize(stride, height)); err != nil {
		return fmt.Errorf("chroma plane: %w", err)
	}
	return nil
}
