// Package limits provides centralized frame geometry limits for NV21 buffers.
// This ensures consistent validation across the transforms that share the layout.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MaxDimension is the largest width, height or stride accepted by any transform.
	// 16384 covers every sensor mode in practice and keeps stride*height*3/2 far
	// below the int32 range
	MaxDimension = 16384

	// ChromaSubsampling is the horizontal and vertical subsampling factor of the
	// chroma plane relative to the luma plane
	ChromaSubsampling = 2

	// ChromaPairBytes is the size of one interleaved (V,U) chroma sample
	ChromaPairBytes = 2

	// RGBABytesPerPixel is the size of one packed RGBA output pixel
	RGBABytesPerPixel = 4
)

var (
	// ErrInvalidGeometry indicates width, height, stride or gap values that
	// cannot describe an NV21 frame
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrBufferTooSmall indicates a buffer shorter than the geometry requires
	ErrBufferTooSmall = errors.New("buffer too small")
)

// LumaSize returns the size in bytes of the luma plane.
func LumaSize(stride, height int) int {
	return stride * height
}

// ChromaSize returns the size in bytes of the interleaved chroma plane.
func ChromaSize(stride, height int) int {
	return stride * height / ChromaSubsampling
}

// NV21Size returns the total size in bytes of an NV21 frame with the given
// stride and height.
func NV21Size(stride, height int) int {
	return LumaSize(stride, height) + ChromaSize(stride, height)
}

// RGBASize returns the size in bytes of a packed RGBA image.
func RGBASize(width, height int) int {
	return width * height * RGBABytesPerPixel
}

// ValidateDimensions checks that width and height describe an NV21 frame.
// Both must be positive, even and no larger than MaxDimension.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidGeometry, width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: dimensions %dx%d exceed limit %d", ErrInvalidGeometry, width, height, MaxDimension)
	}
	if width%ChromaSubsampling != 0 || height%ChromaSubsampling != 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be even for NV21", ErrInvalidGeometry, width, height)
	}
	return nil
}

// ValidateStride checks that stride can hold a row of width pixels.
// An odd stride would split chroma pairs across rows and is rejected.
func ValidateStride(stride, width int) error {
	if stride < width {
		return fmt.Errorf("%w: stride %d smaller than width %d", ErrInvalidGeometry, stride, width)
	}
	if stride > MaxDimension {
		return fmt.Errorf("%w: stride %d exceeds limit %d", ErrInvalidGeometry, stride, MaxDimension)
	}
	if stride%ChromaPairBytes != 0 {
		return fmt.Errorf("%w: stride %d must be even for NV21", ErrInvalidGeometry, stride)
	}
	return nil
}

// ValidateFrame checks dimensions and stride together.
func ValidateFrame(width, height, stride int) error {
	if err := ValidateDimensions(width, height); err != nil {
		return err
	}
	return ValidateStride(stride, width)
}

// ValidateBufferSize checks that buf holds at least required bytes.
// Returns an error with context including the actual and required sizes.
func ValidateBufferSize(buf []byte, required int) error {
	if len(buf) < required {
		return fmt.Errorf("%w: size %d below required %d", ErrBufferTooSmall, len(buf), required)
	}
	return nil
}

// ValidateNV21Buffer checks geometry and that buf can hold the whole frame.
func ValidateNV21Buffer(buf []byte, width, height, stride int) error {
	if err := ValidateFrame(width, height, stride); err != nil {
		return err
	}
	return ValidateBufferSize(buf, NV21Size(stride, height))
}
