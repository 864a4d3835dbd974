// Package limits provides centralized geometry constants and validation functions
// for NV21 frame buffers. Every transform runs these checks before it touches
// a buffer, so a bad width, stride or short slice is reported as an error
// instead of corrupting memory.
//
// # Frame Layout
//
// An NV21 frame with a given stride and height occupies:
//
//   - LumaSize (stride*height bytes): one byte per pixel, row-major.
//   - ChromaSize (stride*height/2 bytes): interleaved (V,U) pairs, one pair per
//     2x2 luma block, rows spaced by the same stride.
//
// NV21Size is the sum of the two. RGBASize gives the packed 4-bytes-per-pixel
// size of a converted image.
//
// # Validation Functions
//
//	err := limits.ValidateNV21Buffer(buf, width, height, stride)
//	if errors.Is(err, limits.ErrBufferTooSmall) {
//	    // Handle short buffer
//	}
//
// For custom sizes, use the generic ValidateBufferSize function:
//
//	err := limits.ValidateBufferSize(rgba, limits.RGBASize(width, height))
//
// # Error Types
//
//   - ErrInvalidGeometry: non-positive, odd or oversized dimensions, or a
//     stride narrower than the width
//   - ErrBufferTooSmall: a buffer shorter than the geometry requires
//
// Both are wrapped with the offending values; classify them with errors.Is.
package limits
