// Package transform provides the NV21 frame transforms used by camera
// post-processing: rotation, RGBA conversion, in-place flip, plane split and
// box-filter downscaling.
//
// # Buffer Model
//
// Every transform works on caller-owned byte slices and explicit geometry.
// An NV21 frame with stride s and height h holds s*h luma bytes followed by
// s*h/2 bytes of interleaved (V,U) chroma pairs, one pair per 2x2 luma block:
//
//	buf := make([]byte, limits.NV21Size(stride, height))
//
// Chroma pairs always move as a unit; no transform separates the V and U
// bytes of a pair.
//
// # Rotation
//
// Rotate writes a rotated copy of a tightly packed frame. Width and height
// swap for 90 and 270 degrees:
//
//	out := make([]byte, len(in))
//	if err := transform.Rotate(in, 640, 480, transform.Rotate90, out); err != nil {
//	    return fmt.Errorf("rotate failed: %w", err)
//	}
//	// out is now a 480x640 frame
//
// # Color Conversion
//
// NV21ToRGBA produces packed RGBA using BT.601 video-range coefficients:
//
//	rgba := make([]byte, limits.RGBASize(width, height))
//	err := transform.NV21ToRGBA(in, rgba, width, height)
//
// NV21ToRGBA assumes stride == width. NV21ToRGBAStride accepts a padded
// stride and is otherwise identical.
//
// # Flip
//
// Flip mirrors a buffer in place and never touches the row padding:
//
//	err := transform.Flip(buf, stride, height, stride-width, true)
//
// FlipInPlace is the frame-level form.
//
// # Plane Split
//
// SplitPlanes copies the luma and chroma planes into separate buffers with
// an independent destination stride. MergePlanes reverses it.
//
// # Resize
//
// Resize downscales with a uniform R x R box filter after cropping the
// source to the target aspect, and returns R:
//
//	r, err := transform.Resize(in, out, 1920, 1080, 1920, 640, 480)
//	// r == 2, source cropped to 1280x960 around the centre
//
// # Errors
//
// Preconditions are checked before any buffer access. Failures wrap one of
// ErrInvalidGeometry, ErrBufferTooSmall, ErrUnsupportedAngle,
// ErrUpscaleNotSupported or ErrAliasedBuffers; classify them with errors.Is.
//
// # Thread Safety
//
// Transforms hold no state and allocate nothing, so concurrent calls on
// distinct buffers are safe. The caller must ensure no other goroutine
// reads or writes the buffers of a call while it runs. Only Flip and
// FlipInPlace may be given a single buffer as both input and output.
package transform
