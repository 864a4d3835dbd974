package transform

import (
	"errors"

	"github.com/opd-ai/nv21/limits"
)

// Sentinel errors for transform operations.
// These errors enable reliable error classification using errors.Is().

// Geometry errors, shared with the limits package.
var (
	// ErrInvalidGeometry indicates dimensions, stride or gap that cannot
	// describe an NV21 frame.
	ErrInvalidGeometry = limits.ErrInvalidGeometry

	// ErrBufferTooSmall indicates an input or output buffer shorter than
	// the geometry requires.
	ErrBufferTooSmall = limits.ErrBufferTooSmall
)

// Operation errors.
var (
	// ErrUnsupportedAngle indicates a rotation other than 90, 180 or 270 degrees.
	ErrUnsupportedAngle = errors.New("unsupported angle")

	// ErrUpscaleNotSupported indicates a resize target larger than the source.
	ErrUpscaleNotSupported = errors.New("upscale not supported")

	// ErrAliasedBuffers indicates input and output share memory in a
	// transform that cannot run in place.
	ErrAliasedBuffers = errors.New("input and output buffers overlap")
)
