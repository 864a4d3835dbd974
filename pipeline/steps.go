package pipeline

import (
	"fmt"

	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/limits"
	"github.com/opd-ai/nv21/transform"
	"github.com/sirupsen/logrus"
)

// RotateStep rotates frames clockwise by a fixed angle.
type RotateStep struct {
	degrees int
}

// NewRotateStep creates a rotation step.
// degrees: 90, 180 or 270; other values fail when the step is applied
func NewRotateStep(degrees int) *RotateStep {
	return &RotateStep{degrees: degrees}
}

// Apply returns a rotated copy of f.
func (rs *RotateStep) Apply(f frame.Frame) (frame.Frame, error) {
	if err := f.Validate(); err != nil {
		return frame.Frame{}, err
	}

	src := f
	if f.Stride != f.Width {
		src = f.Clone()
	}

	w, h := transform.RotatedSize(f.Width, f.Height, rs.degrees)
	dst := frame.Frame{
		Width:  w,
		Height: h,
		Stride: w,
		Data:   make([]byte, limits.NV21Size(w, h)),
	}
	if err := transform.RotateFrame(src, dst, rs.degrees); err != nil {
		return frame.Frame{}, err
	}
	return dst, nil
}

// GetName returns the step name.
func (rs *RotateStep) GetName() string {
	return fmt.Sprintf("Rotate(%d)", rs.degrees)
}

// FlipStep mirrors frames along one axis.
type FlipStep struct {
	axis transform.Axis
}

// NewFlipStep creates a flip step.
func NewFlipStep(axis transform.Axis) *FlipStep {
	return &FlipStep{axis: axis}
}

// Apply returns a mirrored copy of f.
func (fs *FlipStep) Apply(f frame.Frame) (frame.Frame, error) {
	if err := f.Validate(); err != nil {
		return frame.Frame{}, err
	}

	result := f.Clone()
	if err := transform.FlipInPlace(result, fs.axis); err != nil {
		return frame.Frame{}, err
	}
	return result, nil
}

// GetName returns the step name.
func (fs *FlipStep) GetName() string {
	return fmt.Sprintf("Flip(%s)", fs.axis)
}

// ResizeStep downscales frames to a fixed target size.
type ResizeStep struct {
	width  int
	height int
}

// NewResizeStep creates a box-filter downscale step.
func NewResizeStep(width, height int) *ResizeStep {
	return &ResizeStep{width: width, height: height}
}

// Apply returns a downscaled copy of f.
func (rs *ResizeStep) Apply(f frame.Frame) (frame.Frame, error) {
	if err := limits.ValidateDimensions(rs.width, rs.height); err != nil {
		return frame.Frame{}, err
	}

	dst := frame.Frame{
		Width:  rs.width,
		Height: rs.height,
		Stride: rs.width,
		Data:   make([]byte, limits.NV21Size(rs.width, rs.height)),
	}
	ratio, err := transform.Resize(f.Data, dst.Data, f.Width, f.Height, f.Stride, rs.width, rs.height)
	if err != nil {
		return frame.Frame{}, err
	}

	logrus.WithFields(logrus.Fields{
		"function": "ResizeStep.Apply",
		"input":    f.String(),
		"output":   dst.String(),
		"box_size": ratio,
	}).Debug("Frame downscaled")

	return dst, nil
}

// GetName returns the step name.
func (rs *ResizeStep) GetName() string {
	return fmt.Sprintf("Resize(%dx%d)", rs.width, rs.height)
}

// ToRGBA converts f to packed RGBA, honouring its stride.
func ToRGBA(f frame.Frame) ([]byte, error) {
	out := make([]byte, limits.RGBASize(f.Width, f.Height))
	if err := transform.NV21ToRGBAStride(f.Data, out, f.Width, f.Height, f.Stride); err != nil {
		return nil, err
	}
	return out, nil
}

// SplitPlanes returns tightly packed copies of the luma and chroma planes of f.
func SplitPlanes(f frame.Frame) (y, vu []byte, err error) {
	y = make([]byte, limits.LumaSize(f.Width, f.Height))
	vu = make([]byte, limits.ChromaSize(f.Width, f.Height))
	if err := transform.SplitPlanes(f.Data, y, vu, f.Width, f.Height, f.Stride, f.Width); err != nil {
		return nil, nil, err
	}
	return y, vu, nil
}
