package transform

import (
	"fmt"

	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/limits"
	"github.com/sirupsen/logrus"
)

// BT.601 video-range coefficients.
const (
	coefY  = 1.164
	coefRV = 1.596
	coefGV = 0.813
	coefGU = 0.391
	coefBU = 2.018
)

// NV21ToRGBA converts a tightly packed NV21 frame to packed RGBA.
//
// out must hold width*height*4 bytes. Chroma for pixel (x, y) is read at
// width*height + (x rounded down to even) + (y/2)*width, which assumes
// stride == width. Use NV21ToRGBAStride for padded input.
func NV21ToRGBA(in, out []byte, width, height int) error {
	return convert("NV21ToRGBA", in, out, width, height, width)
}

// NV21ToRGBAStride converts an NV21 frame whose rows are stride bytes apart
// to packed RGBA. Both luma and chroma addressing honour stride; the output
// has no padding. With stride == width the result equals NV21ToRGBA.
func NV21ToRGBAStride(in, out []byte, width, height, stride int) error {
	return convert("NV21ToRGBAStride", in, out, width, height, stride)
}

func convert(function string, in, out []byte, width, height, stride int) error {
	src, err := frame.Wrap(in, width, height, stride)
	if err != nil {
		return reject(function, fmt.Errorf("input: %w", err),
			logrus.Fields{"width": width, "height": height, "stride": stride, "in_size": len(in)})
	}
	if err := limits.ValidateBufferSize(out, limits.RGBASize(width, height)); err != nil {
		return reject(function, fmt.Errorf("output: %w", err),
			logrus.Fields{"width": width, "height": height, "out_size": len(out)})
	}
	if overlaps(in, out) {
		return reject(function, ErrAliasedBuffers, logrus.Fields{})
	}

	i := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := toRGB(src.LumaAt(x, y), src.ChromaFor(x, y))
			out[i] = r
			out[i+1] = g
			out[i+2] = b
			out[i+3] = 0xFF
			i += limits.RGBABytesPerPixel
		}
	}
	return nil
}

// toRGB converts one luma sample and its chroma pair. Each channel is
// truncated toward zero and then clamped to [0, 255].
func toRGB(luma byte, p frame.ChromaPair) (r, g, b byte) {
	yv := coefY * float32(luma)
	v := float32(int(p.V) - 128)
	u := float32(int(p.U) - 128)

	r = clampByte(int(yv + coefRV*v))
	g = clampByte(int(yv - coefGV*v - coefGU*u))
	b = clampByte(int(yv + coefBU*u))
	return r, g, b
}
