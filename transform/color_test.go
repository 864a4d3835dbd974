package transform

import (
	"testing"

	"github.com/opd-ai/nv21/frame"
	"github.com/opd-ai/nv21/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformFrame(width, height int, luma byte, chroma frame.ChromaPair) []byte {
	f, err := frame.New(width, height)
	if err != nil {
		panic(err)
	}
	for i := range f.LumaPlane() {
		f.Data[i] = luma
	}
	for cy := 0; cy < f.ChromaHeight(); cy++ {
		for cx := 0; cx < f.ChromaWidth(); cx++ {
			f.SetChromaPair(cx, cy, chroma)
		}
	}
	return f.Data
}

func TestNV21ToRGBA_UniformColors(t *testing.T) {
	tests := []struct {
		name    string
		luma    byte
		chroma  frame.ChromaPair
		r, g, b byte
	}{
		{"black level", 16, frame.Neutral, 18, 18, 18},
		{"zero luma", 0, frame.Neutral, 0, 0, 0},
		{"mid grey", 128, frame.Neutral, 148, 148, 148},
		{"saturated chroma", 0, frame.ChromaPair{V: 255, U: 255}, 202, 0, 255},
		{"negative chroma", 200, frame.ChromaPair{V: 0, U: 0}, 28, 255, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := uniformFrame(4, 4, tt.luma, tt.chroma)
			out := make([]byte, limits.RGBASize(4, 4))

			require.NoError(t, NV21ToRGBA(in, out, 4, 4))

			for p := 0; p < 16; p++ {
				assert.Equal(t, []byte{tt.r, tt.g, tt.b, 255}, out[p*4:p*4+4], "pixel %d", p)
			}
		})
	}
}

func TestNV21ToRGBA_BrightLumaClampsWithoutWraparound(t *testing.T) {
	in := uniformFrame(2, 2, 235, frame.Neutral)
	out := make([]byte, limits.RGBASize(2, 2))

	require.NoError(t, NV21ToRGBA(in, out, 2, 2))

	for c := 0; c < 3; c++ {
		assert.GreaterOrEqual(t, out[c], byte(230))
	}
	assert.Equal(t, out[0], out[1])
	assert.Equal(t, out[1], out[2])
	assert.Equal(t, byte(255), out[3])
}

func TestNV21ToRGBA_ChromaBlockAddressing(t *testing.T) {
	f, err := frame.New(4, 4)
	require.NoError(t, err)
	for i := range f.LumaPlane() {
		f.Data[i] = 100
	}
	// Only the block covering (2..3, 2..3) gets colour
	f.SetChromaPair(1, 1, frame.ChromaPair{V: 200, U: 60})

	out := make([]byte, limits.RGBASize(4, 4))
	require.NoError(t, NV21ToRGBA(f.Data, out, 4, 4))

	pixel := func(x, y int) []byte { return out[(y*4+x)*4 : (y*4+x)*4+4] }
	grey := pixel(0, 0)
	assert.Equal(t, grey, pixel(1, 1))
	assert.Equal(t, grey, pixel(3, 1))
	assert.Equal(t, grey, pixel(1, 3))

	tinted := pixel(2, 2)
	assert.NotEqual(t, grey, tinted)
	assert.Equal(t, tinted, pixel(3, 2))
	assert.Equal(t, tinted, pixel(2, 3))
	assert.Equal(t, tinted, pixel(3, 3))
	assert.Greater(t, tinted[0], grey[0])
}

func TestNV21ToRGBAStride_MatchesTightConversion(t *testing.T) {
	w, h := 6, 4
	tight := createTestFrame(w, h)
	padded := createPaddedFrame(w, h, 10, 0xEE)

	want := make([]byte, limits.RGBASize(w, h))
	require.NoError(t, NV21ToRGBA(tight, want, w, h))

	sameStride := make([]byte, len(want))
	require.NoError(t, NV21ToRGBAStride(tight, sameStride, w, h, w))
	assert.Equal(t, want, sameStride)

	fromPadded := make([]byte, len(want))
	require.NoError(t, NV21ToRGBAStride(padded, fromPadded, w, h, 10))
	assert.Equal(t, want, fromPadded)
}

func TestNV21ToRGBA_ErrorCases(t *testing.T) {
	in := createTestFrame(4, 4)

	tests := []struct {
		name        string
		in          []byte
		out         []byte
		width       int
		height      int
		expectedErr error
	}{
		{"short input", in[:20], make([]byte, 64), 4, 4, ErrBufferTooSmall},
		{"short output", in, make([]byte, 63), 4, 4, ErrBufferTooSmall},
		{"odd height", in, make([]byte, 64), 4, 3, ErrInvalidGeometry},
		{"negative width", in, make([]byte, 64), -4, 4, ErrInvalidGeometry},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NV21ToRGBA(tt.in, tt.out, tt.width, tt.height)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestNV21ToRGBA_AliasedBuffers(t *testing.T) {
	buf := make([]byte, 128)
	err := NV21ToRGBA(buf[:24], buf[16:80], 4, 4)
	assert.ErrorIs(t, err, ErrAliasedBuffers)
}

func BenchmarkNV21ToRGBA(b *testing.B) {
	in := createTestFrame(1280, 720)
	out := make([]byte, limits.RGBASize(1280, 720))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NV21ToRGBA(in, out, 1280, 720)
	}
}
