package transform

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate_FourQuarterTurnsIsIdentity(t *testing.T) {
	sizes := [][2]int{{4, 4}, {8, 6}, {6, 10}, {64, 48}}

	for _, s := range sizes {
		w, h := s[0], s[1]
		src := createTestFrame(w, h)

		r1 := rotated(src, w, h, Rotate90)
		r2 := rotated(r1, h, w, Rotate90)
		r3 := rotated(r2, w, h, Rotate90)
		r4 := rotated(r3, h, w, Rotate90)

		assert.Equal(t, src, r4, "%dx%d", w, h)
		assert.NotEqual(t, src, r1, "%dx%d", w, h)
	}
}

func TestRotate_180EqualsTwoQuarterTurns(t *testing.T) {
	w, h := 8, 6
	src := createTestFrame(w, h)

	twice := rotated(rotated(src, w, h, Rotate90), h, w, Rotate90)
	assert.Equal(t, twice, rotated(src, w, h, Rotate180))
}

func TestRotate_270InvertsRotate90(t *testing.T) {
	w, h := 10, 4
	src := createTestFrame(w, h)

	back := rotated(rotated(src, w, h, Rotate90), h, w, Rotate270)
	assert.Equal(t, src, back)
}

func TestRotate_180ConcreteFrame(t *testing.T) {
	// 4x4 luma (0..15) followed by 4x2 chroma bytes (16..23)
	src := sequentialFrame(4, 4)
	require.Len(t, src, 24)

	out := rotated(src, 4, 4, Rotate180)

	expected := []byte{
		15, 14, 13, 12,
		11, 10, 9, 8,
		7, 6, 5, 4,
		3, 2, 1, 0,
		// pairs reversed, bytes within each pair kept in order
		22, 23, 20, 21,
		18, 19, 16, 17,
	}
	assert.Equal(t, expected, out)
}

func TestRotate_90ConcreteFrame(t *testing.T) {
	// 4x2 luma (0..7) followed by one chroma row of two pairs (8..11)
	src := sequentialFrame(4, 2)

	out := rotated(src, 4, 2, Rotate90)

	expected := []byte{
		4, 0,
		5, 1,
		6, 2,
		7, 3,
		8, 9,
		10, 11,
	}
	assert.Equal(t, expected, out)
}

func TestRotate_270ConcreteFrame(t *testing.T) {
	src := sequentialFrame(4, 2)

	out := rotated(src, 4, 2, Rotate270)

	expected := []byte{
		3, 7,
		2, 6,
		1, 5,
		0, 4,
		10, 11,
		8, 9,
	}
	assert.Equal(t, expected, out)
}

func TestRotate_UnsupportedAngleLeavesOutputUntouched(t *testing.T) {
	src := createTestFrame(4, 4)

	for _, degrees := range []int{0, 45, -90, 360, 450} {
		out := bytes.Repeat([]byte{0xAB}, len(src))
		err := Rotate(src, 4, 4, degrees, out)

		assert.ErrorIs(t, err, ErrUnsupportedAngle, "degrees %d", degrees)
		assert.Equal(t, bytes.Repeat([]byte{0xAB}, len(src)), out, "degrees %d", degrees)
	}
}

func TestRotate_ErrorCases(t *testing.T) {
	src := createTestFrame(8, 4)

	tests := []struct {
		name        string
		in          []byte
		width       int
		height      int
		out         []byte
		expectedErr error
	}{
		{"short input", src[:40], 8, 4, make([]byte, 48), ErrBufferTooSmall},
		{"short output", src, 8, 4, make([]byte, 47), ErrBufferTooSmall},
		{"odd width", src, 7, 4, make([]byte, 48), ErrInvalidGeometry},
		{"zero height", src, 8, 0, make([]byte, 48), ErrInvalidGeometry},
		{"same buffer", src, 8, 4, src, ErrAliasedBuffers},
		{"overlapping halves", src, 2, 2, src[2:], ErrAliasedBuffers},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Rotate(tt.in, tt.width, tt.height, Rotate90, tt.out)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestRotatedSize(t *testing.T) {
	w, h := RotatedSize(640, 480, Rotate90)
	assert.Equal(t, [2]int{480, 640}, [2]int{w, h})

	w, h = RotatedSize(640, 480, Rotate180)
	assert.Equal(t, [2]int{640, 480}, [2]int{w, h})

	w, h = RotatedSize(640, 480, Rotate270)
	assert.Equal(t, [2]int{480, 640}, [2]int{w, h})
}

func BenchmarkRotate90(b *testing.B) {
	src := createTestFrame(1280, 720)
	out := make([]byte, len(src))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Rotate(src, 1280, 720, Rotate90, out)
	}
}
