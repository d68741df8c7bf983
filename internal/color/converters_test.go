package color

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestYUV420Passthrough(t *testing.T) {
	src := image.NewYCbCr(image.Rect(0, 0, 16, 8), image.YCbCrSubsampleRatio420)
	assert.Same(t, src, ToYUV420(src))
}

func TestYUV444ToYUV420(t *testing.T) {
	r := image.Rect(0, 0, 1280, 720)
	src := image.NewYCbCr(r, image.YCbCrSubsampleRatio444)

	for i := range src.Y {
		src.Y[i] = byte(i)
	}
	// Each 2x2 block holds chroma values 10, 20, 30, 40 (average 25).
	for y := 0; y < 720; y++ {
		for x := 0; x < 1280; x++ {
			v := byte(10 * (1 + x%2 + 2*(y%2)))
			src.Cb[src.COffset(x, y)] = v
			src.Cr[src.COffset(x, y)] = 255 - v
		}
	}

	dst := ToYUV420(src)
	assert.Equal(t, image.YCbCrSubsampleRatio420, dst.SubsampleRatio)
	assert.Equal(t, r, dst.Rect)

	// Verify luma
	for i := 0; i < 1280*720; i++ {
		if dst.Y[i] != byte(i) {
			t.Fatalf("luma mismatch at %d", i)
		}
	}

	// Verify chroma
	ySize, cSize := PlaneSizes(1280, 720)
	assert.Equal(t, ySize, len(dst.Y))
	assert.Equal(t, cSize, len(dst.Cb))
	for i := range dst.Cb {
		if dst.Cb[i] != 25 || dst.Cr[i] != 230 {
			t.Fatalf("chroma mismatch at %d: %d %d", i, dst.Cb[i], dst.Cr[i])
		}
	}
}

func TestYUV422ToYUV420OddSize(t *testing.T) {
	r := image.Rect(0, 0, 5, 3)
	src := image.NewYCbCr(r, image.YCbCrSubsampleRatio422)
	for i := range src.Cb {
		src.Cb[i] = 100
		src.Cr[i] = 200
	}

	dst := ToYUV420(src)
	_, cSize := PlaneSizes(5, 3)
	assert.Len(t, dst.Cb, cSize)
	for i := range dst.Cb {
		assert.Equal(t, uint8(100), dst.Cb[i])
		assert.Equal(t, uint8(200), dst.Cr[i])
	}
}
