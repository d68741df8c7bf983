// Copyright 2019 Lanikai Labs. All rights reserved.

package color

import (
	"image"
)

// ToYUV420 returns src in planar 4:2:0 layout. A 4:2:0 image is returned as
// is; any other subsampling is converted into a newly allocated image, with
// each chroma sample the average of the source samples it covers.
func ToYUV420(src *image.YCbCr) *image.YCbCr {
	if src.SubsampleRatio == image.YCbCrSubsampleRatio420 {
		return src
	}

	r := src.Rect
	dst := image.NewYCbCr(r, image.YCbCrSubsampleRatio420)

	// Luma is never subsampled, copy row by row.
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(dst.Y[dst.YOffset(r.Min.X, y):dst.YOffset(r.Max.X-1, y)+1],
			src.Y[src.YOffset(r.Min.X, y):src.YOffset(r.Max.X-1, y)+1])
	}

	sumCb := make([]int, len(dst.Cb))
	sumCr := make([]int, len(dst.Cr))
	n := make([]int, len(dst.Cb))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			si, di := src.COffset(x, y), dst.COffset(x, y)
			sumCb[di] += int(src.Cb[si])
			sumCr[di] += int(src.Cr[si])
			n[di]++
		}
	}
	for i := range n {
		if n[i] > 0 {
			dst.Cb[i] = uint8((sumCb[i] + n[i]/2) / n[i])
			dst.Cr[i] = uint8((sumCr[i] + n[i]/2) / n[i])
		}
	}

	return dst
}

// PlaneSizes returns the byte size of the Y, Cb and Cr planes of a tightly
// packed 4:2:0 image of the given dimensions.
func PlaneSizes(width, height int) (y, c int) {
	cw, ch := (width+1)/2, (height+1)/2
	return width * height, cw * ch
}
