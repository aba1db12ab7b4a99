package trifract

import (
	"image"
	"image/color"

	"golang.org/x/exp/constraints"
)

// Grayscale converts the rendered canvas to a single channel image.
// The line art is black on white, so no color information is lost.
func Grayscale(src image.Image) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	if rgba, ok := src.(*image.RGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			si := rgba.PixOffset(b.Min.X, b.Min.Y+y)
			di := dst.PixOffset(0, y)
			for x := 0; x < b.Dx(); x++ {
				r, g, bl := rgba.Pix[si], rgba.Pix[si+1], rgba.Pix[si+2]
				lum := float32(r)*0.299 + float32(g)*0.587 + float32(bl)*0.114
				dst.Pix[di] = uint8(lum + 0.5)
				si += 4
				di++
			}
		}
		return dst
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dst.Set(x, y, color.GrayModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return dst
}

// Max returns the biggest of the provided values.
func Max[T constraints.Ordered](values ...T) T {
	var acc T = values[0]

	for _, v := range values {
		if v > acc {
			acc = v
		}
	}
	return acc
}
