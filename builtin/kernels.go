package builtin

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/kovidgoyal/colorpath/colorconv"
	"github.com/kovidgoyal/colorpath/colorspace"
	"github.com/kovidgoyal/colorpath/pixbuf"
)

var _ = fmt.Print

type kernel = pixbuf.Kernel

func transform(channels int, k kernel) colorspace.Transform {
	return func(b *pixbuf.Buffer) (*pixbuf.Buffer, error) {
		return pixbuf.Map(b, channels, k)
	}
}

// triple lifts a conversion of three float64 components into a kernel.
func triple(f func(a, b, c float64) (float64, float64, float64)) kernel {
	return func(dst, src []float32) {
		x, y, z := f(float64(src[0]), float64(src[1]), float64(src[2]))
		dst[0], dst[1], dst[2] = float32(x), float32(y), float32(z)
	}
}

func rgb(c colorful.Color) (float64, float64, float64) { return c.R, c.G, c.B }

// BT.601 luma, as used by JPEG
const (
	luma_r = 0.299
	luma_g = 0.587
	luma_b = 0.114
)

func rgb_to_gray(dst, src []float32) {
	dst[0] = luma_r*src[0] + luma_g*src[1] + luma_b*src[2]
}

func gray_to_rgb(dst, src []float32) {
	dst[0], dst[1], dst[2] = src[0], src[0], src[0]
}

func rgba_to_rgb(dst, src []float32) {
	copy(dst, src[:3])
}

func rgb_to_rgba(dst, src []float32) {
	copy(dst, src)
	dst[3] = 1
}

var rgb_to_linear = triple(func(r, g, b float64) (float64, float64, float64) {
	return colorful.Color{R: r, G: g, B: b}.LinearRgb()
})

var linear_to_rgb = triple(func(r, g, b float64) (float64, float64, float64) {
	return rgb(colorful.LinearRgb(r, g, b))
})

var rgb_to_hsv = triple(func(r, g, b float64) (float64, float64, float64) {
	return colorful.Color{R: r, G: g, B: b}.Hsv()
})

var hsv_to_rgb = triple(func(h, s, v float64) (float64, float64, float64) {
	return rgb(colorful.Hsv(h, s, v))
})

var rgb_to_hsl = triple(func(r, g, b float64) (float64, float64, float64) {
	return colorful.Color{R: r, G: g, B: b}.Hsl()
})

var hsl_to_rgb = triple(func(h, s, l float64) (float64, float64, float64) {
	return rgb(colorful.Hsl(h, s, l))
})

func rgb_to_cmyk(dst, src []float32) {
	r, g, b := src[0], src[1], src[2]
	k := 1 - max(r, g, b)
	if k >= 1 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 1
		return
	}
	d := 1 - k
	dst[0], dst[1], dst[2], dst[3] = (d-r)/d, (d-g)/d, (d-b)/d, k
}

func cmyk_to_rgb(dst, src []float32) {
	k := 1 - src[3]
	dst[0], dst[1], dst[2] = (1-src[0])*k, (1-src[1])*k, (1-src[2])*k
}

// analog BT.601 YUV
const (
	yuv_u = 0.492111
	yuv_v = 0.877283
)

func rgb_to_yuv(dst, src []float32) {
	y := luma_r*src[0] + luma_g*src[1] + luma_b*src[2]
	dst[0], dst[1], dst[2] = y, yuv_u*(src[2]-y), yuv_v*(src[0]-y)
}

func yuv_to_rgb(dst, src []float32) {
	y := src[0]
	r := y + src[2]/yuv_v
	b := y + src[1]/yuv_u
	dst[0], dst[1], dst[2] = r, (y-luma_r*r-luma_b*b)/luma_g, b
}

var linear_to_xyz = triple(colorful.LinearRgbToXyz)

var xyz_to_linear = triple(colorful.XyzToLinearRgb)

// go-colorful uses L in [0, 1], scale to the usual CIE ranges
func scale100(f func(a, b, c float64) (float64, float64, float64)) func(a, b, c float64) (float64, float64, float64) {
	return func(a, b, c float64) (float64, float64, float64) {
		x, y, z := f(a, b, c)
		return x * 100, y * 100, z * 100
	}
}

func unscale100(f func(a, b, c float64) (float64, float64, float64)) func(a, b, c float64) (float64, float64, float64) {
	return func(a, b, c float64) (float64, float64, float64) {
		return f(a/100, b/100, c/100)
	}
}

var xyz_to_lab = triple(scale100(colorful.XyzToLab))

var lab_to_xyz = triple(unscale100(colorful.LabToXyz))

var xyz_to_luv = triple(scale100(colorful.XyzToLuv))

var luv_to_xyz = triple(unscale100(colorful.LuvToXyz))

var lab_to_lch = triple(func(l, a, b float64) (float64, float64, float64) {
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return l, math.Hypot(a, b), h
})

var lch_to_lab = triple(func(l, c, h float64) (float64, float64, float64) {
	s, co := math.Sincos(h * math.Pi / 180)
	return l, c * co, c * s
})

var xyz_d65_to_d50 = triple(colorconv.XYZD65ToD50)

var xyz_d50_to_d65 = triple(colorconv.XYZD50ToD65)

var xyz_d50_to_lab_d50 = triple(colorconv.XYZToLab)

var lab_d50_to_xyz_d50 = triple(func(l, a, b float64) (float64, float64, float64) {
	v := colorconv.LabToXYZ(l, a, b)
	return v[0], v[1], v[2]
})

var lab_d50_to_rgb = triple(colorconv.LabToSRGB)

var xyz_d50_to_rgb = triple(colorconv.XYZToSRGB)
