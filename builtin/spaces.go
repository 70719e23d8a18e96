// Package builtin provides a catalog of commonly used color spaces and the
// conversions between them.
//
// All components are float32. RGB like spaces, CMYK, gray and alpha use
// [0, 1]. Hue channels are in degrees [0, 360). L*a*b*, L*Ch and L*u*v* use
// the CIE ranges, L in [0, 100]. XYZ has Y = 1 for the reference white.
package builtin

import (
	"fmt"
	"sync"

	"github.com/kovidgoyal/colorpath"
	"github.com/kovidgoyal/colorpath/colorspace"
)

var _ = fmt.Print

var (
	Gray      = colorspace.ColorSpace{ID: 0, Name: "Gray", Channels: 1}
	RGB       = colorspace.ColorSpace{ID: 1, Name: "RGB", Channels: 3}
	RGBA      = colorspace.ColorSpace{ID: 2, Name: "RGBA", Channels: 4}
	LinearRGB = colorspace.ColorSpace{ID: 3, Name: "Linear RGB", Channels: 3}
	HSV       = colorspace.ColorSpace{ID: 4, Name: "HSV", Channels: 3}
	HSL       = colorspace.ColorSpace{ID: 5, Name: "HSL", Channels: 3}
	CMYK      = colorspace.ColorSpace{ID: 6, Name: "CMYK", Channels: 4}
	YUV       = colorspace.ColorSpace{ID: 7, Name: "YUV", Channels: 3}
	XYZ       = colorspace.ColorSpace{ID: 8, Name: "XYZ", Channels: 3}
	Lab       = colorspace.ColorSpace{ID: 9, Name: "L*a*b*", Channels: 3}
	LCh       = colorspace.ColorSpace{ID: 10, Name: "L*Ch", Channels: 3}
	Luv       = colorspace.ColorSpace{ID: 11, Name: "L*u*v*", Channels: 3}
	XYZD50    = colorspace.ColorSpace{ID: 12, Name: "XYZ (D50)", Channels: 3}
	LabD50    = colorspace.ColorSpace{ID: 13, Name: "L*a*b* (D50)", Channels: 3}
)

var spaces = []colorspace.ColorSpace{
	Gray, RGB, RGBA, LinearRGB, HSV, HSL, CMYK, YUV, XYZ, Lab, LCh, Luv, XYZD50, LabD50,
}

func rule(in, out colorspace.ColorSpace, cost int, k kernel) colorspace.Rule {
	return colorspace.Rule{Input: in, Output: out, Cost: cost, Transform: transform(out.Channels, k)}
}

// Lossy conversions, and the expensive ones, cost more so that routes
// prefer lossless and cheap intermediates.
var rules = []colorspace.Rule{
	rule(RGB, Gray, 1, rgb_to_gray),
	rule(Gray, RGB, 1, gray_to_rgb),
	rule(RGBA, RGB, 1, rgba_to_rgb),
	rule(RGB, RGBA, 1, rgb_to_rgba),

	rule(RGB, LinearRGB, 1, rgb_to_linear),
	rule(LinearRGB, RGB, 1, linear_to_rgb),
	rule(RGB, HSV, 1, rgb_to_hsv),
	rule(HSV, RGB, 1, hsv_to_rgb),
	rule(RGB, HSL, 1, rgb_to_hsl),
	rule(HSL, RGB, 1, hsl_to_rgb),
	rule(RGB, CMYK, 1, rgb_to_cmyk),
	rule(CMYK, RGB, 1, cmyk_to_rgb),
	rule(RGB, YUV, 1, rgb_to_yuv),
	rule(YUV, RGB, 1, yuv_to_rgb),

	rule(LinearRGB, XYZ, 1, linear_to_xyz),
	rule(XYZ, LinearRGB, 1, xyz_to_linear),
	rule(XYZ, Lab, 1, xyz_to_lab),
	rule(Lab, XYZ, 1, lab_to_xyz),
	rule(Lab, LCh, 1, lab_to_lch),
	rule(LCh, Lab, 1, lch_to_lab),
	rule(XYZ, Luv, 1, xyz_to_luv),
	rule(Luv, XYZ, 1, luv_to_xyz),

	rule(XYZ, XYZD50, 1, xyz_d65_to_d50),
	rule(XYZD50, XYZ, 1, xyz_d50_to_d65),
	rule(XYZD50, LabD50, 1, xyz_d50_to_lab_d50),
	rule(LabD50, XYZD50, 1, lab_d50_to_xyz_d50),
	// gamut mapped, unlike the route through linear RGB which clips
	rule(LabD50, RGB, 2, lab_d50_to_rgb),
	rule(XYZD50, RGB, 2, xyz_d50_to_rgb),
}

// Catalog returns the builtin catalog. It is created once and shared.
var Catalog = sync.OnceValue(func() *colorspace.Catalog {
	ans, err := colorspace.NewCatalog(spaces, rules)
	if err != nil {
		panic(fmt.Sprintf("the builtin color space catalog is invalid: %s", err))
	}
	return ans
})

// NewConverter returns a converter for the builtin catalog.
func NewConverter(opts ...colorpath.Option) *colorpath.Converter {
	return colorpath.New(Catalog(), opts...)
}

// Converter returns a shared converter for the builtin catalog with the
// default options.
var Converter = sync.OnceValue(func() *colorpath.Converter { return NewConverter() })
