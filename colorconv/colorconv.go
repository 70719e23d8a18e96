// Package colorconv implements the CIE XYZ and L*a*b* math that is relative
// to the D50 white point, used by ICC profile connection spaces, along with
// Bradford chromatic adaptation between D50 and D65.
//
// Lab values are the usual CIELAB ranges (L in [0,100], a and b roughly
// [-128,127]). XYZ values are normalized so that Y of the white point is 1.
package colorconv

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type Vec3 [3]float64
type Mat3 [3][3]float64

// Reference whites normalized so Y = 1. WhiteD50 uses the Z value from the
// ICC profile connection space rather than the CIE one.
var (
	WhiteD50 = Vec3{0.96422, 1.00000, 0.82491}
	WhiteD65 = Vec3{0.95047, 1.00000, 1.08883}
)

var bradford = Mat3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

var (
	invBradford   = invMat3(bradford)
	adaptD50ToD65 = chromaticAdaptationMatrix(WhiteD50, WhiteD65)
	adaptD65ToD50 = chromaticAdaptationMatrix(WhiteD65, WhiteD50)
)

// XYZD50ToD65 adapts XYZ relative to D50 to XYZ relative to D65.
func XYZD50ToD65(X, Y, Z float64) (float64, float64, float64) {
	return mulMat3Vec(adaptD50ToD65, Vec3{X, Y, Z})
}

// XYZD65ToD50 adapts XYZ relative to D65 to XYZ relative to D50.
func XYZD65ToD50(X, Y, Z float64) (float64, float64, float64) {
	return mulMat3Vec(adaptD65ToD50, Vec3{X, Y, Z})
}

// LabToSRGB converts Lab (D50) into gamma encoded sRGB (D65). Out of gamut
// colors are mapped into gamut by reducing chroma while keeping L, so the
// returned components are always in [0,1].
func LabToSRGB(L, a, b float64) (r, g, bl float64) {
	r, g, bl = labToSRGBNoGamutMap(L, a, b)
	if inGamut(r, g, bl) {
		return
	}
	return gamutMapChromaScale(L, a, b)
}

// LabToLinearRGB converts Lab (D50) to linear sRGB (D65). The result may be
// outside [0,1]. The XYZ to RGB matrix is the one go-colorful uses, so this
// agrees with conversions done through colorful.XyzToLinearRgb.
func LabToLinearRGB(L, a, b float64) (r, g, bl float64) {
	return colorful.XyzToLinearRgb(mulMat3Vec(adaptD50ToD65, LabToXYZ(L, a, b)))
}

// XYZToSRGB converts XYZ (D50) to gamma encoded sRGB (D65) via Lab so that
// out of gamut colors are chroma mapped rather than clipped.
func XYZToSRGB(X, Y, Z float64) (r, g, b float64) {
	return LabToSRGB(XYZToLab(X, Y, Z))
}

func labToSRGBNoGamutMap(L, a, b float64) (r, g, bl float64) {
	r, g, bl = LabToLinearRGB(L, a, b)
	return linearToSRGBComp(r), linearToSRGBComp(g), linearToSRGBComp(bl)
}

const delta = 6.0 / 29.0

func finv(t float64) float64 {
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

func ff(t float64) float64 {
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

// LabToXYZ converts Lab (D50) to XYZ relative to D50.
func LabToXYZ(L, a, b float64) Vec3 {
	fy := (L + 16.0) / 116.0
	fx := fy + (a / 500.0)
	fz := fy - (b / 200.0)
	return Vec3{finv(fx) * WhiteD50[0], finv(fy) * WhiteD50[1], finv(fz) * WhiteD50[2]}
}

// XYZToLab converts XYZ relative to D50 into Lab (D50).
func XYZToLab(X, Y, Z float64) (L, a, b float64) {
	fx := ff(X / WhiteD50[0])
	fy := ff(Y / WhiteD50[1])
	fz := ff(Z / WhiteD50[2])
	return 116.0*fy - 16.0, 500.0 * (fx - fy), 200.0 * (fy - fz)
}

// linearToSRGBComp applies sRGB companding, treating negatives as zero.
func linearToSRGBComp(c float64) float64 {
	if c <= 0 {
		return 0.0
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

func inGamut(r, g, b float64) bool {
	const eps = 1e-12
	return r >= -eps && g >= -eps && b >= -eps && r <= 1+eps && g <= 1+eps && b <= 1+eps
}

// gamutMapChromaScale binary searches for the largest s in [0,1] such that
// Lab(L, s*a, s*b) is inside the sRGB gamut.
func gamutMapChromaScale(L, a, b float64) (r, g, bl float64) {
	if a == 0 && b == 0 {
		r, g, bl = labToSRGBNoGamutMap(L, a, b)
		return clamp01(r), clamp01(g), clamp01(bl)
	}
	lo, hi := 0.0, 1.0
	var foundR, foundG, foundB float64
	for range 24 {
		mid := (lo + hi) / 2.0
		r0, g0, b0 := labToSRGBNoGamutMap(L, a*mid, b*mid)
		if inGamut(r0, g0, b0) {
			foundR, foundG, foundB = r0, g0, b0
			lo = mid
		} else {
			hi = mid
		}
	}
	if !inGamut(foundR, foundG, foundB) {
		r, g, bl = labToSRGBNoGamutMap(L, 0, 0)
		return clamp01(r), clamp01(g), clamp01(bl)
	}
	return clamp01(foundR), clamp01(foundG), clamp01(foundB)
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func mulMat3Vec(m Mat3, v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}

func invMat3(m Mat3) Mat3 {
	c00 := m[1][1]*m[2][2] - m[1][2]*m[2][1]
	c01 := m[1][2]*m[2][0] - m[1][0]*m[2][2]
	c02 := m[1][0]*m[2][1] - m[1][1]*m[2][0]
	det := m[0][0]*c00 + m[0][1]*c01 + m[0][2]*c02
	return Mat3{
		{c00 / det, (m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det, (m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det},
		{c01 / det, (m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det, (m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det},
		{c02 / det, (m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det, (m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det},
	}
}

// chromaticAdaptationMatrix returns invBradford * diag(target/source) *
// bradford, adapting XYZ from sourceWhite to targetWhite.
func chromaticAdaptationMatrix(sourceWhite, targetWhite Vec3) Mat3 {
	srcL, srcM, srcS := mulMat3Vec(bradford, sourceWhite)
	tgtL, tgtM, tgtS := mulMat3Vec(bradford, targetWhite)
	diag := Mat3{
		{tgtL / srcL, 0, 0},
		{0, tgtM / srcM, 0},
		{0, 0, tgtS / srcS},
	}
	return mulMat3(invBradford, mulMat3(diag, bradford))
}
