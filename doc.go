/*
Package colorpath converts pixel buffers between color spaces that have no
direct conversion between them.

A Catalog (see the colorspace package) holds color spaces and the directed,
costed rules converting between pairs of them. A Converter finds the cheapest
chain of rules from one color space to another and applies it, checking that
the buffer has the channel count of the input color space before the chain
runs and of the output color space after it.

The builtin package provides a ready made catalog covering the common color
spaces: Gray, RGB, RGBA, linear RGB, HSV, HSL, CMYK, YUV, XYZ, L*a*b*, L*Ch,
L*u*v* and the D50 relative XYZ and L*a*b* used by ICC profiles.
*/
package colorpath
