package pixbuf

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var _ = fmt.Print

func to_unit(v uint8) float32 { return float32(v) / math.MaxUint8 }

func from_unit(v float32) uint8 {
	return uint8(math.Round(float64(max(0, min(v, 1))) * math.MaxUint8))
}

// FromImage copies an image into a new buffer with components in [0, 1].
// Grayscale images produce one channel, fully opaque images three (R, G, B)
// and everything else four (R, G, B, A, non-premultiplied).
func FromImage(img image.Image) *Buffer {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	switch src := img.(type) {
	case *image.Gray:
		ans := New(width, height, 1)
		for y := range height {
			row := src.Pix[src.Stride*y : src.Stride*y+width]
			drow := ans.Pix[ans.Stride()*y:]
			for x, v := range row {
				drow[x] = to_unit(v)
			}
		}
		return ans
	case *image.Gray16:
		ans := New(width, height, 1)
		for y := range height {
			for x := range width {
				ans.Pix[ans.PixOffset(x, y)] = float32(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y) / math.MaxUint16
			}
		}
		return ans
	}
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}
	channels := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}
	ans := New(width, height, channels)
	for y := range height {
		row := nrgba.Pix[nrgba.Stride*y:]
		drow := ans.Pix[ans.Stride()*y:]
		for range width {
			for c := range channels {
				drow[c] = to_unit(row[c])
			}
			row = row[4:]
			drow = drow[channels:]
		}
	}
	return ans
}

// Image converts the buffer into an 8-bit image, clipping components to
// [0, 1]. Only buffers with 1 (gray), 3 (RGB) or 4 (RGBA) channels can be
// converted.
func (b *Buffer) Image() (image.Image, error) {
	r := image.Rect(0, 0, b.Width, b.Height)
	switch b.Channels {
	case 1:
		ans := image.NewGray(r)
		for y := range b.Height {
			row := b.Pix[b.Stride()*y : b.Stride()*(y+1)]
			drow := ans.Pix[ans.Stride*y:]
			for x, v := range row {
				drow[x] = from_unit(v)
			}
		}
		return ans, nil
	case 3, 4:
		ans := image.NewNRGBA(r)
		for y := range b.Height {
			row := b.Pix[b.Stride()*y:]
			drow := ans.Pix[ans.Stride*y:]
			for range b.Width {
				drow[0], drow[1], drow[2], drow[3] = from_unit(row[0]), from_unit(row[1]), from_unit(row[2]), math.MaxUint8
				if b.Channels == 4 {
					drow[3] = from_unit(row[3])
				}
				row = row[b.Channels:]
				drow = drow[4:]
			}
		}
		return ans, nil
	}
	return nil, fmt.Errorf("cannot create an image from a buffer with %d channels", b.Channels)
}

// Decode reads an image in any of the supported formats (PNG, JPEG, GIF,
// BMP, TIFF, WEBP) and returns it as a buffer along with the format name.
func Decode(r io.Reader) (*Buffer, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	return FromImage(img), format, nil
}
