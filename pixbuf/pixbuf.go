// Package pixbuf provides an interleaved float32 pixel buffer with a fixed
// number of channels per pixel, and parallel per-pixel kernels over it.
package pixbuf

import (
	"fmt"
	"slices"

	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

// Buffer is an in-memory image of Width x Height pixels with Channels
// float32 components per pixel.
type Buffer struct {
	// Pix holds the pixel components. The pixel at (x, y) starts at
	// Pix[y*Stride() + x*Channels].
	Pix                     []float32
	Width, Height, Channels int
}

func New(width, height, channels int) *Buffer {
	if width < 0 || height < 0 || channels < 1 {
		panic(fmt.Sprintf("invalid buffer dimensions: %dx%dx%d", width, height, channels))
	}
	return &Buffer{
		Pix:      make([]float32, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// FromPix wraps existing pixel data without copying it.
func FromPix(pix []float32, width, height, channels int) (*Buffer, error) {
	if width < 0 || height < 0 || channels < 1 {
		return nil, fmt.Errorf("invalid buffer dimensions: %dx%dx%d", width, height, channels)
	}
	if expected := width * height * channels; expected != len(pix) {
		return nil, fmt.Errorf("the width, height and channels dont match the size of the pixel data: width=%d height=%d channels=%d sz=%d != %d", width, height, channels, len(pix), expected)
	}
	return &Buffer{Pix: pix, Width: width, Height: height, Channels: channels}, nil
}

// Stride is the number of components between vertically adjacent pixels.
func (b *Buffer) Stride() int { return b.Width * b.Channels }

func (b *Buffer) PixOffset(x, y int) int { return y*b.Stride() + x*b.Channels }

// At returns the components of the pixel at (x, y). The returned slice
// aliases the buffer.
func (b *Buffer) At(x, y int) []float32 {
	i := b.PixOffset(x, y)
	return b.Pix[i : i+b.Channels : i+b.Channels]
}

func (b *Buffer) Set(x, y int, vals ...float32) {
	copy(b.At(x, y), vals)
}

func (b *Buffer) Clone() *Buffer {
	return &Buffer{Pix: slices.Clone(b.Pix), Width: b.Width, Height: b.Height, Channels: b.Channels}
}

func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer{%dx%d channels: %d}", b.Width, b.Height, b.Channels)
}

// Kernel converts the components of a single pixel, src, into dst. dst and
// src never alias each other.
type Kernel func(dst, src []float32)

type mapConfig struct {
	workers int
}

type MapOption func(*mapConfig)

// WithWorkers sets the number of goroutines used by Map. Zero, the default,
// means one per CPU.
func WithWorkers(n int) MapOption {
	return func(c *mapConfig) { c.workers = max(0, n) }
}

// Map creates a new buffer with the same dimensions as src and the specified
// number of channels, filling it by running kernel on every pixel. Rows are
// processed in parallel.
func Map(src *Buffer, channels int, kernel Kernel, opts ...MapOption) (*Buffer, error) {
	cfg := mapConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	dst := New(src.Width, src.Height, channels)
	if src.Width == 0 || src.Height == 0 {
		return dst, nil
	}
	sc, dc := src.Channels, dst.Channels
	ss, ds := src.Stride(), dst.Stride()
	f := func(start, limit int) {
		for y := start; y < limit; y++ {
			row := src.Pix[ss*y : ss*(y+1)]
			drow := dst.Pix[ds*y : ds*(y+1)]
			for range src.Width {
				kernel(drow[0:dc:dc], row[0:sc:sc])
				row = row[sc:]
				drow = drow[dc:]
			}
		}
	}
	if err := parallel.Run_in_parallel_over_range(cfg.workers, f, 0, src.Height); err != nil {
		return nil, err
	}
	return dst, nil
}
