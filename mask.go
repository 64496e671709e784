package edt

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

// Mask is a binary occupancy grid stored in row-major order.
type Mask struct {
	width  int
	height int
	data   []bool
}

// NewMask creates an empty mask with the given dimensions.
func NewMask(width, height int) (*Mask, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]bool, width*height),
	}, nil
}

// MaskFromImage creates a mask from the luminance of img. A pixel
// is filled if its 8 bit gray value is at least threshold.
func MaskFromImage(img image.Image, threshold uint8) (*Mask, error) {
	bounds := img.Bounds()
	m, err := NewMask(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			g := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			m.data[x+y*m.width] = g.Y >= threshold
		}
	}
	return m, nil
}

// MaskFromSDF2 rasterizes s into a width×height mask. The bounds of s are
// mapped onto the mask as done by [Map2] and a cell is filled if s is not
// positive at the cell centre.
func MaskFromSDF2(s SDF2, width, height int) (*Mask, error) {
	m, err := NewMask(width, height)
	if err != nil {
		return nil, err
	}
	mp, err := NewMap2(s.Bounds(), V2i{width, height})
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			m.data[x+y*width] = s.Evaluate(mp.ToV2(V2i{x, y})) <= 0
		}
	}
	return m, nil
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At reports whether (x,y) is filled. Out of bounds cells are empty.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.data[x+y*m.width]
}

// Set sets the value of the cell at (x,y).
func (m *Mask) Set(x, y int, filled bool) error {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return fmt.Errorf("%w: (%d,%d) in %dx%d mask", ErrOutOfBounds, x, y, m.width, m.height)
	}
	m.data[x+y*m.width] = filled
	return nil
}

// Count returns the number of filled cells.
func (m *Mask) Count() (n int) {
	for _, v := range m.data {
		if v {
			n++
		}
	}
	return n
}

// Seeds returns a grid ready to be transformed where cells equal to
// filled are seeds of value 0 and the rest are +Inf. Transforming
// Seeds(true) yields distances to the filled region.
func (m *Mask) Seeds(filled bool) []float64 {
	grid := make([]float64, len(m.data))
	inf := math.Inf(1)
	for i, v := range m.data {
		if v != filled {
			grid[i] = inf
		}
	}
	return grid
}
