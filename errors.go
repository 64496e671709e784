package edt

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensions indicates a non-positive width or height, or a grid too large to index.
	ErrDimensions = errors.New("edt: width and height must be at least 1")
	// ErrLength indicates a grid or closest point map whose length is not width*height.
	ErrLength = errors.New("edt: buffer length does not match width*height")
	// ErrNegative indicates a seed value below zero.
	ErrNegative = errors.New("edt: negative seed value")
	// ErrRange indicates a seed value whose square overflows the grid's float type.
	ErrRange = errors.New("edt: seed value too large")
	// ErrNaN indicates a NaN cell value.
	ErrNaN = errors.New("edt: NaN cell value")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("edt: coordinate out of bounds")
)

// validate checks the arguments of a transform. With linear set, seeds are
// also rejected if (v+width+height)² overflows, which bounds every candidate
// value the row envelope computes from them.
func validate[F Float](grid []F, width, height int, closest []V2i, linear bool) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	const maxInt = int(^uint(0) >> 1)
	if height > maxInt/width {
		return fmt.Errorf("%w: %dx%d overflows int", ErrDimensions, width, height)
	}
	n := width * height
	if len(grid) != n {
		return fmt.Errorf("%w: grid has %d cells, want %d", ErrLength, len(grid), n)
	}
	if closest != nil && len(closest) != n {
		return fmt.Errorf("%w: closest point map has %d cells, want %d", ErrLength, len(closest), n)
	}
	inf := Inf[F]()
	span := F(width) + F(height)
	for i, v := range grid {
		switch {
		case v != v:
			return fmt.Errorf("%w at (%d,%d)", ErrNaN, i%width, i/width)
		case v < 0:
			return fmt.Errorf("%w %v at (%d,%d)", ErrNegative, v, i%width, i/width)
		case linear && v != inf && (v+span)*(v+span) == inf:
			return fmt.Errorf("%w: %v at (%d,%d)", ErrRange, v, i%width, i/width)
		}
	}
	return nil
}
