package edt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Field is a float64 grid of squared distances along with the closest seed
// of every cell. The zero value is not usable, create one with [NewField].
type Field struct {
	width, height int
	sq            []float64
	closest       []V2i
}

// NewField returns a width×height field with every cell unknown.
func NewField(width, height int) (*Field, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, width, height)
	}
	f := &Field{
		width:   width,
		height:  height,
		sq:      make([]float64, width*height),
		closest: make([]V2i, width*height),
	}
	f.Reset()
	return f, nil
}

// Reset marks every cell as unknown and makes it claim itself.
func (f *Field) Reset() {
	inf := math.Inf(1)
	for i := range f.sq {
		f.sq[i] = inf
	}
	initClosest(f.closest, f.width, f.height)
}

// SetSeed sets the known value of the cell at (x,y).
func (f *Field) SetSeed(x, y int, v float64) error {
	if !f.inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d field", ErrOutOfBounds, x, y, f.width, f.height)
	}
	if v != v {
		return fmt.Errorf("%w at (%d,%d)", ErrNaN, x, y)
	}
	if v < 0 {
		return fmt.Errorf("%w %v at (%d,%d)", ErrNegative, v, x, y)
	}
	f.sq[x+y*f.width] = v
	return nil
}

// Transform resolves the field with [Transform].
func (f *Field) Transform() error {
	return Transform(f.sq, f.width, f.height, f.closest)
}

// TransformExact resolves the field with [TransformExact].
func (f *Field) TransformExact() error {
	return TransformExact(f.sq, f.width, f.height, f.closest)
}

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// At returns the squared distance stored at (x,y). Out of bounds cells are +Inf.
func (f *Field) At(x, y int) float64 {
	if !f.inBounds(x, y) {
		return math.Inf(1)
	}
	return f.sq[x+y*f.width]
}

// Distance returns the (non squared) distance stored at (x,y).
func (f *Field) Distance(x, y int) float64 {
	return math.Sqrt(f.At(x, y))
}

// Closest returns the seed closest to (x,y). It returns false if
// (x,y) is out of bounds or no seed reaches it.
func (f *Field) Closest(x, y int) (V2i, bool) {
	if !f.inBounds(x, y) {
		return V2i{}, false
	}
	i := x + y*f.width
	if math.IsInf(f.sq[i], 1) {
		return V2i{}, false
	}
	return f.closest[i], true
}

// Squared returns the underlying squared distance grid. It is not a copy.
func (f *Field) Squared() []float64 { return f.sq }

// Distances returns a new grid with the square root of every cell.
func (f *Field) Distances() []float64 {
	d := make([]float64, len(f.sq))
	copy(d, f.sq)
	Sqrt(d)
	return d
}

// Bounds returns the box spanned by the cell centres in grid coordinates.
func (f *Field) Bounds() r2.Box {
	return r2.Box{Max: r2.Vec{X: float64(f.width - 1), Y: float64(f.height - 1)}}
}

func (f *Field) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}
