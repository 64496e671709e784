package edt

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SignedField is a signed distance field sampled on a grid. Values are
// negative inside the mask it was built from and positive outside.
// It implements [SDF2] in grid coordinates.
type SignedField struct {
	width, height int
	data          []float64
}

var _ SDF2 = (*SignedField)(nil)

// SignedDistance computes the signed distance field of m as the distance to
// the filled region minus the distance to the empty region. Both distances
// are measured between cell centres, so cells adjacent to the boundary are
// ±1 and no cell is 0.
//
// A mask with no filled cells yields +Inf everywhere and a fully filled
// mask yields -Inf everywhere.
func SignedDistance(m *Mask) (*SignedField, error) {
	outside := m.Seeds(true)
	inside := m.Seeds(false)
	if err := Transform(outside, m.width, m.height, nil); err != nil {
		return nil, err
	}
	if err := Transform(inside, m.width, m.height, nil); err != nil {
		return nil, err
	}
	if n := m.Count(); n == 0 || n == len(m.data) {
		Logger().Warn("edt: degenerate mask yields infinite signed field",
			"width", m.width, "height", m.height, "filled", n)
	}
	for i := range outside {
		switch {
		case math.IsInf(outside[i], 1):
			outside[i] = math.Inf(1)
		case math.IsInf(inside[i], 1):
			outside[i] = math.Inf(-1)
		default:
			outside[i] = math.Sqrt(outside[i]) - math.Sqrt(inside[i])
		}
	}
	return &SignedField{width: m.width, height: m.height, data: outside}, nil
}

// Width returns the number of columns.
func (s *SignedField) Width() int { return s.width }

// Height returns the number of rows.
func (s *SignedField) Height() int { return s.height }

// Data returns the underlying row-major grid. It is not a copy.
func (s *SignedField) Data() []float64 { return s.data }

// At returns the signed distance at cell (x,y). Coordinates are clamped to the grid.
func (s *SignedField) At(x, y int) float64 {
	x = clampi(x, 0, s.width-1)
	y = clampi(y, 0, s.height-1)
	return s.data[x+y*s.width]
}

// Evaluate returns the bilinearly interpolated signed distance at p in grid
// coordinates, where cell (x,y) is centred at r2.Vec{x, y}. Points outside
// the grid are clamped to the nearest edge.
func (s *SignedField) Evaluate(p r2.Vec) float64 {
	px := Clamp(p.X, 0, float64(s.width-1))
	py := Clamp(p.Y, 0, float64(s.height-1))
	x0, y0 := int(px), int(py)
	tx, ty := px-float64(x0), py-float64(y0)
	d00 := s.At(x0, y0)
	if math.IsInf(d00, 0) {
		return d00 // Degenerate fields are infinite everywhere.
	}
	top := Mix(d00, s.At(x0+1, y0), tx)
	bottom := Mix(s.At(x0, y0+1), s.At(x0+1, y0+1), tx)
	return Mix(top, bottom, ty)
}

// Bounds returns the box spanned by the cell centres.
func (s *SignedField) Bounds() r2.Box {
	return r2.Box{Max: r2.Vec{X: float64(s.width - 1), Y: float64(s.height - 1)}}
}
