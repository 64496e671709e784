package edt

import (
	"fmt"

	"github.com/soypat/edt/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Map2 maps a 2d region to integer grid coordinates. Grid row 0 is the
// top of the region, matching image row order.
type Map2 struct {
	bb    d2.Box // bounding box
	grid  V2i    // integral dimension
	delta r2.Vec // cell size
}

// NewMap2 returns a map from region bb to a grid with the given dimensions.
func NewMap2(bb r2.Box, grid V2i) (*Map2, error) {
	box := d2.Box(bb)
	size := box.Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: bounding box %v has no area", ErrDimensions, bb)
	}
	if grid[0] <= 0 || grid[1] <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrDimensions, grid[0], grid[1])
	}
	return &Map2{
		bb:    box,
		grid:  grid,
		delta: d2.DivElem(size, grid.R2()),
	}, nil
}

// CellSize returns the region size covered by a single grid cell.
func (m *Map2) CellSize() r2.Vec { return m.delta }

// ToV2 converts grid integer coordinates to the region coordinates of the cell centre.
func (m *Map2) ToV2(p V2i) r2.Vec {
	ofs := d2.MulElem(r2.Add(p.R2(), d2.Elem(0.5)), m.delta)
	ofs.Y = -ofs.Y
	return m.bb.TopLeft().Add(ofs)
}

// ToV2i converts region coordinates to the grid coordinates of the containing cell.
// Points outside the region map to cells outside the grid.
func (m *Map2) ToV2i(p r2.Vec) V2i {
	v := p.Sub(m.bb.TopLeft())
	v.Y = -v.Y
	c := d2.FloorElem(d2.DivElem(v, m.delta))
	return V2i{int(c.X), int(c.Y)}
}
