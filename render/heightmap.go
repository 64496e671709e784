package render

import (
	"errors"
	"io"
	"math"

	"github.com/soypat/glgl/math/ms3"
)

// HeightmapConfig configures the surface generated by a Heightmap.
type HeightmapConfig struct {
	// CellSize is the horizontal spacing between grid samples.
	CellSize float32
	// Scale multiplies every value to obtain its height.
	Scale float32
	// MaxHeight clamps heights to [-MaxHeight, MaxHeight]. NaN is set to MaxHeight.
	MaxHeight float32
}

// DefaultHeightmapConfig returns unit spacing and scale with heights clamped to 20.
func DefaultHeightmapConfig() HeightmapConfig {
	return HeightmapConfig{CellSize: 1, Scale: 1, MaxHeight: 20}
}

// Heightmap renders a grid of values as a surface with one vertex per grid
// cell and two triangles between every 4 neighbouring cells. Grid row 0 is
// placed at Y=0 and rows extend towards negative Y so the surface reads like
// the image of the grid when viewed from above.
type Heightmap struct {
	width, height int
	z             []float32
	cell          float32
	next          int // next quad to render.
}

var _ Renderer = (*Heightmap)(nil)

// NewHeightmap creates a Heightmap from a row-major grid of values.
// The grid needs at least 2 rows and 2 columns.
func NewHeightmap(values []float64, width, height int, cfg HeightmapConfig) (*Heightmap, error) {
	switch {
	case width < 2 || height < 2:
		return nil, errors.New("heightmap needs at least 2x2 samples")
	case len(values) != width*height:
		return nil, errors.New("heightmap values length does not match dimensions")
	case cfg.CellSize <= 0 || cfg.Scale <= 0 || cfg.MaxHeight <= 0:
		return nil, errors.New("heightmap config values must be positive")
	}
	z := make([]float32, len(values))
	for i, v := range values {
		h := float32(v) * cfg.Scale
		switch {
		case math.IsNaN(v) || h > cfg.MaxHeight:
			h = cfg.MaxHeight
		case h < -cfg.MaxHeight:
			h = -cfg.MaxHeight
		}
		z[i] = h
	}
	return &Heightmap{width: width, height: height, z: z, cell: cfg.CellSize}, nil
}

// Triangles returns the total number of triangles in the surface.
func (hm *Heightmap) Triangles() int {
	return 2 * (hm.width - 1) * (hm.height - 1)
}

// ReadTriangles reads the next triangles of the surface into dst, which must
// have room for at least 2 triangles.
func (hm *Heightmap) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	quads := (hm.width - 1) * (hm.height - 1)
	if hm.next >= quads {
		return 0, io.EOF
	}
	if len(dst) < 2 {
		return 0, errors.New("heightmap needs room for at least 2 triangles")
	}
	for n+2 <= len(dst) && hm.next < quads {
		x, y := hm.next%(hm.width-1), hm.next/(hm.width-1)
		a, b := hm.vertex(x, y), hm.vertex(x+1, y)
		c, d := hm.vertex(x, y+1), hm.vertex(x+1, y+1)
		// Counter clockwise seen from above so normals point towards +Z.
		dst[n] = ms3.Triangle{a, d, b}
		dst[n+1] = ms3.Triangle{a, c, d}
		n += 2
		hm.next++
	}
	if hm.next == quads {
		err = io.EOF
	}
	return n, err
}

func (hm *Heightmap) vertex(x, y int) ms3.Vec {
	return ms3.Vec{
		X: float32(x) * hm.cell,
		Y: -float32(y) * hm.cell,
		Z: hm.z[x+y*hm.width],
	}
}
