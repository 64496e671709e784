package edtexp

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/soypat/edt"
	"gonum.org/v1/gonum/spatial/kdtree"
)

// SeedIndex is a kd-tree over the coordinates of the seed cells of a grid.
type SeedIndex struct {
	tree *kdtree.Tree
	n    int
}

// NewSeedIndex indexes every finite cell of grid. Seed values are ignored,
// the index answers geometric nearest seed queries.
func NewSeedIndex[F edt.Float](grid []F, width, height int) (*SeedIndex, error) {
	if width < 1 || height < 1 || len(grid) != width*height {
		return nil, fmt.Errorf("%w: %d cells for %dx%d grid", edt.ErrLength, len(grid), width, height)
	}
	inf := edt.Inf[F]()
	var pts kdtree.Points
	for i, v := range grid {
		if v != inf {
			pts = append(pts, kdtree.Point{float64(i % width), float64(i / width)})
		}
	}
	idx := &SeedIndex{n: len(pts)}
	if len(pts) > 0 {
		idx.tree = kdtree.New(pts, false)
	}
	return idx, nil
}

// Len returns the number of indexed seeds.
func (idx *SeedIndex) Len() int { return idx.n }

// Nearest returns the seed nearest to (x,y) and its squared distance.
// It returns false if the index is empty.
func (idx *SeedIndex) Nearest(x, y int) (edt.V2i, float64, bool) {
	if idx.tree == nil {
		return edt.V2i{}, math.Inf(1), false
	}
	got, d2 := idx.tree.Nearest(kdtree.Point{float64(x), float64(y)})
	p := got.(kdtree.Point)
	return edt.V2i{int(p[0]), int(p[1])}, d2, true
}

// Verify checks samples random cells of result, the squared distance
// transform of a zero seeded grid, against nearest seed queries on the
// original grid. Cells with no reachable seed must be +Inf.
// Verify returns an error describing the first mismatch found.
func Verify[F edt.Float](grid []F, width, height int, result []F, samples int, rng *rand.Rand) error {
	if len(result) != len(grid) {
		return fmt.Errorf("%w: result has %d cells, want %d", edt.ErrLength, len(result), len(grid))
	}
	idx, err := NewSeedIndex(grid, width, height)
	if err != nil {
		return err
	}
	for s := 0; s < samples; s++ {
		x, y := rng.Intn(width), rng.Intn(height)
		got := float64(result[x+y*width])
		seed, want, ok := idx.Nearest(x, y)
		switch {
		case !ok && !math.IsInf(got, 1):
			return fmt.Errorf("cell (%d,%d) = %v, want +Inf for grid without seeds", x, y, got)
		case ok && got != want:
			return fmt.Errorf("cell (%d,%d) = %v, want %v from seed %v", x, y, got, want, seed)
		}
	}
	return nil
}
