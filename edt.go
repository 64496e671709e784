// Package edt computes exact squared euclidean distance transforms of
// rectangular grids.
//
// A grid is a flat row-major slice (index = x + y*width) where each cell
// holds either a known non-negative seed value or +Inf to mark it unknown.
// The transforms fill every unknown cell in O(width*height) time using the
// lower envelope of parabolas technique of Felzenszwalb and Huttenlocher and
// optionally record which seed produced each value.
//
// To get the distance field of a binary mask set filled cells to 0 and empty
// cells to +Inf. Signed fields are the difference of the transform of a mask
// and the transform of its complement, see [SignedDistance].
package edt

import (
	"context"
	"log/slog"
	"math"

	"github.com/chewxy/math32"
)

// Float is the set of cell types a grid can hold.
type Float interface {
	~float32 | ~float64
}

// Inf returns the sentinel marking a cell with no known value.
func Inf[F Float]() F { return F(math.Inf(1)) }

// Transform computes the squared euclidean distance transform of grid in place.
// Column distances are first relaxed with a unit step per row and then
// squared and combined with horizontal offsets by a per-row lower envelope.
//
// Seeds set to 0 produce the exact squared distance to the nearest seed.
// A seed with value v>0 is treated as lying v rows away from its cell, so
// a cell ends as min((v+|dy|)² + dx²), which is not v + dx² + dy² in general.
// Use [TransformExact] for additive seed values. Only when every seed is 0
// does each finite cell equal the squared distance to its closest point.
// Seeds whose square overflows F are rejected with [ErrRange].
//
// If closest is not nil it must have the same length as grid and is
// overwritten with the coordinates of the seed that produced each
// cell's value. Cells that stay at +Inf claim themselves.
//
// The grid is validated and all scratch memory acquired before it is modified.
// A returned error means grid and closest were not modified.
func Transform[F Float](grid []F, width, height int, closest []V2i) error {
	if err := validate(grid, width, height, closest, true); err != nil {
		return err
	}
	s := newScratch[F](width, closest != nil)
	logTransform("linear", grid, width, height, closest != nil)

	initClosest(closest, width, height)
	relaxColumns(grid, width, height, closest)
	for y := 0; y < height; y++ {
		s.envelope(grid, closest, y*width, 1, width, true)
	}
	return nil
}

// TransformExact computes in place, for every cell, the minimum over all seeds
// of the seed value plus the squared euclidean distance to the seed.
// Both the column and row passes use the lower envelope of parabolas so
// arbitrary non-negative seed values are honored exactly. For zero
// valued seeds the result is identical to [Transform].
//
// Arguments and error semantics are the same as for [Transform], except that
// seed values are not limited by [ErrRange].
func TransformExact[F Float](grid []F, width, height int, closest []V2i) error {
	if err := validate(grid, width, height, closest, false); err != nil {
		return err
	}
	s := newScratch[F](max(width, height), closest != nil)
	logTransform("exact", grid, width, height, closest != nil)

	initClosest(closest, width, height)
	for x := 0; x < width; x++ {
		s.envelope(grid, closest, x, width, height, false)
	}
	for y := 0; y < height; y++ {
		s.envelope(grid, closest, y*width, 1, width, false)
	}
	return nil
}

func logTransform[F Float](variant string, grid []F, width, height int, tracking bool) {
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	inf := Inf[F]()
	seeds := 0
	for _, v := range grid {
		if v != inf {
			seeds++
		}
	}
	l.Debug("edt: transform", slog.String("variant", variant),
		slog.Int("width", width), slog.Int("height", height),
		slog.Int("seeds", seeds), slog.Bool("closest", tracking))
}

// Sqrt replaces every squared distance in grid with its square root.
// +Inf cells stay +Inf.
func Sqrt(grid []float64) {
	for i, v := range grid {
		grid[i] = math.Sqrt(v)
	}
}

// Sqrt32 is the float32 version of [Sqrt].
func Sqrt32(grid []float32) {
	for i, v := range grid {
		grid[i] = math32.Sqrt(v)
	}
}
