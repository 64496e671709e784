package edtexp

import (
	"github.com/soypat/edt"
)

// BruteForce returns, for every cell, the minimum over all finite seeds of
// the seed value plus the squared distance to the seed. It runs in
// O((width*height)²) time and matches [edt.TransformExact].
func BruteForce[F edt.Float](grid []F, width, height int) []F {
	return bruteForce(grid, width, height, func(v F, dx, dy int) F {
		return v + F(dx*dx+dy*dy)
	})
}

// BruteForceLinear is the quadratic reference of [edt.Transform]. A seed of
// value v contributes (v+|dy|)² + dx² to a cell.
func BruteForceLinear[F edt.Float](grid []F, width, height int) []F {
	return bruteForce(grid, width, height, func(v F, dx, dy int) F {
		if dy < 0 {
			dy = -dy
		}
		h := v + F(dy)
		return h*h + F(dx*dx)
	})
}

func bruteForce[F edt.Float](grid []F, width, height int, cost func(v F, dx, dy int) F) []F {
	inf := edt.Inf[F]()
	dst := make([]F, len(grid))
	for i := range dst {
		dst[i] = inf
	}
	for sy := 0; sy < height; sy++ {
		for sx := 0; sx < width; sx++ {
			v := grid[sx+sy*width]
			if v == inf {
				continue
			}
			for y := 0; y < height; y++ {
				for x := 0; x < width; x++ {
					if c := cost(v, x-sx, y-sy); c < dst[x+y*width] {
						dst[x+y*width] = c
					}
				}
			}
		}
	}
	return dst
}
