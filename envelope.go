package edt

import "math"

// scratch holds working memory for the lower envelope sweeps. Buffers are
// sized for the longest line processed and reused for every line.
type scratch[F Float] struct {
	// apex holds positions of the parabolas currently on the lower envelope.
	// There are at most n parabolas and n+1 entries are reserved.
	apex []int
	// bound[k] is the position where parabola k+1 becomes the lowest.
	bound []F
	// line and near buffer a line's results since evaluation still reads
	// from the line being written.
	line []F
	near []V2i
}

func newScratch[F Float](n int, tracking bool) *scratch[F] {
	s := &scratch[F]{
		apex:  make([]int, n+1),
		bound: make([]F, n),
		line:  make([]F, n),
	}
	if tracking {
		s.near = make([]V2i, n)
	}
	return s
}

// parabola evaluates at x the parabola with apex (x0, h0).
func parabola[F Float](x0 int, h0, x F) F {
	dx := x - F(x0)
	return dx*dx + h0
}

// initClosest makes every cell claim itself as its own closest point.
func initClosest(closest []V2i, width, height int) {
	if closest == nil {
		return
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			closest[x+y*width] = V2i{x, y}
		}
	}
}

// relaxColumns propagates the best value along every column with a unit
// cost per row traversed. After it returns each cell holds the minimum of
// (value + rows traversed) over its column.
func relaxColumns[F Float](grid []F, width, height int, closest []V2i) {
	for x := 0; x < width; x++ {
		for y := 1; y < height; y++ {
			i := x + y*width
			j := i - width
			if grid[i] > grid[j]+1 {
				grid[i] = grid[j] + 1
				if closest != nil {
					closest[i] = closest[j]
				}
			}
		}
		for y := height - 2; y >= 0; y-- {
			i := x + y*width
			j := i + width
			if grid[i] > grid[j]+1 {
				grid[i] = grid[j] + 1
				if closest != nil {
					closest[i] = closest[j]
				}
			}
		}
	}
}

// envelope replaces the n cells of the line that starts at grid[base] and
// advances by step with the lower envelope of the parabolas rooted at its
// finite cells. If squared is set cell values are offsets and are squared
// to get the parabola height. Lines without a finite cell are not modified.
func (s *scratch[F]) envelope(grid []F, closest []V2i, base, step, n int, squared bool) {
	inf := F(math.Inf(1))
	h := func(v F) F {
		if squared {
			return v * v
		}
		return v
	}

	// Find first parabola with finite value.
	first := 0
	for first < n && grid[base+first*step] == inf {
		first++
	}
	if first == n {
		return
	}

	k := 0
	s.apex[0] = first
	for x1 := first + 1; x1 < n; x1++ {
		v1 := grid[base+x1*step]
		if v1 == inf {
			continue // Infinite parabolas are never on the envelope.
		}
		h1 := h(v1)
		for {
			x0 := s.apex[k]
			h0 := h(grid[base+x0*step])
			// Discard the last parabola if the new one is strictly lower at
			// the point where the last one became the lowest.
			if k > 0 && parabola(x0, h0, s.bound[k-1]) > parabola(x1, h1, s.bound[k-1]) {
				k--
				continue
			}
			fx0, fx1 := F(x0), F(x1)
			s.bound[k] = ((fx1*fx1 + h1) - (fx0*fx0 + h0)) / (2 * (fx1 - fx0))
			k++
			s.apex[k] = x1
			break
		}
	}

	for x := n - 1; x >= 0; x-- {
		for k > 0 && F(x) < s.bound[k-1] {
			k--
		}
		i := base + s.apex[k]*step
		s.line[x] = parabola(s.apex[k], h(grid[i]), F(x))
		if closest != nil {
			s.near[x] = closest[i]
		}
	}

	for x := 0; x < n; x++ {
		i := base + x*step
		grid[i] = s.line[x]
		if closest != nil {
			closest[i] = s.near[x]
		}
	}
}
