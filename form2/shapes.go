// Package form2 provides 2D shapes that can be rasterized into masks with
// [edt.MaskFromSDF2].
package form2

import (
	"errors"
	"math"

	"github.com/soypat/edt"
	"github.com/soypat/edt/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	errNonPositive = errors.New("form2: shape dimension must be positive")
	errRound       = errors.New("form2: rounding must be non-negative and fit within the shape")
)

type circle struct {
	radius float64
	bb     r2.Box
}

// Circle returns a circle of the given radius centred at the origin.
func Circle(radius float64) (edt.SDF2, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return nil, errNonPositive
	}
	r := d2.Elem(radius)
	return &circle{radius: radius, bb: r2.Box{Min: r2.Scale(-1, r), Max: r}}, nil
}

func (c *circle) Evaluate(p r2.Vec) float64 { return r2.Norm(p) - c.radius }

func (c *circle) Bounds() r2.Box { return c.bb }

type box struct {
	half  r2.Vec // half size minus rounding
	round float64
	bb    r2.Box
}

// Box returns a rectangle of the given size centred at the origin. Corners
// are rounded with radius round.
func Box(size r2.Vec, round float64) (edt.SDF2, error) {
	if !(size.X > 0 && size.Y > 0) {
		return nil, errNonPositive
	}
	half := r2.Scale(0.5, size)
	if round < 0 || round > math.Min(half.X, half.Y) {
		return nil, errRound
	}
	return &box{
		half:  r2.Sub(half, d2.Elem(round)),
		round: round,
		bb:    r2.Box{Min: r2.Scale(-1, half), Max: half},
	}, nil
}

func (b *box) Evaluate(p r2.Vec) float64 {
	d := r2.Sub(d2.AbsElem(p), b.half)
	outside := r2.Norm(r2.Vec{X: math.Max(d.X, 0), Y: math.Max(d.Y, 0)})
	inside := math.Min(math.Max(d.X, d.Y), 0)
	return outside + inside - b.round
}

func (b *box) Bounds() r2.Box { return b.bb }

type line struct {
	half  float64
	round float64
	bb    r2.Box
}

// Line returns a segment from (-l/2,0) to (l/2,0) thickened by round.
func Line(l, round float64) (edt.SDF2, error) {
	if !(l > 0) || !(round > 0) {
		return nil, errNonPositive
	}
	h := l / 2
	return &line{
		half:  h,
		round: round,
		bb:    r2.Box{Min: r2.Vec{X: -h - round, Y: -round}, Max: r2.Vec{X: h + round, Y: round}},
	}, nil
}

func (s *line) Evaluate(p r2.Vec) float64 {
	p = d2.AbsElem(p)
	if p.X <= s.half {
		return p.Y - s.round
	}
	return r2.Norm(r2.Sub(p, r2.Vec{X: s.half})) - s.round
}

func (s *line) Bounds() r2.Box { return s.bb }

type translate struct {
	s   edt.SDF2
	off r2.Vec
	bb  r2.Box
}

// Translate moves s by off.
func Translate(s edt.SDF2, off r2.Vec) edt.SDF2 {
	bb := s.Bounds()
	return &translate{s: s, off: off, bb: r2.Box{Min: r2.Add(bb.Min, off), Max: r2.Add(bb.Max, off)}}
}

func (t *translate) Evaluate(p r2.Vec) float64 { return t.s.Evaluate(r2.Sub(p, t.off)) }

func (t *translate) Bounds() r2.Box { return t.bb }

type union struct {
	shapes []edt.SDF2
	bb     r2.Box
}

// Union returns the union of the given shapes. It returns nil if no shapes
// are given.
func Union(shapes ...edt.SDF2) edt.SDF2 {
	if len(shapes) == 0 {
		return nil
	}
	bb := shapes[0].Bounds()
	for _, s := range shapes[1:] {
		sb := s.Bounds()
		bb.Min = r2.Vec{X: math.Min(bb.Min.X, sb.Min.X), Y: math.Min(bb.Min.Y, sb.Min.Y)}
		bb.Max = r2.Vec{X: math.Max(bb.Max.X, sb.Max.X), Y: math.Max(bb.Max.Y, sb.Max.Y)}
	}
	return &union{shapes: shapes, bb: bb}
}

func (u *union) Evaluate(p r2.Vec) float64 {
	d := math.Inf(1)
	for _, s := range u.shapes {
		d = math.Min(d, s.Evaluate(p))
	}
	return d
}

func (u *union) Bounds() r2.Box { return u.bb }

type padded struct {
	edt.SDF2
	bb r2.Box
}

// Pad grows the bounds of s by margin on every side without changing its
// distance values, leaving empty space around the shape once rasterized.
func Pad(s edt.SDF2, margin float64) edt.SDF2 {
	bb := s.Bounds()
	m := d2.Elem(margin)
	return &padded{SDF2: s, bb: r2.Box{Min: r2.Sub(bb.Min, m), Max: r2.Add(bb.Max, m)}}
}

func (p *padded) Bounds() r2.Box { return p.bb }
