package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d bounding box.
type Box r2.Box

// Size returns the size of a 2d box.
func (a Box) Size() r2.Vec {
	return r2.Sub(a.Max, a.Min)
}

// TopLeft returns the top left corner of a 2d bounding box.
func (a Box) TopLeft() r2.Vec {
	return r2.Vec{X: a.Min.X, Y: a.Max.Y}
}
