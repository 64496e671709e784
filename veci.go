/*

Integer 2D vectors

*/

package edt

import "gonum.org/v1/gonum/spatial/r2"

// V2i is a 2D integer vector. It is used to record grid coordinates
// of the seed cell closest to a given cell.
type V2i [2]int

// Add adds two vectors. Return v = a + b.
func (a V2i) Add(b V2i) V2i {
	return V2i{a[0] + b[0], a[1] + b[1]}
}

// Sub subtracts two vectors. Return v = a - b.
func (a V2i) Sub(b V2i) V2i {
	return V2i{a[0] - b[0], a[1] - b[1]}
}

// Norm2 returns the squared euclidean length of the vector.
func (a V2i) Norm2() int {
	return a[0]*a[0] + a[1]*a[1]
}

// Dist2 returns the squared euclidean distance between a and b.
func (a V2i) Dist2(b V2i) int {
	return a.Sub(b).Norm2()
}

// R2 converts V2i (integer) to r2.Vec (float).
func (a V2i) R2() r2.Vec {
	return r2.Vec{X: float64(a[0]), Y: float64(a[1])}
}
