package d2

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func Elem(sides float64) r2.Vec {
	return r2.Vec{
		X: sides,
		Y: sides,
	}
}

func MulElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X * b.X,
		Y: a.Y * b.Y,
	}
}

func DivElem(a, b r2.Vec) r2.Vec {
	return r2.Vec{
		X: a.X / b.X,
		Y: a.Y / b.Y,
	}
}

func FloorElem(a r2.Vec) r2.Vec {
	return r2.Vec{
		X: math.Floor(a.X),
		Y: math.Floor(a.Y),
	}
}

func AbsElem(a r2.Vec) r2.Vec {
	return r2.Vec{
		X: math.Abs(a.X),
		Y: math.Abs(a.Y),
	}
}
