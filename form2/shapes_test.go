package form2_test

import (
	"math"
	"testing"

	"github.com/soypat/edt"
	"github.com/soypat/edt/form2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestShapeErrors(t *testing.T) {
	_, err := form2.Circle(0)
	assert.Error(t, err)
	_, err = form2.Circle(math.NaN())
	assert.Error(t, err)
	_, err = form2.Box(r2.Vec{X: 1, Y: 0}, 0)
	assert.Error(t, err)
	_, err = form2.Box(r2.Vec{X: 2, Y: 2}, 1.5)
	assert.Error(t, err)
	_, err = form2.Line(2, 0)
	assert.Error(t, err)
	assert.Nil(t, form2.Union())
}

func TestEvaluate(t *testing.T) {
	c, err := form2.Circle(2)
	require.NoError(t, err)
	assert.InDelta(t, -2, c.Evaluate(r2.Vec{}), 1e-12)
	assert.InDelta(t, 3, c.Evaluate(r2.Vec{X: 3, Y: 4}), 1e-12)
	assert.Equal(t, r2.Box{Min: r2.Vec{X: -2, Y: -2}, Max: r2.Vec{X: 2, Y: 2}}, c.Bounds())

	b, err := form2.Box(r2.Vec{X: 4, Y: 2}, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1, b.Evaluate(r2.Vec{}), 1e-12)
	assert.InDelta(t, 1, b.Evaluate(r2.Vec{X: 3}), 1e-12)
	assert.InDelta(t, 5, b.Evaluate(r2.Vec{X: 5, Y: 5}), 1e-12)

	l, err := form2.Line(4, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0, l.Evaluate(r2.Vec{Y: 1}), 1e-12)
	assert.InDelta(t, 0, l.Evaluate(r2.Vec{X: -3}), 1e-12)

	u := form2.Union(c, form2.Translate(c, r2.Vec{X: 10}))
	assert.InDelta(t, -2, u.Evaluate(r2.Vec{X: 10}), 1e-12)
	assert.InDelta(t, 3, u.Evaluate(r2.Vec{X: 5}), 1e-12)
	assert.Equal(t, r2.Box{Min: r2.Vec{X: -2, Y: -2}, Max: r2.Vec{X: 12, Y: 2}}, u.Bounds())
}

func TestRasterizePadded(t *testing.T) {
	c, err := form2.Circle(4)
	require.NoError(t, err)
	s := form2.Pad(c, 4)
	assert.Equal(t, r2.Box{Min: r2.Vec{X: -8, Y: -8}, Max: r2.Vec{X: 8, Y: 8}}, s.Bounds())
	m, err := edt.MaskFromSDF2(s, 16, 16)
	require.NoError(t, err)
	// Border cells lie outside the circle.
	for i := 0; i < 16; i++ {
		assert.False(t, m.At(i, 0))
		assert.False(t, m.At(0, i))
		assert.False(t, m.At(i, 15))
		assert.False(t, m.At(15, i))
	}
	assert.True(t, m.At(7, 7))
	assert.True(t, m.At(8, 8))
	sf, err := edt.SignedDistance(m)
	require.NoError(t, err)
	// Cell (0,7) is centred at (-7.5,0.5) and the nearest filled cell is (4,7).
	assert.InDelta(t, 4, sf.Evaluate(r2.Vec{X: 0, Y: 7}), 1e-12)
	assert.InDelta(t, c.Evaluate(r2.Vec{X: -7.5, Y: 0.5}), sf.At(0, 7), 0.5)
}
