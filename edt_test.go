package edt_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/soypat/edt"
	"github.com/soypat/edt/helpers/edtexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type transformFunc func(grid []float64, width, height int, closest []edt.V2i) error

var transforms = []struct {
	name string
	fn   transformFunc
}{
	{"Transform", edt.Transform[float64]},
	{"TransformExact", edt.TransformExact[float64]},
}

func unknownGrid(w, h int) []float64 {
	grid := make([]float64, w*h)
	for i := range grid {
		grid[i] = math.Inf(1)
	}
	return grid
}

// randomSeeds returns a grid where each cell is a seed with probability density.
// Seed values are drawn from [0, maxValue].
func randomSeeds(rng *rand.Rand, w, h int, density float64, maxValue int) []float64 {
	grid := unknownGrid(w, h)
	for i := range grid {
		if rng.Float64() < density {
			grid[i] = float64(rng.Intn(maxValue + 1))
		}
	}
	return grid
}

func TestTransformSingleSeed(t *testing.T) {
	sizes := []edt.V2i{{1, 1}, {1, 7}, {7, 1}, {5, 4}, {9, 13}}
	for _, tr := range transforms {
		for _, sz := range sizes {
			w, h := sz[0], sz[1]
			t.Run(fmt.Sprintf("%s/%dx%d", tr.name, w, h), func(t *testing.T) {
				for sy := 0; sy < h; sy++ {
					for sx := 0; sx < w; sx++ {
						grid := unknownGrid(w, h)
						grid[sx+sy*w] = 0
						closest := make([]edt.V2i, w*h)
						require.NoError(t, tr.fn(grid, w, h, closest))

						want := make([]float64, w*h)
						wantClosest := make([]edt.V2i, w*h)
						for y := 0; y < h; y++ {
							for x := 0; x < w; x++ {
								want[x+y*w] = float64((x-sx)*(x-sx) + (y-sy)*(y-sy))
								wantClosest[x+y*w] = edt.V2i{sx, sy}
							}
						}
						require.Equal(t, want, grid, "seed at (%d,%d)", sx, sy)
						require.Equal(t, wantClosest, closest, "seed at (%d,%d)", sx, sy)
					}
				}
			})
		}
	}
}

func TestTransformTwoSeeds5x5(t *testing.T) {
	const w, h = 5, 5
	for _, tr := range transforms {
		t.Run(tr.name, func(t *testing.T) {
			grid := unknownGrid(w, h)
			grid[0] = 0
			grid[4+4*w] = 0
			closest := make([]edt.V2i, w*h)
			require.NoError(t, tr.fn(grid, w, h, closest))

			assert.Equal(t, 8.0, grid[2+2*w])
			assert.Contains(t, []edt.V2i{{0, 0}, {4, 4}}, closest[2+2*w])
			assert.Equal(t, 16.0, grid[0+4*w])
			assert.Contains(t, []edt.V2i{{0, 0}, {4, 4}}, closest[0+4*w])
			assert.Equal(t, 0.0, grid[4+4*w])
			assert.Equal(t, edt.V2i{4, 4}, closest[4+4*w])
			assert.Equal(t, 1.0, grid[1])
			assert.Equal(t, edt.V2i{0, 0}, closest[1])
		})
	}
}

func TestTransformAllUnknown(t *testing.T) {
	const w, h = 6, 4
	for _, tr := range transforms {
		t.Run(tr.name, func(t *testing.T) {
			grid := unknownGrid(w, h)
			closest := make([]edt.V2i, w*h)
			require.NoError(t, tr.fn(grid, w, h, closest))
			for i, v := range grid {
				assert.True(t, math.IsInf(v, 1), "cell %d = %v", i, v)
				assert.Equal(t, edt.V2i{i % w, i / w}, closest[i])
			}
		})
	}
}

func TestTransformRotationSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, tr := range transforms {
		t.Run(tr.name, func(t *testing.T) {
			for iter := 0; iter < 50; iter++ {
				w, h := 1+rng.Intn(20), 1+rng.Intn(20)
				grid := randomSeeds(rng, w, h, 0.05, 0)
				n := len(grid)
				rotated := make([]float64, n)
				for i := range grid {
					rotated[n-1-i] = grid[i]
				}
				require.NoError(t, tr.fn(grid, w, h, nil))
				require.NoError(t, tr.fn(rotated, w, h, nil))
				for i := range grid {
					require.Equal(t, grid[i], rotated[n-1-i], "%dx%d cell %d", w, h, i)
				}
			}
		})
	}
}

func TestTransformReseed(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for _, tr := range transforms {
		t.Run(tr.name, func(t *testing.T) {
			for iter := 0; iter < 30; iter++ {
				w, h := 1+rng.Intn(24), 1+rng.Intn(24)
				grid := randomSeeds(rng, w, h, 0.1, 0)
				require.NoError(t, tr.fn(grid, w, h, nil))

				// Re-seed from the cells the first pass resolved to zero.
				reseeded := unknownGrid(w, h)
				for i, v := range grid {
					if v == 0 {
						reseeded[i] = 0
					}
				}
				require.NoError(t, tr.fn(reseeded, w, h, nil))
				require.Equal(t, grid, reseeded)
			}
		})
	}
}

func TestTransformZeroGridFixedPoint(t *testing.T) {
	const w, h = 7, 3
	for _, tr := range transforms {
		grid := make([]float64, w*h)
		require.NoError(t, tr.fn(grid, w, h, nil))
		assert.Equal(t, make([]float64, w*h), grid, tr.name)
	}
}

func TestTransformBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	densities := []float64{0.01, 0.05, 0.3, 0.9}
	for iter := 0; iter < 200; iter++ {
		w, h := 1+rng.Intn(12), 1+rng.Intn(12)
		seeds := randomSeeds(rng, w, h, densities[iter%len(densities)], 0)
		want := edtexp.BruteForce(seeds, w, h)
		for _, tr := range transforms {
			grid := append([]float64(nil), seeds...)
			closest := make([]edt.V2i, w*h)
			require.NoError(t, tr.fn(grid, w, h, closest))
			for i := range grid {
				require.LessOrEqual(t, grid[i], want[i], "%s %dx%d cell %d", tr.name, w, h, i)
				require.Equal(t, want[i], grid[i], "%s %dx%d cell %d", tr.name, w, h, i)
				if math.IsInf(grid[i], 1) {
					continue
				}
				c := closest[i]
				require.Equal(t, 0.0, seeds[c[0]+c[1]*w], "closest point %v is not a seed", c)
				require.Equal(t, float64(c.Dist2(edt.V2i{i % w, i / w})), grid[i])
			}
		}
	}
}

func TestTransformSeedValues(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	for iter := 0; iter < 200; iter++ {
		w, h := 1+rng.Intn(12), 1+rng.Intn(12)
		seeds := randomSeeds(rng, w, h, 0.15, 9)

		grid := append([]float64(nil), seeds...)
		closest := make([]edt.V2i, w*h)
		require.NoError(t, edt.Transform(grid, w, h, closest))
		wantLinear := edtexp.BruteForceLinear(seeds, w, h)
		for i := range grid {
			require.Equal(t, wantLinear[i], grid[i], "Transform %dx%d cell %d", w, h, i)
			if math.IsInf(grid[i], 1) {
				continue
			}
			c := closest[i]
			d := c.Sub(edt.V2i{i % w, i / w})
			dy := math.Abs(float64(d[1])) + seeds[c[0]+c[1]*w]
			require.Equal(t, dy*dy+float64(d[0]*d[0]), grid[i])
		}

		grid = append(grid[:0], seeds...)
		require.NoError(t, edt.TransformExact(grid, w, h, closest))
		wantExact := edtexp.BruteForce(seeds, w, h)
		for i := range grid {
			require.Equal(t, wantExact[i], grid[i], "TransformExact %dx%d cell %d", w, h, i)
			if math.IsInf(grid[i], 1) {
				continue
			}
			c := closest[i]
			require.Equal(t, seeds[c[0]+c[1]*w]+float64(c.Dist2(edt.V2i{i % w, i / w})), grid[i])
		}
	}
}

func TestTransformRowWithSingleSeed(t *testing.T) {
	inf := math.Inf(1)
	grid := []float64{inf, inf, inf, 0, inf, inf}
	require.NoError(t, edt.Transform(grid, len(grid), 1, nil))
	assert.Equal(t, []float64{9, 4, 1, 0, 1, 4}, grid)
}

func TestTransformUnreachableRow(t *testing.T) {
	// Rows without seeds are resolved through the column pass.
	inf := math.Inf(1)
	grid := []float64{
		inf, inf, inf,
		inf, inf, inf,
		inf, 0, inf,
	}
	require.NoError(t, edt.Transform(grid, 3, 3, nil))
	assert.Equal(t, []float64{5, 4, 5, 2, 1, 2, 1, 0, 1}, grid)
}

func TestTransformFloat32(t *testing.T) {
	const w, h = 9, 6
	grid := make([]float32, w*h)
	for i := range grid {
		grid[i] = edt.Inf[float32]()
	}
	grid[2+3*w] = 0
	closest := make([]edt.V2i, w*h)
	require.NoError(t, edt.Transform(grid, w, h, closest))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := float32((x-2)*(x-2) + (y-3)*(y-3))
			require.Equal(t, want, grid[x+y*w])
			require.Equal(t, edt.V2i{2, 3}, closest[x+y*w])
		}
	}
	edt.Sqrt32(grid)
	assert.Equal(t, float32(0), grid[2+3*w])
	assert.Equal(t, float32(5), grid[(2+4)+(3-3)*w]) // dx=4, dy=3.
}

func TestSqrt(t *testing.T) {
	grid := []float64{0, 4, 2.25, math.Inf(1)}
	edt.Sqrt(grid)
	assert.Equal(t, []float64{0, 2, 1.5, math.Inf(1)}, grid)
}

func TestTransformInvalid(t *testing.T) {
	inf := math.Inf(1)
	cases := []struct {
		name    string
		grid    []float64
		w, h    int
		closest []edt.V2i
		err     error
	}{
		{"ZeroWidth", []float64{}, 0, 1, nil, edt.ErrDimensions},
		{"NegativeHeight", []float64{0}, 1, -1, nil, edt.ErrDimensions},
		{"Overflow", []float64{0}, math.MaxInt / 2, 3, nil, edt.ErrDimensions},
		{"ShortGrid", []float64{0, inf, inf}, 2, 2, nil, edt.ErrLength},
		{"LongGrid", []float64{0, inf, inf, inf, inf}, 2, 2, nil, edt.ErrLength},
		{"ShortClosest", []float64{0, inf, inf, inf}, 2, 2, make([]edt.V2i, 3), edt.ErrLength},
		{"Negative", []float64{inf, inf, 0, -1}, 2, 2, nil, edt.ErrNegative},
		{"NegativeInf", []float64{inf, math.Inf(-1)}, 2, 1, nil, edt.ErrNegative},
		{"NaN", []float64{0, math.NaN()}, 2, 1, nil, edt.ErrNaN},
	}
	for _, tc := range cases {
		for _, tr := range transforms {
			t.Run(tc.name+"/"+tr.name, func(t *testing.T) {
				grid := append([]float64(nil), tc.grid...)
				err := tr.fn(grid, tc.w, tc.h, tc.closest)
				require.ErrorIs(t, err, tc.err)
				// Failed calls do not touch the grid.
				for i := range grid {
					if math.IsNaN(tc.grid[i]) {
						continue
					}
					assert.Equal(t, tc.grid[i], grid[i])
				}
			})
		}
	}
}

func TestTransformLargeSeeds(t *testing.T) {
	inf := math.Inf(1)
	grid := []float64{1e200, inf, inf}
	err := edt.Transform(grid, 3, 1, nil)
	require.ErrorIs(t, err, edt.ErrRange)
	assert.Equal(t, []float64{1e200, inf, inf}, grid)

	// Squared seeds are added, not squared, so they stay finite.
	require.NoError(t, edt.TransformExact(grid, 3, 1, nil))
	assert.Equal(t, []float64{1e200, 1e200, 1e200}, grid)

	grid32 := []float32{2e19, float32(inf)}
	require.ErrorIs(t, edt.Transform(grid32, 2, 1, nil), edt.ErrRange)
	grid32 = []float32{1e18, float32(inf)}
	require.NoError(t, edt.Transform(grid32, 2, 1, nil))
	assert.InEpsilon(t, 1e36, grid32[1], 1e-6)
	for _, v := range grid32 {
		assert.False(t, math.IsInf(float64(v), 0))
	}
}

func TestTransformLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	edt.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer edt.SetLogger(nil)

	grid := unknownGrid(4, 4)
	grid[5] = 0
	require.NoError(t, edt.Transform(grid, 4, 4, nil))
	out := buf.String()
	assert.Contains(t, out, "edt: transform")
	assert.Contains(t, out, "seeds=1")
	assert.Contains(t, out, "variant=linear")

	edt.SetLogger(nil)
	buf.Reset()
	require.NoError(t, edt.Transform(grid, 4, 4, nil))
	assert.Zero(t, buf.Len())
}

func BenchmarkTransform(b *testing.B) {
	const w, h = 512, 512
	rng := rand.New(rand.NewSource(1))
	seeds := randomSeeds(rng, w, h, 0.001, 0)
	grid := make([]float64, w*h)
	closest := make([]edt.V2i, w*h)
	for _, tr := range transforms {
		b.Run(tr.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(grid, seeds)
				if err := tr.fn(grid, w, h, closest); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
