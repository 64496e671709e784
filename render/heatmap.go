package render

import (
	"errors"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	_ "gonum.org/v1/plot/vg/vgimg" // png, jpeg and tiff encoders.
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// HeatmapConfig configures heatmap plots of distance fields.
type HeatmapConfig struct {
	Title string
	// Colors is the number of palette entries.
	Colors int
	// Min and Max bound the color scale. If both are zero the finite
	// range of the values is used.
	Min, Max float64
	// Width and Height are the output dimensions.
	Width, Height vg.Length
}

// DefaultHeatmapConfig returns a 6 inch square heatmap with a 32 color palette.
func DefaultHeatmapConfig() HeatmapConfig {
	return HeatmapConfig{
		Title:  "distance",
		Colors: 32,
		Width:  6 * vg.Inch,
		Height: 6 * vg.Inch,
	}
}

// gridXYZ adapts a row-major grid to plotter.GridXYZ. Grid row 0 is plotted
// at the top. Non-finite values are clamped into [lo, hi].
type gridXYZ struct {
	width, height int
	values        []float64
	lo, hi        float64
}

var _ plotter.GridXYZ = gridXYZ{}

func (g gridXYZ) Dims() (c, r int) { return g.width, g.height }
func (g gridXYZ) X(c int) float64  { return float64(c) }
func (g gridXYZ) Y(r int) float64  { return float64(r) }

func (g gridXYZ) Z(c, r int) float64 {
	v := g.values[c+(g.height-1-r)*g.width]
	switch {
	case math.IsNaN(v), math.IsInf(v, 1):
		return g.hi
	case math.IsInf(v, -1):
		return g.lo
	}
	return math.Max(g.lo, math.Min(g.hi, v))
}

// Heatmap plots a row-major grid of values. The grid needs at least 2 rows and columns.
func Heatmap(values []float64, width, height int, cfg HeatmapConfig) (*plot.Plot, error) {
	switch {
	case width < 2 || height < 2:
		return nil, errors.New("heatmap needs at least 2x2 values")
	case len(values) != width*height:
		return nil, errors.New("heatmap values length does not match dimensions")
	case cfg.Colors < 2:
		return nil, errors.New("heatmap needs at least 2 colors")
	}
	lo, hi := cfg.Min, cfg.Max
	if lo == 0 && hi == 0 {
		lo, hi = finiteRange(values)
	}
	if hi <= lo {
		hi = lo + 1
	}
	g := gridXYZ{width: width, height: height, values: values, lo: lo, hi: hi}
	hm := plotter.NewHeatMap(g, palette.Heat(cfg.Colors, 1))
	hm.Min, hm.Max = lo, hi

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "row"
	p.Add(hm)
	return p, nil
}

func finiteRange(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 1 // No finite values.
	}
	return lo, hi
}

// SaveHeatmap saves p to path. The format is inferred from the file extension.
func SaveHeatmap(p *plot.Plot, path string, cfg HeatmapConfig) error {
	return p.Save(cfg.Width, cfg.Height, path)
}

// WriteHeatmap encodes p to w in the given format, such as "png" or "svg".
func WriteHeatmap(w io.Writer, p *plot.Plot, cfg HeatmapConfig, format string) error {
	wt, err := p.WriterTo(cfg.Width, cfg.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
