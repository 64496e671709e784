package render

import (
	"errors"
	"image"
	"math"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
)

// ImageConfig configures how distances map to gray levels.
type ImageConfig struct {
	// MaxDistance is the distance mapped to white (or black when Invert is set).
	// Zero uses the largest finite magnitude in the grid.
	MaxDistance float64
	// Signed maps [-MaxDistance, MaxDistance] to the full gray range so that
	// zero lands on mid gray. Otherwise [0, MaxDistance] is used.
	Signed bool
	// Invert flips the gray scale.
	Invert bool
}

// Grayscale renders a row-major grid of distances as an 8 bit gray image.
// Values beyond the range, including infinities, saturate.
func Grayscale(values []float64, width, height int, cfg ImageConfig) (*image.Gray, error) {
	if width < 1 || height < 1 || len(values) != width*height {
		return nil, errors.New("grayscale values length does not match dimensions")
	}
	if cfg.MaxDistance < 0 {
		return nil, errors.New("negative maximum distance")
	}
	maxd := cfg.MaxDistance
	if maxd == 0 {
		maxd = maxFinite(values)
	}
	if maxd == 0 {
		maxd = 1 // All zero or infinite.
	}
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i, v := range values {
		var t float64 // normalized to [0,1].
		switch {
		case math.IsNaN(v):
			t = 0
		case cfg.Signed:
			t = 0.5 + 0.5*v/maxd
		default:
			t = v / maxd
		}
		t = math.Max(0, math.Min(1, t))
		if cfg.Invert {
			t = 1 - t
		}
		img.Pix[i%width+(i/width)*img.Stride] = uint8(math.Round(255 * t))
	}
	return img, nil
}

func maxFinite(values []float64) (m float64) {
	for _, v := range values {
		if a := math.Abs(v); !math.IsInf(a, 0) && a > m {
			m = a
		}
	}
	return m
}

// Resample scales img to width×height with bilinear interpolation.
// A zero width or height preserves the aspect ratio.
func Resample(img image.Image, width, height int) (image.Image, error) {
	if width < 0 || height < 0 || (width == 0 && height == 0) {
		return nil, errors.New("invalid resample dimensions")
	}
	return resize.Resize(uint(width), uint(height), img, resize.Bilinear), nil
}

// Scale resamples img by a factor, keeping at least one pixel per side.
func Scale(img image.Image, factor float64) (image.Image, error) {
	if factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return nil, errors.New("scale factor must be positive and finite")
	}
	b := img.Bounds()
	w := int(math.Max(1, math.Round(float64(b.Dx())*factor)))
	h := int(math.Max(1, math.Round(float64(b.Dy())*factor)))
	return Resample(img, w, h)
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	return fauxgl.LoadImage(path)
}

// SavePNG encodes img as a PNG file at path.
func SavePNG(path string, img image.Image) error {
	return fauxgl.SavePNG(path, img)
}
