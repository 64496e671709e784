// Command edt computes the distance field of a mask image or built-in shape
// and writes it as a grayscale image, a heatmap plot or a heightmap STL mesh.
//
//	edt -in mask.png -png dist.png -heatmap heat.png -stl dist.stl
//	edt -shape circle -size 128 -signed -heatmap circle.svg
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/soypat/edt"
	"github.com/soypat/edt/form2"
	"github.com/soypat/edt/helpers/edtexp"
	"github.com/soypat/edt/render"
	"gonum.org/v1/gonum/spatial/r2"
)

func main() {
	flag.Parse()
	cfg := configFromFlags()
	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	edt.SetLogger(logger)
	if err := run(cfg, logger); err != nil {
		logger.Error("edt failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, log *slog.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	mask, err := loadMask(cfg)
	if err != nil {
		return err
	}
	w, h := mask.Width(), mask.Height()
	log.Info("mask loaded", "path", cfg.in, "shape", cfg.shape, "width", w, "height", h, "filled", mask.Count())

	start := time.Now()
	var values []float64
	if cfg.signed {
		sf, err := edt.SignedDistance(mask)
		if err != nil {
			return err
		}
		values = sf.Data()
	} else {
		values, err = distance(mask, cfg, log)
		if err != nil {
			return err
		}
	}
	log.Info("field computed", "signed", cfg.signed, "exact", cfg.exact, "elapsed", time.Since(start))

	if cfg.png != "" {
		gray, err := render.Grayscale(values, w, h, render.ImageConfig{MaxDistance: cfg.maxz, Signed: cfg.signed})
		if err != nil {
			return err
		}
		if err := render.SavePNG(cfg.png, gray); err != nil {
			return err
		}
		log.Info("wrote image", "path", cfg.png)
	}
	if cfg.heatmap != "" {
		hcfg := render.DefaultHeatmapConfig()
		if cfg.signed {
			hcfg.Title = "signed distance"
			hcfg.Min, hcfg.Max = -cfg.maxz, cfg.maxz
		} else {
			hcfg.Max = cfg.maxz
		}
		p, err := render.Heatmap(values, w, h, hcfg)
		if err != nil {
			return err
		}
		if err := render.SaveHeatmap(p, cfg.heatmap, hcfg); err != nil {
			return err
		}
		log.Info("wrote heatmap", "path", cfg.heatmap)
	}
	if cfg.stl != "" {
		hmcfg := render.DefaultHeightmapConfig()
		if cfg.maxz > 0 {
			hmcfg.MaxHeight = float32(cfg.maxz)
		}
		hm, err := render.NewHeightmap(values, w, h, hmcfg)
		if err != nil {
			return err
		}
		if err := render.CreateSTL(cfg.stl, hm); err != nil {
			return err
		}
		log.Info("wrote mesh", "path", cfg.stl, "triangles", hm.Triangles())
	}
	return nil
}

func loadMask(cfg config) (*edt.Mask, error) {
	if cfg.shape != "" {
		return shapeMask(cfg.shape, float64(cfg.size))
	}
	img, err := render.LoadImage(cfg.in)
	if err != nil {
		return nil, fmt.Errorf("loading mask: %w", err)
	}
	if cfg.scale != 1 {
		img, err = render.Scale(img, cfg.scale)
		if err != nil {
			return nil, err
		}
	}
	return edt.MaskFromImage(img, uint8(cfg.threshold))
}

// shapeMask rasterizes a built-in shape with one cell per unit and a
// margin of size/4 around it.
func shapeMask(name string, size float64) (*edt.Mask, error) {
	var s edt.SDF2
	var err error
	switch name {
	case "circle":
		s, err = form2.Circle(size / 4)
	case "box":
		s, err = form2.Box(r2.Vec{X: size / 2, Y: size / 4}, size/16)
	case "line":
		s, err = form2.Line(size/2, size/16)
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
	if err != nil {
		return nil, err
	}
	s = form2.Pad(s, size/4)
	bb := s.Bounds()
	w := int(math.Round(bb.Max.X - bb.Min.X))
	h := int(math.Round(bb.Max.Y - bb.Min.Y))
	return edt.MaskFromSDF2(s, w, h)
}

// distance returns the distance of every cell of mask to the filled region.
func distance(mask *edt.Mask, cfg config, log *slog.Logger) ([]float64, error) {
	w, h := mask.Width(), mask.Height()
	grid := mask.Seeds(true)
	transform := edt.Transform[float64]
	if cfg.exact {
		transform = edt.TransformExact[float64]
	}
	if err := transform(grid, w, h, nil); err != nil {
		return nil, err
	}
	if cfg.verify > 0 {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		if err := edtexp.Verify(mask.Seeds(true), w, h, grid, cfg.verify, rng); err != nil {
			return nil, fmt.Errorf("verification failed: %w", err)
		}
		log.Info("verified field", "samples", cfg.verify)
	}
	edt.Sqrt(grid)
	return grid, nil
}
