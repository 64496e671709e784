package main

import (
	"errors"
	"flag"
)

// Command-line flags. They are collected into a config by configFromFlags.
var (
	// inFlag is the mask image. Pixels at or above the threshold are filled.
	inFlag = flag.String("in", "", "input mask image (png or jpeg)")

	// shapeFlag rasterizes a built-in shape instead of reading -in.
	shapeFlag = flag.String("shape", "", "use a built-in shape as the mask: circle, box or line")
	sizeFlag  = flag.Int("size", 64, "shape scale in cells")

	thresholdFlag = flag.Uint("threshold", 128, "gray level (0-255) at or above which a pixel is filled")

	// scaleFlag resamples the mask before computing the field.
	scaleFlag = flag.Float64("scale", 1, "resample factor applied to the input image")

	// signedFlag computes a signed field, negative inside the filled region.
	signedFlag = flag.Bool("signed", false, "compute signed distance instead of distance to the filled region")

	exactFlag = flag.Bool("exact", false, "use the exact additive transform for both axes")

	pngFlag     = flag.String("png", "", "write the distance field as a grayscale png")
	heatmapFlag = flag.String("heatmap", "", "write a heatmap plot of the distance field (png, svg)")
	stlFlag     = flag.String("stl", "", "write the distance field as a heightmap STL mesh")

	// maxzFlag clamps heightmap and grayscale ranges. Zero uses the field maximum for images.
	maxzFlag = flag.Float64("maxz", 20, "maximum distance shown in outputs")

	// verifyFlag checks sampled cells against a kd-tree nearest seed search.
	verifyFlag = flag.Int("verify", 0, "number of random cells to verify against a nearest seed search")

	verboseFlag = flag.Bool("v", false, "enable debug logging")
)

type config struct {
	in        string
	shape     string
	size      int
	threshold uint
	scale     float64
	signed    bool
	exact     bool
	png       string
	heatmap   string
	stl       string
	maxz      float64
	verify    int
	verbose   bool
}

func configFromFlags() config {
	return config{
		in:        *inFlag,
		shape:     *shapeFlag,
		size:      *sizeFlag,
		threshold: *thresholdFlag,
		scale:     *scaleFlag,
		signed:    *signedFlag,
		exact:     *exactFlag,
		png:       *pngFlag,
		heatmap:   *heatmapFlag,
		stl:       *stlFlag,
		maxz:      *maxzFlag,
		verify:    *verifyFlag,
		verbose:   *verboseFlag,
	}
}

func (c config) validate() error {
	switch {
	case c.in == "" && c.shape == "":
		return errors.New("missing -in mask image or -shape")
	case c.in != "" && c.shape != "":
		return errors.New("-in and -shape are mutually exclusive")
	case c.shape != "" && c.size < 8:
		return errors.New("-size must be at least 8")
	case c.threshold > 255:
		return errors.New("-threshold must be in 0..255")
	case c.scale <= 0:
		return errors.New("-scale must be positive")
	case c.maxz < 0:
		return errors.New("-maxz must not be negative")
	case c.verify < 0:
		return errors.New("-verify must not be negative")
	case c.signed && c.verify > 0:
		return errors.New("-verify only applies to unsigned fields")
	case c.png == "" && c.heatmap == "" && c.stl == "" && c.verify == 0:
		return errors.New("nothing to do: set at least one of -png, -heatmap, -stl or -verify")
	}
	return nil
}
