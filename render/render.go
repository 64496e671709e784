// Package render turns distance fields into images, heatmaps and
// heightmap meshes that can be written as binary STL files.
package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
)

// Renderer streams triangles. ReadTriangles returns io.EOF once every
// triangle has been read, possibly along with the last triangles.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (n int, err error)
}

// RenderAll reads the full contents of a Renderer and returns the slice read.
// It does not return error on io.EOF, like the io.RenderAll implementation.
func RenderAll(r Renderer) ([]ms3.Triangle, error) {
	var err error
	var nt int
	result := make([]ms3.Triangle, 0, 1024)
	buf := make([]ms3.Triangle, 1024)
	for {
		nt, err = r.ReadTriangles(buf)
		result = append(result, buf[:nt]...)
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		return result, nil
	}
	return result, err
}
