package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
	stlBufferLen    = 1 << 10
)

// CreateSTL streams the triangles of r into a binary STL file at path.
func CreateSTL(path string, r Renderer) (err error) {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	// Triangle count is not known until the renderer is drained.
	if _, err = fp.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return err
	}
	var (
		tbuf  = make([]ms3.Triangle, stlBufferLen)
		bbuf  = make([]byte, stlTriangleSize*stlBufferLen)
		count int64
		rerr  error
	)
	for rerr == nil {
		var nt int
		nt, rerr = r.ReadTriangles(tbuf)
		if rerr != nil && rerr != io.EOF {
			return rerr
		}
		for i := range tbuf[:nt] {
			putTriangle(bbuf[i*stlTriangleSize:], tbuf[i])
		}
		if _, err = fp.Write(bbuf[:nt*stlTriangleSize]); err != nil {
			return err
		}
		count += int64(nt)
	}
	if count == 0 {
		return errors.New("renderer produced no triangles")
	} else if count > math.MaxUint32 {
		return errors.New("amount of triangles in model exceeds STL design limits")
	}
	if _, err = fp.Seek(0, io.SeekStart); err != nil {
		return err
	}
	var hdr [stlHeaderSize]byte
	stlHeader{Count: uint32(count)}.put(hdr[:])
	_, err = fp.Write(hdr[:])
	return err
}

// WriteBinarySTL writes model triangles to a writer in STL file format.
func WriteBinarySTL(w io.Writer, model []ms3.Triangle) (int, error) {
	if len(model) == 0 {
		return 0, errors.New("empty triangle slice")
	}
	nt := int64(len(model)) // int64 cast so that next line works correctly on 32bit machines.
	if nt > math.MaxUint32 {
		return 0, errors.New("amount of triangles in model exceeds STL design limits")
	}
	var buf [stlHeaderSize]byte
	stlHeader{Count: uint32(nt)}.put(buf[:])
	n, err := w.Write(buf[:])
	if err != nil {
		return n, err
	} else if n != len(buf) {
		return n, io.ErrShortWrite
	}
	for _, triangle := range model {
		putTriangle(buf[:], triangle)
		ngot, err := w.Write(buf[:stlTriangleSize])
		n += ngot
		if err != nil {
			return n, err
		} else if ngot != stlTriangleSize {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

func putTriangle(b []byte, t ms3.Triangle) {
	norm := ms3.Unit(t.Normal())
	d := stlTriangle{
		Normal:  [3]float32{norm.X, norm.Y, norm.Z},
		Vertex1: [3]float32{t[0].X, t[0].Y, t[0].Z},
		Vertex2: [3]float32{t[1].X, t[1].Y, t[1].Z},
		Vertex3: [3]float32{t[2].X, t[2].Y, t[2].Z},
	}
	d.put(b)
}

// ReadBinarySTL reads a binary STL file. Triangles with a stored normal that
// does not match their vertices are kept and reported through the
// returned error as long as they are few.
func ReadBinarySTL(r io.Reader) (output []ms3.Triangle, readErr error) {
	var hdr [stlHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, errors.New("STL header read failed: " + err.Error())
	}
	header := stlHeader{Count: binary.LittleEndian.Uint32(hdr[80:])}
	if header.Count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf            [stlTriangleSize]byte
		d              stlTriangle
		i              int
		normMismatches int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, errCalculatedNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i+1, header.Count, readErr)
		}
	}()
	output = make([]ms3.Triangle, 0, min(int(header.Count), 1<<16))
	for i = 0; i < int(header.Count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			if !errors.Is(err, errCalculatedNormalMismatch) {
				return nil, err
			}
			normMismatches++
			if normMismatches > 10_000 {
				// This may be valid output, so we return the triangles.
				return output, fmt.Errorf("got too many normal vector mismatches (%d)", normMismatches)
			}
			readErr = err
		}
		output = append(output, d.Triangle())
	}
	return output, readErr
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

func (h stlHeader) put(b []byte) {
	_ = b[83] // early bounds check
	binary.LittleEndian.PutUint32(b[80:], h.Count)
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func (t stlTriangle) put(b []byte) {
	_ = b[stlTriangleSize-1]
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0) // Zero out attributes.
}

func (t *stlTriangle) get(b []byte) {
	_ = b[stlTriangleSize-1]
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

var errCalculatedNormalMismatch = errors.New("triangle normal does not match normal calculated from vertices")

func (t stlTriangle) validate() error {
	const epsilon = 1e-12
	const normTol = 5e-2
	if bad3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	if t.Triangle().IsDegenerate(epsilon) {
		return errors.New("triangle is degenerate")
	}
	got := vecFromArray(t.Normal)
	calc := ms3.Unit(t.Triangle().Normal())
	if !equalWithin(calc, got, normTol) && !equalWithin(ms3.Scale(-1, calc), got, normTol) {
		return errCalculatedNormalMismatch
	}
	return nil
}

func equalWithin(a, b ms3.Vec, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol &&
		math32.Abs(a.Y-b.Y) <= tol &&
		math32.Abs(a.Z-b.Z) <= tol
}

func vecFromArray(f [3]float32) ms3.Vec {
	return ms3.Vec{X: f[0], Y: f[1], Z: f[2]}
}

func (t stlTriangle) Triangle() ms3.Triangle {
	return ms3.Triangle{vecFromArray(t.Vertex1), vecFromArray(t.Vertex2), vecFromArray(t.Vertex3)}
}
