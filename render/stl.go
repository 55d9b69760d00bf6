package render

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/soypat/glider"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize = 84
	facetSize     = 50
	// Facets buffered between writes.
	facetsInBuffer = 1 << 10
	// Triangles with less area are not written to STL files.
	minFacetArea = 1e-12
)

var (
	errNoFacets       = errors.New("no printable triangles in model")
	errFacetNormal    = errors.New("stored facet normal differs from vertex winding")
	errFacetNotFinite = errors.New("inf/NaN STL facet")
)

// WriteMesh writes m to w as a binary STL. Each facet carries the unit
// normal of its mesh face. Zero area faces, such as those at airfoil
// seams and cap tips, are left out.
func WriteMesh(w io.Writer, m glider.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	faces := make([]facet, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		f, ok := newFacet(Triangle3{V: [3]r3.Vec{m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]}})
		if ok {
			faces = append(faces, f)
		}
	}
	if len(faces) == 0 {
		return errNoFacets
	}
	bw := bufio.NewWriterSize(w, facetSize*facetsInBuffer)
	if err := putHeader(bw, len(faces)); err != nil {
		return err
	}
	var b [facetSize]byte
	for _, f := range faces {
		f.put(b[:])
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteSTL writes a triangle soup to w in binary STL format. See WriteMesh.
func WriteSTL(w io.Writer, model []Triangle3) error {
	return WriteMesh(w, ToMesh(model))
}

// CreateSTL streams the triangles of r to a binary STL file at path. The
// facet count in the header is filled in once r is drained.
func CreateSTL(path string, r Renderer) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := streamSTL(fp, r); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

// streamSTL writes the facets of r past the header and goes back to write
// the header when their count is known.
func streamSTL(ws io.WriteSeeker, r Renderer) error {
	if _, err := ws.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return err
	}
	bw := bufio.NewWriterSize(ws, facetSize*facetsInBuffer)
	buf := make([]Triangle3, facetsInBuffer)
	var (
		b     [facetSize]byte
		count int
	)
	for {
		n, err := r.ReadTriangles(buf)
		for _, t := range buf[:n] {
			f, ok := newFacet(t)
			if !ok {
				continue
			}
			f.put(b[:])
			if _, err := bw.Write(b[:]); err != nil {
				return err
			}
			count++
		}
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}
	}
	if count == 0 {
		return errNoFacets
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if _, err := ws.Seek(0, io.SeekStart); err != nil {
		return err
	}
	return putHeader(ws, count)
}

func putHeader(w io.Writer, count int) error {
	if uint64(count) > math.MaxUint32 {
		return fmt.Errorf("%d facets do not fit an STL header", count)
	}
	var h [stlHeaderSize]byte
	binary.LittleEndian.PutUint32(h[80:], uint32(count))
	_, err := w.Write(h[:])
	return err
}

// ReadSTL reads the triangles of a binary STL file. Facets whose stored
// normal disagrees with their winding are still returned along with an error
// wrapping errFacetNormal.
func ReadSTL(r io.Reader) ([]Triangle3, error) {
	br := bufio.NewReader(r)
	var h [stlHeaderSize]byte
	if _, err := io.ReadFull(br, h[:]); err != nil {
		return nil, fmt.Errorf("reading STL header: %w", err)
	}
	count := binary.LittleEndian.Uint32(h[80:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		b          [facetSize]byte
		f          facet
		mismatches int
	)
	model := make([]Triangle3, 0, count)
	for i := 0; i < int(count); i++ {
		if _, err := io.ReadFull(br, b[:]); err != nil {
			return nil, fmt.Errorf("%d/%d STL triangles read: %w", i, count, err)
		}
		f.get(b[:])
		if !f.finite() {
			return nil, fmt.Errorf("STL triangle %d: %w", i, errFacetNotFinite)
		}
		if !f.normalMatches() {
			mismatches++
		}
		model = append(model, Triangle3{V: f.v})
	}
	if mismatches > 0 {
		return model, fmt.Errorf("%d/%d facets: %w", mismatches, count, errFacetNormal)
	}
	return model, nil
}

// facet is an STL triangle record. Values are rounded to float32 on put.
type facet struct {
	n r3.Vec
	v [3]r3.Vec
}

// newFacet returns the facet of t with its unit normal. ok is false for
// triangles too small to print.
func newFacet(t Triangle3) (f facet, ok bool) {
	if t.Degenerate() {
		return facet{}, false
	}
	return facet{n: t.Normal(), v: t.V}, true
}

func (f facet) put(b []byte) {
	_ = b[facetSize-1] // early bounds check
	putVec(b, f.n)
	putVec(b[12:], f.v[0])
	putVec(b[24:], f.v[1])
	putVec(b[36:], f.v[2])
	// No attributes.
	binary.LittleEndian.PutUint16(b[48:], 0)
}

func (f *facet) get(b []byte) {
	_ = b[facetSize-1]
	f.n = getVec(b)
	f.v[0] = getVec(b[12:])
	f.v[1] = getVec(b[24:])
	f.v[2] = getVec(b[36:])
}

func (f facet) finite() bool {
	for _, v := range [4]r3.Vec{f.n, f.v[0], f.v[1], f.v[2]} {
		if math.IsNaN(v.X+v.Y+v.Z) || math.IsInf(v.X+v.Y+v.Z, 0) {
			return false
		}
	}
	return true
}

// normalMatches reports whether the stored normal agrees with the winding of
// the vertices. Degenerate facets have no winding and always match.
func (f facet) normalMatches() bool {
	const tol = 5e-2
	t := Triangle3{V: f.v}
	if t.Degenerate() {
		return true
	}
	n := t.Normal()
	return math.Abs(n.X-f.n.X) <= tol && math.Abs(n.Y-f.n.Y) <= tol && math.Abs(n.Z-f.n.Z) <= tol
}

func putVec(b []byte, v r3.Vec) {
	_ = b[11]
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(v.X)))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(float32(v.Y)))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(float32(v.Z)))
}

func getVec(b []byte) r3.Vec {
	_ = b[11]
	return r3.Vec{
		X: float64(math.Float32frombits(binary.LittleEndian.Uint32(b))),
		Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	}
}
