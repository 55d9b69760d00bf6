package render

import (
	"image"
	"image/png"
	"io"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glider"
	"gonum.org/v1/gonum/spatial/r3"
)

// View configures the camera of a preview render.
type View struct {
	// what position (point) to look at
	Lookat r3.Vec
	// which way is up (direction)
	Up r3.Vec
	// where the camera/eye located at (point)
	Eyepos r3.Vec
	Far    float64
	Near   float64
	// Output size in pixels.
	Width, Height int
	// Supersampling factor used for antialiasing.
	Scale int
	Color string
}

// DefaultView looks at the mesh, scaled to a bi-unit cube, from the front left
// and above.
func DefaultView() View {
	return View{
		Up:     r3.Vec{Y: 1},
		Eyepos: r3.Vec{X: -2.5, Y: 1.5, Z: -2.5},
		Near:   1,
		Far:    10,
		Width:  1280,
		Height: 720,
		Scale:  2,
		Color:  "#468966",
	}
}

// Preview renders m with a Phong shader and returns the downsampled image.
func Preview(m glider.Mesh, view View) image.Image {
	const fovy = 30 // vertical field of view in degrees
	if view.Scale < 1 {
		view.Scale = 1
	}
	tris := make([]*fauxgl.Triangle, 0, len(m.Triangles))
	for _, t := range m.Triangles {
		a, b, c := m.Vertices[t[0]], m.Vertices[t[1]], m.Vertices[t[2]]
		tris = append(tris, fauxgl.NewTriangleForPoints(fv(a), fv(b), fv(c)))
	}
	mesh := fauxgl.NewTriangleMesh(tris)
	// fit mesh in a bi-unit cube centered at the origin
	mesh.BiUnitCube()
	mesh.SmoothNormalsThreshold(fauxgl.Radians(30))

	var (
		eye    = fv(view.Eyepos)
		center = fv(view.Lookat)
		up     = fv(view.Up)
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	context := fauxgl.NewContext(view.Width*view.Scale, view.Height*view.Scale)
	context.ClearColorBufferWith(fauxgl.HexColor("#FFF8E3"))
	aspect := float64(view.Width) / float64(view.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, view.Near, view.Far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(view.Color)
	context.Shader = shader
	context.DrawMesh(mesh)
	// downsample image for antialiasing
	return resize.Resize(uint(view.Width), uint(view.Height), context.Image(), resize.Bilinear)
}

// PreviewPNG renders m and writes it to w as a PNG image.
func PreviewPNG(w io.Writer, m glider.Mesh, view View) error {
	return png.Encode(w, Preview(m, view))
}

func fv(v r3.Vec) fauxgl.Vector { return fauxgl.V(v.X, v.Y, v.Z) }
