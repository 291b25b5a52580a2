package hyperview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var hypercubeVertices = []Position4{
	{-1, -1, -1, 1}, // 0-3 bottom inner
	{1, -1, -1, 1},
	{1, -1, 1, 1},
	{-1, -1, 1, 1},

	{-1, 1, 1, 1}, // 4-7 top inner
	{1, 1, 1, 1},
	{1, 1, -1, 1},
	{-1, 1, -1, 1},

	{-1, -1, -1, -1}, // 8-11 bottom outer
	{1, -1, -1, -1},
	{1, -1, 1, -1},
	{-1, -1, 1, -1},

	{-1, 1, 1, -1}, // 12-15 top outer
	{1, 1, 1, -1},
	{1, 1, -1, -1},
	{-1, 1, -1, -1},
}

// Only the faces of the inner and outer cells are listed. The eight faces
// joining the two cells are not generated.
var hypercubeQuads = []int{
	0, 1, 2, 3, // bottom inner
	4, 5, 6, 7, // top inner
	7, 6, 1, 0, // front inner
	6, 5, 2, 1, // right inner
	5, 4, 3, 2, // back inner
	4, 7, 0, 3, // left inner

	8, 9, 10, 11, // bottom outer
	12, 13, 14, 15, // top outer
	15, 14, 9, 8, // front outer
	14, 13, 10, 9, // right outer
	13, 12, 11, 10, // back outer
	12, 15, 8, 11, // left outer
}

var hypercubeLines = []int{
	0, 1, 1, 2, 2, 3, 3, 0, // bottom inner
	4, 5, 5, 6, 6, 7, 7, 4, // top inner
	0, 7, 1, 6, 2, 5, 3, 4, // sides inner

	8, 9, 9, 10, 10, 11, 11, 8, // bottom outer
	12, 13, 13, 14, 14, 15, 15, 12, // top outer
	8, 15, 9, 14, 10, 13, 11, 12, // sides outer

	0, 8, 1, 9, 2, 10, 3, 11, // bottom w-connections
	4, 12, 5, 13, 6, 14, 7, 15, // top w-connections
}

// hypercubeSpeed scales elapsed time into the Z-W rotation angle.
const hypercubeSpeed = 0.5

// Hypercube is a tesseract rotating in the Z-W plane and projected into 3D.
type Hypercube struct {
	name     string
	vertices []Position4
	quads    []int
	lines    []int

	projected []Position3
	normals   []Normal
}

// NewHypercube builds the hypercube. A non-zero initialRotation (degrees)
// is applied once in the X-W plane before any animation.
func NewHypercube(initialRotation float64) (*Hypercube, error) {
	vertices, quads, lines, err := Deduplicate(hypercubeVertices, hypercubeQuads, hypercubeLines)
	if err != nil {
		return nil, fmt.Errorf("building hypercube: %w", err)
	}

	if initialRotation != 0 {
		rot := PlaneRotation(AxisX, AxisW, mgl64.DegToRad(initialRotation))
		for i, v := range vertices {
			vertices[i] = rot.Mul4x1(v)
		}
	}

	h := &Hypercube{
		name:      "Hypercube",
		vertices:  vertices,
		quads:     quads,
		lines:     lines,
		projected: make([]Position3, len(vertices)),
		normals:   make([]Normal, len(vertices)),
	}
	Logger().Debug("mesh built", "name", h.name, "vertices", len(vertices), "quads", len(quads)/4, "lines", len(lines)/2,
		"initialRotation", initialRotation)
	return h, nil
}

func (h *Hypercube) Name() string {
	return h.name
}

func (h *Hypercube) Update(t float64) Frame {
	rot := PlaneRotation(AxisZ, AxisW, WrapAngle(t*hypercubeSpeed))
	for i, v := range h.vertices {
		r := rot.Mul4x1(v)
		h.projected[i] = r.Vec3().Mul(ProjectionScale(r.W()))
	}
	computeNormalsInto(h.normals, h.projected, h.quads)

	return Frame{
		Vertices: h.projected,
		Normals:  h.normals,
		Quads:    h.quads,
		Lines:    h.lines,
	}
}
