package hyperview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var cubeVertices = []Position3{
	{-1, -1, -1}, // 0-3 bottom
	{1, -1, -1},
	{1, -1, 1},
	{-1, -1, 1},

	{-1, 1, 1}, // 4-7 top
	{1, 1, 1},
	{1, 1, -1},
	{-1, 1, -1},
}

var cubeQuads = []int{
	0, 1, 2, 3, // bottom
	4, 5, 6, 7, // top
	7, 6, 1, 0, // front
	6, 5, 2, 1, // right
	5, 4, 3, 2, // back
	4, 7, 0, 3, // left
}

var cubeLines = []int{
	0, 1, 1, 2, 2, 3, 3, 0, // bottom
	4, 5, 5, 6, 6, 7, 7, 4, // top
	0, 7, 1, 6, 2, 5, 3, 4, // sides
}

// Cube is a unit cube spinning about the Y axis.
type Cube struct {
	name     string
	vertices []Position3
	quads    []int
	lines    []int

	transformed []Position3
	normals     []Normal
}

func NewCube() (*Cube, error) {
	vertices, quads, lines, err := Deduplicate(cubeVertices, cubeQuads, cubeLines)
	if err != nil {
		return nil, fmt.Errorf("building cube: %w", err)
	}

	c := &Cube{
		name:        "Cube",
		vertices:    vertices,
		quads:       quads,
		lines:       lines,
		transformed: make([]Position3, len(vertices)),
		normals:     make([]Normal, len(vertices)),
	}
	Logger().Debug("mesh built", "name", c.name, "vertices", len(vertices), "quads", len(quads)/4, "lines", len(lines)/2)
	return c, nil
}

func (c *Cube) Name() string {
	return c.name
}

func (c *Cube) Update(t float64) Frame {
	rot := mgl64.Rotate3DY(WrapAngle(t))
	for i, v := range c.vertices {
		c.transformed[i] = rot.Mul3x1(v)
	}
	computeNormalsInto(c.normals, c.transformed, c.quads)

	return Frame{
		Vertices: c.transformed,
		Normals:  c.normals,
		Quads:    c.quads,
		Lines:    c.lines,
	}
}
