package hyperview

import "math"

// Mesh is a renderable shape that produces fresh buffers for a point in time.
//
// Update is deterministic in t. The returned Vertices and Normals are owned by
// the mesh and are overwritten by the next call; Quads and Lines never change
// after construction. Callers must not modify any of the returned slices.
// Update must not be called concurrently on the same Mesh.
type Mesh interface {
	Name() string
	Update(t float64) Frame
}

type Frame struct {
	Vertices []Position3
	Normals  []Normal
	Quads    []int
	Lines    []int
}

// Extents returns the axis aligned bounds of the frame's vertices.
func (f Frame) Extents() (min, max Position3) {
	if len(f.Vertices) == 0 {
		return Position3{}, Position3{}
	}
	min, max = f.Vertices[0], f.Vertices[0]
	for _, v := range f.Vertices[1:] {
		for axis := 0; axis < 3; axis++ {
			min[axis] = math.Min(min[axis], v[axis])
			max[axis] = math.Max(max[axis], v[axis])
		}
	}
	return min, max
}

type Topology int

const (
	TopologyLines Topology = iota
	TopologyQuads
)

func (t Topology) String() string {
	switch t {
	case TopologyLines:
		return "lines"
	case TopologyQuads:
		return "quads"
	}
	return "unknown"
}

// Target receives mesh buffers for drawing. Index buffers are grouped into
// submeshes, each drawn with its own topology.
type Target interface {
	Clear()
	SetVertices(vertices []Position3)
	SetNormals(normals []Normal)
	SetIndices(submesh int, topology Topology, indices []int)
}

const (
	LineSubmesh = 0
	QuadSubmesh = 1
)

// Apply updates m for time t and loads the result into target: lines as
// submesh 0 and quads as submesh 1.
func Apply(target Target, m Mesh, t float64) Frame {
	frame := m.Update(t)

	target.Clear()
	target.SetVertices(frame.Vertices)
	target.SetNormals(frame.Normals)
	target.SetIndices(LineSubmesh, TopologyLines, frame.Lines)
	target.SetIndices(QuadSubmesh, TopologyQuads, frame.Quads)
	return frame
}
