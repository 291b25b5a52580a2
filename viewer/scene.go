package viewer

import (
	"image/color"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/smasonuk/hyperview"
)

// Painter draws screen space primitives.
type Painter interface {
	FillPolygon(xs, ys []float32, clr color.RGBA)
	StrokeLine(x0, y0, x1, y1, width float32, clr color.RGBA)
}

type Options struct {
	Faces         bool
	Lines         bool
	CullBackfaces bool
	LineWidth     float32
	FaceColor     color.RGBA
	LineColor     color.RGBA
}

func DefaultOptions() Options {
	return Options{
		Faces:     true,
		Lines:     true,
		LineWidth: 1.5,
		FaceColor: color.RGBA{R: 90, G: 140, B: 230, A: 160},
		LineColor: color.RGBA{R: 240, G: 240, B: 240, A: 255},
	}
}

type Stats struct {
	Faces int
	Lines int
}

type polygon struct {
	xs, ys [4]float32
	clr    color.RGBA
	depth  float64
}

// Scene holds the buffers of one mesh and paints them with a Camera.
// It implements hyperview.Target.
type Scene struct {
	Options Options

	vertices []hyperview.Position3
	normals  []hyperview.Normal
	submesh  map[int]submesh

	// per-paint scratch
	screenX, screenY []float32
	depth            []float64
	visible          []bool
	polygons         []polygon
}

type submesh struct {
	topology hyperview.Topology
	indices  []int
}

func NewScene(opts Options) *Scene {
	return &Scene{
		Options: opts,
		submesh: make(map[int]submesh),
	}
}

func (s *Scene) Clear() {
	s.vertices = nil
	s.normals = nil
	clear(s.submesh)
}

func (s *Scene) SetVertices(vertices []hyperview.Position3) {
	s.vertices = vertices
}

func (s *Scene) SetNormals(normals []hyperview.Normal) {
	s.normals = normals
}

func (s *Scene) SetIndices(index int, topology hyperview.Topology, indices []int) {
	s.submesh[index] = submesh{topology: topology, indices: indices}
}

// Paint draws quads far to near, then all lines on top of them.
func (s *Scene) Paint(p Painter, cam *Camera, width, height int) Stats {
	var stats Stats
	if len(s.vertices) == 0 || width <= 0 || height <= 0 {
		return stats
	}

	s.project(cam, width, height)
	eye := cam.Eye()

	keys := make([]int, 0, len(s.submesh))
	for k := range s.submesh {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if s.Options.Faces {
		s.polygons = s.polygons[:0]
		for _, k := range keys {
			if sm := s.submesh[k]; sm.topology == hyperview.TopologyQuads {
				s.collectQuads(sm.indices, eye)
			}
		}
		sort.SliceStable(s.polygons, func(i, j int) bool {
			return s.polygons[i].depth > s.polygons[j].depth
		})
		for i := range s.polygons {
			poly := &s.polygons[i]
			p.FillPolygon(poly.xs[:], poly.ys[:], poly.clr)
		}
		stats.Faces = len(s.polygons)
	}

	if s.Options.Lines {
		for _, k := range keys {
			sm := s.submesh[k]
			if sm.topology != hyperview.TopologyLines {
				continue
			}
			for i := 0; i+1 < len(sm.indices); i += 2 {
				a, b := sm.indices[i], sm.indices[i+1]
				if !s.visible[a] || !s.visible[b] {
					continue
				}
				p.StrokeLine(s.screenX[a], s.screenY[a], s.screenX[b], s.screenY[b], s.Options.LineWidth, s.Options.LineColor)
				stats.Lines++
			}
		}
	}

	return stats
}

func (s *Scene) project(cam *Camera, width, height int) {
	n := len(s.vertices)
	if cap(s.screenX) < n {
		s.screenX = make([]float32, n)
		s.screenY = make([]float32, n)
		s.depth = make([]float64, n)
		s.visible = make([]bool, n)
	}
	s.screenX, s.screenY = s.screenX[:n], s.screenY[:n]
	s.depth, s.visible = s.depth[:n], s.visible[:n]

	vp := cam.ViewProjection(float64(width) / float64(height))
	for i, v := range s.vertices {
		x, y, d, ok := cam.Project(v, vp, float64(width), float64(height))
		s.screenX[i], s.screenY[i] = float32(x), float32(y)
		s.depth[i], s.visible[i] = d, ok
	}
}

func (s *Scene) collectQuads(indices []int, eye mgl64.Vec3) {
	for i := 0; i+3 < len(indices); i += 4 {
		quad := indices[i : i+4]

		var poly polygon
		var centre mgl64.Vec3
		inFront := true
		for c, idx := range quad {
			if !s.visible[idx] {
				inFront = false
				break
			}
			poly.xs[c], poly.ys[c] = s.screenX[idx], s.screenY[idx]
			poly.depth += s.depth[idx] / 4
			centre = centre.Add(s.vertices[idx].Mul(0.25))
		}
		if !inFront {
			continue
		}

		var normal hyperview.Normal
		if quad[0] < len(s.normals) {
			normal = s.normals[quad[0]]
		}
		toEye := eye.Sub(centre)
		if s.Options.CullBackfaces && normal.Dot(toEye) <= 0 {
			continue
		}

		// two sided headlight
		if normal.Dot(toEye) < 0 {
			normal = normal.Mul(-1)
		}
		poly.clr = Shade(s.Options.FaceColor, normal, toEye)
		s.polygons = append(s.polygons, poly)
	}
}
