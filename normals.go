package hyperview

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

type Position3 = mgl64.Vec3
type Position4 = mgl64.Vec4
type Normal = mgl64.Vec3

// ComputeNormals returns one flat normal per vertex. Every corner of a quad
// receives the normal of the plane through its first three corners.
func ComputeNormals(vertices []Position3, quads []int) ([]Normal, error) {
	if err := checkQuads(len(vertices), quads); err != nil {
		return nil, err
	}
	normals := make([]Normal, len(vertices))
	computeNormalsInto(normals, vertices, quads)
	return normals, nil
}

func checkQuads(vertexCount int, quads []int) error {
	if len(quads)%4 != 0 {
		return fmt.Errorf("%w: quad index count %d is not a multiple of 4", ErrInvalidTopology, len(quads))
	}
	for i, idx := range quads {
		if idx < 0 || idx >= vertexCount {
			return fmt.Errorf("%w: quad %d references vertex %d, have %d vertices", ErrInvalidTopology, i/4, idx, vertexCount)
		}
	}
	return nil
}

// computeNormalsInto assumes quads has already passed checkQuads.
func computeNormalsInto(dst []Normal, vertices []Position3, quads []int) {
	for i := 0; i < len(quads); i += 4 {
		i0, i1, i2, i3 := quads[i], quads[i+1], quads[i+2], quads[i+3]

		// flat: all four corners share the face normal
		normal := faceNormal(vertices[i0], vertices[i1], vertices[i2])
		dst[i0] = normal
		dst[i1] = normal
		dst[i2] = normal
		dst[i3] = normal
	}
}

// faceNormal returns the zero vector for collinear or coincident points.
func faceNormal(v0, v1, v2 Position3) Normal {
	d0 := v0.Sub(v1)
	d1 := v1.Sub(v2)
	n := d0.Cross(d1)
	if n.Len() == 0 {
		return Normal{}
	}
	return n.Normalize()
}
