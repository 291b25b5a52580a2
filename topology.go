package hyperview

import (
	"errors"
	"fmt"
)

// ErrInvalidTopology is returned when index buffers do not describe a valid
// quad/line mesh over the supplied vertices.
var ErrInvalidTopology = errors.New("invalid topology")

// Deduplicate expands a shared-vertex mesh so that every quad corner owns its
// own vertex. The returned quad buffer is the identity (newQuads[k] == k) and
// the line buffer is remapped onto the expanded vertices.
//
// When an original vertex is used by several quads, lines that reference it
// resolve to the corner written last.
func Deduplicate[V any](vertices []V, quads, lines []int) ([]V, []int, []int, error) {
	if len(quads)%4 != 0 {
		return nil, nil, nil, fmt.Errorf("%w: quad index count %d is not a multiple of 4", ErrInvalidTopology, len(quads))
	}
	if len(lines)%2 != 0 {
		return nil, nil, nil, fmt.Errorf("%w: line index count %d is not a multiple of 2", ErrInvalidTopology, len(lines))
	}

	vertexMap := make([]int, len(vertices))
	for i := range vertexMap {
		vertexMap[i] = -1
	}

	newVertices := make([]V, len(quads))
	newQuads := make([]int, len(quads))
	for i := 0; i < len(quads); i += 4 {
		for corner := i; corner < i+4; corner++ {
			orig := quads[corner]
			if orig < 0 || orig >= len(vertices) {
				return nil, nil, nil, fmt.Errorf("%w: quad %d references vertex %d, have %d vertices", ErrInvalidTopology, i/4, orig, len(vertices))
			}
			vertexMap[orig] = corner
			newVertices[corner] = vertices[orig]
			newQuads[corner] = corner
		}
	}

	newLines := make([]int, len(lines))
	for i, orig := range lines {
		if orig < 0 || orig >= len(vertices) {
			return nil, nil, nil, fmt.Errorf("%w: line %d references vertex %d, have %d vertices", ErrInvalidTopology, i/2, orig, len(vertices))
		}
		mapped := vertexMap[orig]
		if mapped < 0 {
			return nil, nil, nil, fmt.Errorf("%w: line %d references vertex %d which is not part of any quad", ErrInvalidTopology, i/2, orig)
		}
		newLines[i] = mapped
	}

	return newVertices, newQuads, newLines, nil
}
